package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"address-book-api/internal/config"
	"address-book-api/internal/models"
	"address-book-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the CSV or XLSX file to import")
	sheet := flag.String("sheet", "", "Sheet to read from an XLSX file (defaults to the first sheet)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	_ = godotenv.Load()

	log.Info().Str("file", *file).Msg("starting import")

	records, err := readRecords(*file, *sheet)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse input file")
	}

	log.Info().Int("records", len(records)).Msg("parsed records")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(ctx)

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	before, err := countAddresses(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count addresses")
	}

	inserted, err := insertRecords(ctx, conn, records)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot insert records")
	}

	if err := verifyImport(ctx, conn, before, inserted); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int64("records", inserted).Msg("import finished")
}

// insertRecords bulk loads the records in a single transaction.
func insertRecords(ctx context.Context, conn *pgx.Conn, records []models.AddressInput) (int64, error) {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"addresses"},
		[]string{"name", "street", "city", "latitude", "longitude"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			r := records[i]
			return []any{r.Name, r.Street, r.City, *r.Latitude, *r.Longitude}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copy records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return n, nil
}

func countAddresses(ctx context.Context, conn *pgx.Conn) (int64, error) {
	var count int64
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM addresses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, before, inserted int64) error {
	after, err := countAddresses(ctx, conn)
	if err != nil {
		return err
	}

	if after-before != inserted {
		return fmt.Errorf("record count mismatch: expected %d new rows, got %d", inserted, after-before)
	}

	return nil
}
