package repository

import (
	"context"
	"errors"
	"fmt"

	"address-book-api/internal/models"
	"address-book-api/internal/platform/obs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates the addresses table. It is safe to run repeatedly.
const Schema = `
	CREATE TABLE IF NOT EXISTS addresses (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		street TEXT NOT NULL,
		city TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	);
`

const addressColumns = `id, name, street, city, latitude, longitude`

// Execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the addresses table if it does not exist yet.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return storeError("failed to create schema", err)
	}
	return nil
}

// Repository implements the address store on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Ping verifies that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return storeError("ping failed", err)
	}
	return nil
}

// CreateAddress inserts a new address and returns it with its assigned id.
func (r *Repository) CreateAddress(ctx context.Context, in models.AddressInput) (_ *models.Address, err error) {
	defer obs.Time(ctx, "repository.CreateAddress")(&err)

	if in.Latitude == nil || in.Longitude == nil {
		return nil, errors.New("repository: coordinates are required")
	}

	var created *models.Address
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO addresses (name, street, city, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+addressColumns,
			in.Name, in.Street, in.City, *in.Latitude, *in.Longitude,
		)

		addr, err := scanAddress(row)
		if err != nil {
			return storeError("failed to insert address", err)
		}
		created = addr
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListAddresses returns every stored address ordered by id.
func (r *Repository) ListAddresses(ctx context.Context) (_ []models.Address, err error) {
	defer obs.Time(ctx, "repository.ListAddresses")(&err)

	rows, err := r.db.Query(ctx, `SELECT `+addressColumns+` FROM addresses ORDER BY id`)
	if err != nil {
		return nil, storeError("failed to execute list query", err)
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, storeError("failed to scan address", err)
		}
		addresses = append(addresses, *addr)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating rows", err)
	}

	return addresses, nil
}

// GetAddress returns the address with the given id.
func (r *Repository) GetAddress(ctx context.Context, id int64) (_ *models.Address, err error) {
	defer obs.Time(ctx, "repository.GetAddress")(&err)

	row := r.db.QueryRow(ctx, `SELECT `+addressColumns+` FROM addresses WHERE id = $1`, id)

	addr, err := scanAddress(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, storeError("failed to get address", err)
	}

	return addr, nil
}

// UpdateAddress applies the set fields of patch to the address with the given id.
// The row is locked for the duration of the transaction.
func (r *Repository) UpdateAddress(ctx context.Context, id int64, patch models.AddressPatch) (_ *models.Address, err error) {
	defer obs.Time(ctx, "repository.UpdateAddress")(&err)

	var updated *models.Address
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `SELECT `+addressColumns+` FROM addresses WHERE id = $1 FOR UPDATE`, id)

		addr, err := scanAddress(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrNotFound
			}
			return storeError("failed to load address for update", err)
		}

		patch.Apply(addr)

		_, err = tx.Exec(ctx, `
			UPDATE addresses
			SET name = $2, street = $3, city = $4, latitude = $5, longitude = $6
			WHERE id = $1`,
			addr.ID, addr.Name, addr.Street, addr.City, addr.Latitude, addr.Longitude,
		)
		if err != nil {
			return storeError("failed to update address", err)
		}

		updated = addr
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAddress removes the address with the given id and returns its last state.
func (r *Repository) DeleteAddress(ctx context.Context, id int64) (_ *models.Address, err error) {
	defer obs.Time(ctx, "repository.DeleteAddress")(&err)

	var deleted *models.Address
	err = r.withTx(ctx, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `DELETE FROM addresses WHERE id = $1 RETURNING `+addressColumns, id)

		addr, err := scanAddress(row)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return models.ErrNotFound
			}
			return storeError("failed to delete address", err)
		}

		deleted = addr
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deleted, nil
}

// withTx runs fn in a transaction. The transaction is rolled back unless fn
// succeeds and the commit goes through.
func (r *Repository) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return storeError("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return storeError("failed to commit transaction", err)
	}

	return nil
}

func scanAddress(row pgx.Row) (*models.Address, error) {
	var addr models.Address
	err := row.Scan(
		&addr.ID,
		&addr.Name,
		&addr.Street,
		&addr.City,
		&addr.Latitude,
		&addr.Longitude,
	)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func storeError(msg string, err error) error {
	return fmt.Errorf("repository: %s: %w: %w", msg, models.ErrStoreUnavailable, err)
}
