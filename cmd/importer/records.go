package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"address-book-api/internal/models"
	"address-book-api/internal/service"

	"github.com/xuri/excelize/v2"
)

// Input files carry a header row followed by name, street, city, latitude, longitude.
const columns = 5

func readRecords(path, sheet string) ([]models.AddressInput, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return parseCSV(f)
	case ".xlsx", ".xlsm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		defer f.Close()
		return parseSheet(f, sheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func parseCSV(r io.Reader) ([]models.AddressInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		rows = append(rows, record)
	}

	return toInputs(rows, 2)
}

func parseSheet(f *excelize.File, sheet string) ([]models.AddressInput, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	return toInputs(rows[1:], 2)
}

// toInputs converts raw rows into validated inputs. firstLine is the 1-based
// line number of rows[0] in the source file, used in error messages.
func toInputs(rows [][]string, firstLine int) ([]models.AddressInput, error) {
	inputs := make([]models.AddressInput, 0, len(rows))
	for i, row := range rows {
		line := firstLine + i
		if isBlank(row) {
			continue
		}
		if len(row) < columns {
			return nil, fmt.Errorf("line %d: invalid record length %d, expected %d columns", line, len(row), columns)
		}

		lat, err := parseCoord(row[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude %q", line, row[3])
		}
		lon, err := parseCoord(row[4])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude %q", line, row[4])
		}

		in, err := service.NormalizeAddressInput(models.AddressInput{
			Name:      row[0],
			Street:    row[1],
			City:      row[2],
			Latitude:  &lat,
			Longitude: &lon,
		})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// parseCoord accepts a decimal comma as well as a decimal point.
func parseCoord(val string) (float64, error) {
	val = strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
	if val == "" {
		return 0, errors.New("empty")
	}
	return strconv.ParseFloat(val, 64)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
