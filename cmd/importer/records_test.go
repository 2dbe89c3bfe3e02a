package main

import (
	"path/filepath"
	"strings"
	"testing"

	"address-book-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func ptr(f float64) *float64 { return &f }

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []models.AddressInput
		errContains string
	}{
		{
			name: "valid rows with blank line",
			input: "name,street,city,latitude,longitude\n" +
				"Jane Doe, Main Street 1 ,Boston,42.36,-71.06\n" +
				",,,,\n" +
				"Tokyo Station,Marunouchi,Tokyo,\"35,681236\",139.767125\n",
			expected: []models.AddressInput{
				{Name: "Jane Doe", Street: "Main Street 1", City: "Boston", Latitude: ptr(42.36), Longitude: ptr(-71.06)},
				{Name: "Tokyo Station", Street: "Marunouchi", City: "Tokyo", Latitude: ptr(35.681236), Longitude: ptr(139.767125)},
			},
		},
		{
			name:        "short row",
			input:       "name,street,city,latitude,longitude\nJane,Main Street,Boston,1\n",
			errContains: "line 2: invalid record length",
		},
		{
			name:        "bad latitude",
			input:       "name,street,city,latitude,longitude\nJane,Main Street,Boston,north,1\n",
			errContains: "line 2: invalid latitude",
		},
		{
			name:        "invalid city",
			input:       "name,street,city,latitude,longitude\nJane,Main Street,Boston,1,1\nJoe,Side Street,Area 51,1,1\n",
			errContains: "line 3: city must contain only letters and spaces",
		},
		{
			name:        "out of range longitude",
			input:       "name,street,city,latitude,longitude\nJane,Main Street,Boston,1,200\n",
			errContains: "longitude out of range",
		},
		{
			name:        "missing header",
			input:       "",
			errContains: "failed to read header",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCSV(strings.NewReader(tt.input))
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadRecords_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "addresses.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"name", "street", "city", "latitude", "longitude"},
		{"Jane Doe", "Main Street 1", "Boston", "42.36", "-71.06"},
		{"Null Island", "Gulf of Guinea", "Nowhere", "0", "0"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	got, err := readRecords(path, "")
	require.NoError(t, err)
	assert.Equal(t, []models.AddressInput{
		{Name: "Jane Doe", Street: "Main Street 1", City: "Boston", Latitude: ptr(42.36), Longitude: ptr(-71.06)},
		{Name: "Null Island", Street: "Gulf of Guinea", City: "Nowhere", Latitude: ptr(0), Longitude: ptr(0)},
	}, got)

	_, err = readRecords(path, "Missing")
	assert.Error(t, err)
}

func TestReadRecords_UnsupportedExtension(t *testing.T) {
	_, err := readRecords("addresses.json", "")
	assert.ErrorContains(t, err, "unsupported file type")
}
