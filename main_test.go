package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"number": 2, "postfix": "a", "type": "photo", "electronic": true,
		 "last_gv": 55, "total_items": 60, "storage_term": "permanent-retention"},
		{"number": 2.5}
	]`), 0o600))

	records, err := readReport(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, json.Number("2"), records[0]["number"])
	assert.Equal(t, "photo", records[0]["type"])
	assert.Equal(t, json.Number("2.5"), records[1]["number"])
}

func TestReadReportRejectsNonArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"number": 2}`), 0o600))

	_, err := readReport(path)
	assert.Error(t, err)
}

func TestReadReportMissingFile(t *testing.T) {
	_, err := readReport(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
