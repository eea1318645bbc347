// Package reader loads tabular files into memory for processing.
//
// CSV is the primary format; files with a .parquet extension are read
// with the segmentio/parquet-go library. Either way the result is a
// Table: an ordered header and rows of raw string cells.
package reader

import (
	"path/filepath"
	"strings"
)

// Table is an in-memory dataset: an ordered header and its rows. Every
// row maps each header column to its raw cell text.
type Table struct {
	Header []string
	Rows   []map[string]string
}

// Load reads the file at path, dispatching on extension: ".parquet"
// files are read as parquet, everything else as CSV.
func Load(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return ReadParquet(path)
	}
	return ReadCSV(path)
}
