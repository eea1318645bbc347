package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadCSV loads a CSV file into a Table. The first record is the header;
// a first record made entirely of numbers means the file has no header
// row and is rejected, as are empty and header-only files.
func ReadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	header := records[0]
	if looksNumeric(header) {
		return nil, fmt.Errorf("file %s has no header row", path)
	}
	if len(records) == 1 {
		return nil, fmt.Errorf("file %s contains no data rows", path)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// looksNumeric reports whether every field parses as a number, meaning a
// record is data rather than column names.
func looksNumeric(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err != nil {
			return false
		}
	}
	return true
}
