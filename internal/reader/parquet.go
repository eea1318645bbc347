package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

// ReadParquet loads a parquet file into a Table. Column values are
// rendered to their raw string form so the processing engine sees the
// same cell representation as with CSV input. The header comes from the
// file schema, in schema order.
func ReadParquet(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	header := make([]string, 0, len(fields))
	for _, field := range fields {
		header = append(header, field.Name())
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("file %s has no columns", path)
	}

	pqReader := parquet.NewReader(pqFile)
	defer pqReader.Close()

	rows := make([]map[string]string, 0)
	for {
		row := make(map[string]interface{})
		err := pqReader.Read(&row)
		if err != nil {
			// Use errors.Is for proper EOF detection
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		cells := make(map[string]string, len(header))
		for _, col := range header {
			cells[col] = formatCell(row[col])
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file %s contains no data rows", path)
	}

	return &Table{Header: header, Rows: rows}, nil
}

// formatCell renders a parquet value as raw cell text.
func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
