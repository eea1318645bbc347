package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes rows as CSV with the header in dataset column order.
func (c *CSVFormatter) Format(header []string, rows []map[string]string) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, len(header))
		for i, col := range header {
			record[i] = sanitizeCell(row[col])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitizeCell prefixes cells whose first character could trigger formula
// execution in spreadsheet applications. Numeric cells pass through so
// negative numbers survive intact.
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	if _, err := strconv.ParseFloat(val, 64); err == nil {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		// Escape existing single quotes and prefix with quote to prevent formula injection
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
