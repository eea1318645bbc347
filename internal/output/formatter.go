// Package output provides formatters for rendering processed tabular data.
//
// Supported formats:
//   - table: aligned grid table (the default display format)
//   - JSON Lines: one JSON object per line
//   - CSV: comma-separated values with header row
//
// All formatters take the dataset's ordered header alongside the rows so
// columns come out in file order.
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(header, rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import "io"

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render rows in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes rows in the formatter's specific format
	Format(header []string, rows []map[string]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}
