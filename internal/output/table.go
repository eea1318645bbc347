package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders rows as an aligned grid table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes rows as a grid table. An empty dataset still renders the
// header so the user sees which columns were selected.
func (t *TableFormatter) Format(header []string, rows []map[string]string) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, row := range rows {
		record := make([]string, len(header))
		for i, col := range header {
			record[i] = row[col]
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
