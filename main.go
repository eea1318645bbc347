package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/fobuzzz/workmate/internal/output"
	"github.com/fobuzzz/workmate/internal/process"
	"github.com/fobuzzz/workmate/internal/reader"
)

var (
	whereFlag     = flag.String("where", "", "Filter condition (e.g., \"price>500\"; operators: >=, <=, !=, >, <, =)")
	matchFlag     = flag.String("match", "", "Boolean match expression (e.g., 'brand == \"apple\" or brand == \"xiaomi\"')")
	aggregateFlag = flag.String("aggregate", "", "Aggregate expression (e.g., \"price=avg\"; functions: avg, min, max, median, sum, count)")
	orderByFlag   = flag.String("order-by", "", "Sort expression (e.g., \"price=desc\")")
	formatFlag    = flag.String("f", "table", "Output format: table, json, csv")
	limitFlag     = flag.Int("limit", 0, "Limit number of displayed rows (0 = unlimited)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.csv>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to filter, aggregate, and sort tabular files (CSV or parquet).\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --where \"price>500\" products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --where \"brand=apple\" --order-by \"rating=desc\" products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --aggregate \"price=avg\" products.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f csv --order-by \"price=asc\" products.csv\n", os.Args[0])
	}

	flag.Parse()

	// Get filename from positional args
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing input file argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	filename := flag.Arg(0)

	table, err := reader.Load(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(os.Stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	processor := process.New(table.Header, table.Rows)
	result, err := processor.Run(process.Options{
		Where:     *whereFlag,
		Match:     *matchFlag,
		Aggregate: *aggregateFlag,
		OrderBy:   *orderByFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	header, rows := resultTable(result, table.Header)

	// Apply limit to displayed datasets; scalar results are a single row
	if result.Scalar == nil && *limitFlag > 0 && len(rows) > *limitFlag {
		rows = rows[:*limitFlag]
	}

	var formatter output.Formatter
	switch *formatFlag {
	case "table":
		formatter = output.NewTableFormatter(os.Stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(os.Stdout)
	case "csv":
		formatter = output.NewCSVFormatter(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(os.Stderr, "Supported formats: table, json, csv\n")
		os.Exit(1)
	}

	if err := formatter.Format(header, rows); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
}

// resultTable converts a processing result into a renderable header and
// rows. A scalar becomes a one-column table labeled function(column).
func resultTable(result *process.Result, header []string) ([]string, []map[string]string) {
	if result.Scalar == nil {
		return header, result.Rows
	}

	label := result.Scalar.Label()
	value := strconv.FormatFloat(result.Scalar.Value, 'g', -1, 64)
	return []string{label}, []map[string]string{{label: value}}
}
