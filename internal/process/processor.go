package process

import (
	"fmt"
	"strings"
)

// Options selects the operations applied in one run. Every field is
// optional; an empty string skips that operation.
type Options struct {
	Where     string // filter expression, e.g. "price>500"
	Match     string // boolean match expression, e.g. `brand == "apple"`
	Aggregate string // aggregate expression, e.g. "price=avg"
	OrderBy   string // sort expression, e.g. "price=desc"
}

// Scalar is a single aggregate result together with the column and
// function that produced it.
type Scalar struct {
	Column   string
	Function string
	Value    float64
}

// Label returns the display label for the scalar, e.g. "avg(price)".
func (s Scalar) Label() string {
	return fmt.Sprintf("%s(%s)", s.Function, s.Column)
}

// Result is either a dataset (Rows) or a single aggregate (Scalar).
// Exactly one of the two is set.
type Result struct {
	Rows   []map[string]string
	Scalar *Scalar
}

// Processor owns a loaded dataset and applies filtering, aggregation, and
// sorting to it. The dataset is never mutated; every operation returns a
// new value.
type Processor struct {
	header []string
	rows   []map[string]string
}

// New creates a processor over a loaded dataset. Every row is expected to
// carry exactly the header's columns.
func New(header []string, rows []map[string]string) *Processor {
	return &Processor{header: header, rows: rows}
}

// Header returns the dataset's column names in file order.
func (p *Processor) Header() []string {
	return p.header
}

// Run applies the requested operations: filter and match narrow the
// dataset, then either an aggregate reduces it to a scalar or a sort
// reorders it. When both an aggregate and a sort are requested, the
// aggregate takes precedence; the sort expression is still validated so a
// bad one never passes silently. All expressions are validated before any
// row scan, and failures are prefixed with the stage that rejected them.
func (p *Processor) Run(opts Options) (*Result, error) {
	rows := p.rows

	if opts.Where != "" {
		cond, err := ParseCondition(opts.Where, p.header)
		if err != nil {
			return nil, fmt.Errorf("filter validation error: %w", err)
		}
		rows = cond.Filter(rows)
	}

	if opts.Match != "" {
		matcher, err := ParseMatcher(opts.Match)
		if err != nil {
			return nil, fmt.Errorf("match validation error: %w", err)
		}
		rows, err = matcher.Filter(rows)
		if err != nil {
			return nil, fmt.Errorf("match validation error: %w", err)
		}
	}

	var spec *SortSpec
	if opts.OrderBy != "" {
		parsed, err := ParseOrderBy(opts.OrderBy, p.header)
		if err != nil {
			return nil, fmt.Errorf("sort validation error: %w", err)
		}
		spec = parsed
	}

	if opts.Aggregate != "" {
		agg, err := ParseAggregation(opts.Aggregate, p.header)
		if err != nil {
			return nil, fmt.Errorf("aggregation validation error: %w", err)
		}
		value, err := agg.Apply(rows)
		if err != nil {
			return nil, fmt.Errorf("aggregation validation error: %w", err)
		}
		return &Result{Scalar: &Scalar{Column: agg.Column, Function: agg.Function, Value: value}}, nil
	}

	if spec != nil {
		rows = spec.Sort(rows)
	}

	return &Result{Rows: rows}, nil
}

// requireColumn validates that column is part of the header. The error
// enumerates the available columns to help the user.
func requireColumn(column string, header []string) error {
	for _, h := range header {
		if h == column {
			return nil
		}
	}
	return validationErrorf("column %q not found; available columns: %s",
		column, strings.Join(header, ", "))
}

// splitSpec splits a key=value configuration string such as "price=avg"
// or "price=desc" on its first "=".
func splitSpec(expr, kind, example string) (column, value string, err error) {
	if strings.TrimSpace(expr) == "" {
		return "", "", validationErrorf("%s expression is empty", kind)
	}

	idx := strings.Index(expr, "=")
	if idx < 0 {
		return "", "", validationErrorf("invalid %s %q: expected format %q", kind, expr, example)
	}

	column = strings.TrimSpace(expr[:idx])
	value = strings.TrimSpace(expr[idx+1:])

	if column == "" {
		return "", "", validationErrorf("invalid %s %q: column name is empty", kind, expr)
	}
	if value == "" {
		return "", "", validationErrorf("invalid %s %q: expected format %q", kind, expr, example)
	}
	return column, value, nil
}
