package process

import (
	"strings"
)

// operators is ordered longest token first so ">=" is recognized before
// ">" when splitting an expression.
var operators = []string{">=", "<=", "!=", ">", "<", "="}

// Condition is a parsed column<op>value filter expression.
type Condition struct {
	Column   string
	Operator string
	Operand  string
}

// ParseCondition parses a filter expression such as "price>500" and
// validates it against the dataset header. The column must exist and the
// comparison value must be non-empty.
func ParseCondition(expr string, header []string) (*Condition, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, validationErrorf("filter expression is empty")
	}

	for _, op := range operators {
		idx := strings.Index(expr, op)
		if idx < 0 {
			continue
		}

		column := strings.TrimSpace(expr[:idx])
		operand := strings.TrimSpace(expr[idx+len(op):])

		if column == "" {
			return nil, validationErrorf("invalid filter %q: column name is empty", expr)
		}
		if operand == "" {
			return nil, validationErrorf("invalid filter %q: comparison value is empty", expr)
		}
		if err := requireColumn(column, header); err != nil {
			return nil, err
		}

		return &Condition{Column: column, Operator: op, Operand: operand}, nil
	}

	return nil, validationErrorf("invalid filter %q: expected column<op>value with op one of %s (e.g., \"price>500\")",
		expr, strings.Join(operators, ", "))
}

// Evaluate reports whether row satisfies the condition. The row's cell and
// the stored operand are coerced with the same numeric-or-text rule used
// everywhere else. Pure predicate, no side effects.
func (c *Condition) Evaluate(row map[string]string) bool {
	cmp := Compare(Coerce(row[c.Column]), Coerce(c.Operand))

	switch c.Operator {
	case "=":
		return cmp == 0
	case "!=":
		return cmp != 0
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	case "<=":
		return cmp <= 0
	}
	return false
}

// Filter returns the subsequence of rows satisfying the condition,
// preserving their relative order.
func (c *Condition) Filter(rows []map[string]string) []map[string]string {
	filtered := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		if c.Evaluate(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
