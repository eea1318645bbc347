package process

import (
	"github.com/hashicorp/go-bexpr"
)

// Matcher filters rows with a boolean match expression. Expressions use
// the go-bexpr grammar (equality, membership, regex matching), e.g.
//
//	brand == "apple" or brand == "xiaomi"
//	name matches ".*pro.*"
//
// Cells are matched as raw text; ordering comparisons belong to Condition.
type Matcher struct {
	expr      string
	evaluator *bexpr.Evaluator
}

// ParseMatcher compiles a match expression.
func ParseMatcher(expr string) (*Matcher, error) {
	evaluator, err := bexpr.CreateEvaluator(expr)
	if err != nil {
		return nil, validationErrorf("invalid match expression %q: %v", expr, err)
	}
	return &Matcher{expr: expr, evaluator: evaluator}, nil
}

// Filter returns the subsequence of rows matching the expression,
// preserving their relative order.
func (m *Matcher) Filter(rows []map[string]string) ([]map[string]string, error) {
	filtered := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		vars := make(map[string]interface{}, len(row))
		for col, val := range row {
			vars[col] = val
		}

		match, err := m.evaluator.Evaluate(vars)
		if err != nil {
			return nil, validationErrorf("evaluating match expression %q: %v", m.expr, err)
		}
		if match {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}
