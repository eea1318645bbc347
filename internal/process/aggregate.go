package process

import (
	"fmt"
	"sort"
	"strings"
)

// aggregateFunc reduces a column's raw values to a single number.
type aggregateFunc func(values []string) (float64, error)

// aggregators maps function names to implementations. Read-only after
// package initialization.
var aggregators = map[string]aggregateFunc{
	"avg":    aggregateAvg,
	"min":    aggregateMin,
	"max":    aggregateMax,
	"median": aggregateMedian,
	"sum":    aggregateSum,
	"count":  aggregateCount,
}

func aggregatorNames() []string {
	names := make([]string, 0, len(aggregators))
	for name := range aggregators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aggregation is a parsed column=function aggregate expression.
type Aggregation struct {
	Column   string
	Function string

	fn aggregateFunc
}

// ParseAggregation parses an aggregate expression such as "price=avg" and
// validates it against the dataset header. Function names are matched
// case-insensitively.
func ParseAggregation(expr string, header []string) (*Aggregation, error) {
	column, function, err := splitSpec(expr, "aggregate", "price=avg")
	if err != nil {
		return nil, err
	}

	function = strings.ToLower(function)
	fn, ok := aggregators[function]
	if !ok {
		return nil, validationErrorf("unsupported aggregate function %q; supported: %s",
			function, strings.Join(aggregatorNames(), ", "))
	}
	if err := requireColumn(column, header); err != nil {
		return nil, err
	}

	return &Aggregation{Column: column, Function: function, fn: fn}, nil
}

// Apply computes the aggregate over the column's values. Aggregating an
// empty dataset is an error for every function except count, which
// legitimately returns zero.
func (a *Aggregation) Apply(rows []map[string]string) (float64, error) {
	if len(rows) == 0 && a.Function != "count" {
		return 0, validationErrorf("no data to aggregate in column %q", a.Column)
	}

	values := make([]string, 0, len(rows))
	for _, row := range rows {
		values = append(values, row[a.Column])
	}

	result, err := a.fn(values)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", a.Column, err)
	}
	return result, nil
}

// numericValues coerces values for numeric aggregation. Entries that do
// not parse as numbers are skipped, not reported as errors.
func numericValues(values []string) []float64 {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if cv := Coerce(v); cv.IsNum {
			nums = append(nums, cv.Num)
		}
	}
	return nums
}

func errNoNumericData() error {
	return validationErrorf("no numeric data")
}

func aggregateAvg(values []string) (float64, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return 0, errNoNumericData()
	}

	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums)), nil
}

func aggregateSum(values []string) (float64, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return 0, errNoNumericData()
	}

	sum := 0.0
	for _, n := range nums {
		sum += n
	}
	return sum, nil
}

func aggregateMin(values []string) (float64, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return 0, errNoNumericData()
	}

	min := nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
	}
	return min, nil
}

func aggregateMax(values []string) (float64, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return 0, errNoNumericData()
	}

	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}
	return max, nil
}

func aggregateMedian(values []string) (float64, error) {
	nums := numericValues(values)
	if len(nums) == 0 {
		return 0, errNoNumericData()
	}

	sort.Float64s(nums)
	n := len(nums)
	if n%2 == 0 {
		return (nums[n/2-1] + nums[n/2]) / 2, nil
	}
	return nums[n/2], nil
}

// aggregateCount counts entries that are non-empty after trimming. It
// never requires numeric coercion, so text columns are valid input.
func aggregateCount(values []string) (float64, error) {
	count := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			count++
		}
	}
	return float64(count), nil
}
