package process

import (
	"sort"
	"strings"
)

// SortSpec orders a dataset by one column.
type SortSpec struct {
	Column string
	Desc   bool
}

// ParseOrderBy parses a sort expression such as "price=desc" and validates
// it against the dataset header. Directions are matched case-insensitively.
func ParseOrderBy(expr string, header []string) (*SortSpec, error) {
	column, direction, err := splitSpec(expr, "sort", "price=desc")
	if err != nil {
		return nil, err
	}
	if err := requireColumn(column, header); err != nil {
		return nil, err
	}

	switch strings.ToLower(direction) {
	case "asc":
		return &SortSpec{Column: column}, nil
	case "desc":
		return &SortSpec{Column: column, Desc: true}, nil
	}
	return nil, validationErrorf("invalid sort direction %q: use \"asc\" or \"desc\"", direction)
}

// Sort returns a sorted copy of rows; the input is left untouched. The
// sort is stable in both directions: rows with equal keys keep their
// original relative order, so descending flips the comparison rather than
// reversing the ascending result.
func (s *SortSpec) Sort(rows []map[string]string) []map[string]string {
	sorted := make([]map[string]string, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := Compare(Coerce(sorted[i][s.Column]), Coerce(sorted[j][s.Column]))
		if s.Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted
}
