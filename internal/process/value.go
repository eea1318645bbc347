package process

import (
	"strconv"
	"strings"
)

// Value is a cell classified for comparison: numeric when the raw text
// parses as a number, otherwise the original text.
type Value struct {
	Num   float64
	Text  string
	IsNum bool
}

// Coerce classifies a raw cell. The original text is preserved verbatim,
// including case and whitespace, so text comparisons see what the file
// contained.
func Coerce(raw string) Value {
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return Value{Num: num, Text: raw, IsNum: true}
	}
	return Value{Text: raw}
}

// Compare returns -1, 0, or +1 ordering a against b. The comparison is
// numeric only when both sides are numeric; any mix falls back to
// case-sensitive lexical comparison of the original text. Mixed
// numeric/text pairs are never a type error.
func Compare(a, b Value) int {
	if a.IsNum && b.IsNum {
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		}
		return 0
	}
	return strings.Compare(a.Text, b.Text)
}
