package core

// convert.go provides cell cleanup and numeric extraction for table data.
//
// These functions handle the messy reality of composition tables:
//   - Values annotated with an uncertainty ("12.3 ± 0.4")
//   - Excel formula prefixes (="value") and stray quotes
//   - Byte order marks on the first header cell
//
// ParseValue never fails loudly: a cell that has no usable number resolves
// to (0, false) so callers can tell "absent" apart from "zero".

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// UncertaintyMarker separates a measured value from its uncertainty.
const UncertaintyMarker = "±"

// leadingNumberRegex matches an optional decimal number at the start of a cell.
var leadingNumberRegex = regexp.MustCompile(`^([0-9]*\.?[0-9]+)`)

// ParseValue resolves a raw nutrient cell to a number.
//
//	"12.3 ± 0.4" -> 12.3, true
//	"7"          -> 7, true
//	"trace"      -> 0, false
//	""           -> 0, false
func ParseValue(raw string) (float64, bool) {
	s := CleanCell(raw)
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, UncertaintyMarker) {
		m := leadingNumberRegex.FindStringSubmatch(s)
		if m == nil {
			return 0, false
		}
		s = m[1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// HeaderIndex maps column names (lowercase) to their position in a row.
type HeaderIndex map[string]int

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive matching. The first occurrence of
// a repeated header wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanCell(h))
		if key == "" {
			continue
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// Cell returns the cleaned value of a named column, or "" when the column
// is unknown or the row is short.
func (h HeaderIndex) Cell(row []string, col string) string {
	pos, ok := h[strings.ToLower(col)]
	if !ok || pos >= len(row) {
		return ""
	}
	return CleanCell(row[pos])
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// - Trims whitespace and a leading BOM
// - Removes Excel formula prefix (="...")
// - Removes one matched pair of surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)

	if len(s) >= 3 && strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = unquote(s)
	return strings.TrimSpace(s)
}

// unquote strips s only when it both starts and ends with the same quote.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
