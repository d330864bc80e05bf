package core

// validation.go checks a table's header before any rows are accepted.
//
// Spreadsheets often carry a title or notes above the real header, so the
// header is searched for among the first HeaderSearchRows non-empty rows.
// The first row that contains every required column wins.

import "strings"

// HeaderSearchRows is how many leading rows are considered as header candidates.
var HeaderSearchRows = 10

// ValidateHeaders checks that all required columns exist in a header row.
// Returns the header index, or a *SchemaError listing every missing column.
func ValidateHeaders(source string, header []string) (HeaderIndex, error) {
	idx := MakeHeaderIndex(header)
	var missing []string

	for _, col := range RequiredColumns() {
		if _, ok := idx[strings.ToLower(col)]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, &SchemaError{Source: source, Missing: missing}
	}

	return idx, nil
}

// findHeaderRow returns the position of the header row and its index.
// When no candidate qualifies, the error describes the first non-empty row.
func findHeaderRow(source string, rows [][]string) (int, HeaderIndex, error) {
	first := -1
	checked := 0

	for i, row := range rows {
		if checked >= HeaderSearchRows {
			break
		}
		if isBlankRow(row) {
			continue
		}
		checked++
		if first < 0 {
			first = i
		}
		if idx, err := ValidateHeaders(source, row); err == nil {
			return i, idx, nil
		}
	}

	if first < 0 {
		return 0, nil, &SchemaError{Source: source, Reason: "table is empty"}
	}

	_, err := ValidateHeaders(source, rows[first])
	return 0, nil, err
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if CleanCell(c) != "" {
			return false
		}
	}
	return true
}
