package core

import (
	"testing"
)

// ----------------------------------------------------------------------------
// ParseValue Tests
// ----------------------------------------------------------------------------

func TestParseValue(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   float64
	}{
		// Plain numbers
		{name: "integer", input: "7", wantOK: true, want: 7},
		{name: "decimal", input: "130.5", wantOK: true, want: 130.5},
		{name: "leading decimal point", input: ".75", wantOK: true, want: 0.75},
		{name: "zero is a value", input: "0", wantOK: true, want: 0},
		{name: "surrounding whitespace", input: "  42  ", wantOK: true, want: 42},
		{name: "excel formula prefix", input: `="12.5"`, wantOK: true, want: 12.5},

		// Uncertainty annotations
		{name: "value with uncertainty", input: "12.3 ± 0.4", wantOK: true, want: 12.3},
		{name: "no spaces around marker", input: "2.5±0.1", wantOK: true, want: 2.5},
		{name: "integer with uncertainty", input: "86 ± 3", wantOK: true, want: 86},
		{name: "leading decimal with uncertainty", input: ".5 ± .1", wantOK: true, want: 0.5},

		// Absent
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
		{name: "non-numeric text", input: "trace", wantOK: false},
		{name: "marker without leading number", input: "± 0.4", wantOK: false},
		{name: "text before number with marker", input: "approx 3 ± 1", wantOK: false},
		{name: "text suffix without marker", input: "12 g", wantOK: false},
		{name: "NaN literal", input: "NaN", wantOK: false},
		{name: "infinity literal", input: "Inf", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseValue(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseValue(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !ok && got != 0 {
				t.Errorf("ParseValue(%q) returned %v with ok=false, want 0", tt.input, got)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// CleanCell / HeaderIndex Tests
// ----------------------------------------------------------------------------

func TestCleanCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  A001  ", "A001"},
		{"\ufeffFood Code", "Food Code"},
		{`="A001"`, "A001"},
		{"=A001", "A001"},
		{`"Rice"`, "Rice"},
		{"'Rice'", "Rice"},
		{"Nuts, 'mixed'", "Nuts, 'mixed'"},
		{`'Rice"`, `'Rice"`},
		{`"Chef's salad"`, "Chef's salad"},
		{`"`, `"`},
		{`="`, `"`},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanCell(tt.input); got != tt.want {
			t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestMakeHeaderIndex(t *testing.T) {
	idx := MakeHeaderIndex([]string{"\ufeffFood Code", " FOOD NAME ", "", "Energy", "energy"})

	want := map[string]int{"food code": 0, "food name": 1, "energy": 3}
	if len(idx) != len(want) {
		t.Fatalf("len(idx) = %d, want %d (%v)", len(idx), len(want), idx)
	}
	for k, v := range want {
		if idx[k] != v {
			t.Errorf("idx[%q] = %d, want %d", k, idx[k], v)
		}
	}
}

func TestHeaderIndex_Cell(t *testing.T) {
	idx := MakeHeaderIndex([]string{"Food Code", "Food Name", "Energy"})
	row := []string{" A001 ", "Rice"}

	if got := idx.Cell(row, "food code"); got != "A001" {
		t.Errorf("Cell(food code) = %q, want %q", got, "A001")
	}
	if got := idx.Cell(row, "Energy"); got != "" {
		t.Errorf("Cell on short row = %q, want empty", got)
	}
	if got := idx.Cell(row, "Protein"); got != "" {
		t.Errorf("Cell on unknown column = %q, want empty", got)
	}
}
