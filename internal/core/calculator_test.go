package core

import (
	"errors"
	"math"
	"testing"
)

// sampleRows is a small composition table used across tests.
func sampleRows() [][]string {
	return [][]string{
		RequiredColumns(),
		{"A001", "Rice", "12.0", "2.5 ± 0.1", "0.5", "0.6 ± 0.05", "1.2", "0.8", "0.4", "79.1", "130"},
		{"B002", "Lentils", "10", "24.6 ± 1.2", "2.8", "1.1", "10.7", "9.9", "0.8", "52.6 ± 2.0", "352 ± 9"},
		{"C003", "Seaweed", "", "trace", "± 0.2", "0.2", "n/a", "1", "1", "5", "40"},
	}
}

func sampleTable(t *testing.T) *Table {
	t.Helper()
	table, err := BuildTable("sample", sampleRows())
	if err != nil {
		t.Fatalf("BuildTable() error = %v", err)
	}
	return table
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCompute_Example(t *testing.T) {
	table := sampleTable(t)

	res, err := Compute(table, "A001", 200)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	if res.Code != "A001" || res.Name != "Rice" || res.Quantity != 200 {
		t.Errorf("result header = (%q, %q, %v), want (A001, Rice, 200)", res.Code, res.Name, res.Quantity)
	}

	protein, ok := res.Amount(Protein)
	if !ok || !almostEqual(protein, 5.0) {
		t.Errorf("Protein = %v (ok=%v), want 5.0", protein, ok)
	}
	energy, ok := res.Amount(Energy)
	if !ok || !almostEqual(energy, 260.0) {
		t.Errorf("Energy = %v (ok=%v), want 260.0", energy, ok)
	}

	if len(res.Amounts) != len(Nutrients) {
		t.Errorf("len(Amounts) = %d, want %d", len(res.Amounts), len(Nutrients))
	}
	if len(res.Unresolved) != 0 {
		t.Errorf("Unresolved = %v, want none", res.Unresolved)
	}
}

func TestCompute_FixedOrderAndUnits(t *testing.T) {
	res, err := Compute(sampleTable(t), "B002", 100)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	for i, a := range res.Amounts {
		if a.Nutrient != Nutrients[i] {
			t.Errorf("Amounts[%d] = %s, want %s", i, a.Nutrient, Nutrients[i])
		}
		wantUnit := "g"
		if a.Nutrient == Energy {
			wantUnit = "kcal"
		}
		if a.Unit != wantUnit {
			t.Errorf("%s unit = %q, want %q", a.Nutrient, a.Unit, wantUnit)
		}
	}
}

func TestCompute_BaselineReturnsRawValues(t *testing.T) {
	table := sampleTable(t)
	rec, _ := table.Lookup("B002")

	res, err := Compute(table, "B002", 100)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	for _, a := range res.Amounts {
		raw, _ := ParseValue(rec.Raw[nutrientIndex(t, a.Nutrient)])
		if a.Value != raw {
			t.Errorf("%s at 100g = %v, want raw %v", a.Nutrient, a.Value, raw)
		}
	}
}

func TestCompute_Linearity(t *testing.T) {
	table := sampleTable(t)
	quantities := []float64{1, 37.5, 100, 250, 1000}

	for _, code := range []string{"A001", "B002"} {
		for _, q1 := range quantities {
			for _, q2 := range quantities {
				r1, err := Compute(table, code, q1)
				if err != nil {
					t.Fatalf("Compute(%s, %v) error = %v", code, q1, err)
				}
				r2, err := Compute(table, code, q2)
				if err != nil {
					t.Fatalf("Compute(%s, %v) error = %v", code, q2, err)
				}
				for i := range r1.Amounts {
					want := r1.Amounts[i].Value * (q2 / q1)
					if math.Abs(r2.Amounts[i].Value-want) > 1e-9*math.Max(1, want) {
						t.Errorf("%s %s: q=%v gives %v, want %v", code, r2.Amounts[i].Nutrient, q2, r2.Amounts[i].Value, want)
					}
				}
			}
		}
	}
}

func TestCompute_UnresolvedFieldsAreExcluded(t *testing.T) {
	res, err := Compute(sampleTable(t), "C003", 50)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	wantUnresolved := []Nutrient{Moisture, Protein, Ash, Total}
	if len(res.Unresolved) != len(wantUnresolved) {
		t.Fatalf("Unresolved = %v, want %v", res.Unresolved, wantUnresolved)
	}
	for i, n := range wantUnresolved {
		if res.Unresolved[i] != n {
			t.Errorf("Unresolved[%d] = %s, want %s", i, res.Unresolved[i], n)
		}
		if _, ok := res.Amount(n); ok {
			t.Errorf("Amount(%s) present, want absent", n)
		}
	}

	if v, ok := res.Amount(TotalFat); !ok || !almostEqual(v, 0.1) {
		t.Errorf("Total Fat = %v (ok=%v), want 0.1", v, ok)
	}
}

func TestCompute_TrimsCode(t *testing.T) {
	res, err := Compute(sampleTable(t), "  A001\t", 100)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if res.Code != "A001" {
		t.Errorf("Code = %q, want A001", res.Code)
	}
}

func TestCompute_NotFound(t *testing.T) {
	res, err := Compute(sampleTable(t), "Z999", 100)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Compute() error = %v, want ErrNotFound", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Code != "Z999" {
		t.Errorf("NotFoundError code = %v, want Z999", nf)
	}
	if len(res.Amounts) != 0 || res.Code != "" {
		t.Errorf("result = %+v, want empty", res)
	}
}

func TestCompute_InvalidQuantity(t *testing.T) {
	table := sampleTable(t)

	for _, q := range []float64{0, 0.5, -10, math.NaN(), math.Inf(1)} {
		if _, err := Compute(table, "A001", q); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Compute(q=%v) error = %v, want ErrInvalidQuantity", q, err)
		}
	}

	if _, err := Compute(table, "A001", MinQuantity); err != nil {
		t.Errorf("Compute(q=%v) error = %v, want nil", MinQuantity, err)
	}
}

func TestCompute_OverflowingQuantity(t *testing.T) {
	table := sampleTable(t)

	res, err := Compute(table, "A001", 1.7e308)
	if !errors.Is(err, ErrQuantityTooLarge) {
		t.Fatalf("Compute() error = %v, want ErrQuantityTooLarge", err)
	}
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Error("ErrQuantityTooLarge should also match ErrInvalidQuantity")
	}
	if len(res.Amounts) != 0 {
		t.Errorf("Amounts = %v, want none", res.Amounts)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{Amount{Nutrient: Protein, Value: 5, Unit: "g"}, "Protein: 5.00 g"},
		{Amount{Nutrient: Energy, Value: 260, Unit: "kcal"}, "Energy: 260.00 kcal"},
		{Amount{Nutrient: TotalFat, Value: 1.0 / 3.0, Unit: "g"}, "Total Fat: 0.33 g"},
		{Amount{Nutrient: Ash, Value: 2.675, Unit: "g"}, "Ash: 2.67 g"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.amount); got != tt.want {
			t.Errorf("FormatAmount(%+v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatting_DoesNotAccumulate(t *testing.T) {
	table := sampleTable(t)

	first, _ := Compute(table, "B002", 333)
	_ = FormatAmount(first.Amounts[0])
	second, _ := Compute(table, "B002", 333)

	for i := range first.Amounts {
		if first.Amounts[i].Value != second.Amounts[i].Value {
			t.Errorf("%s changed between computations: %v vs %v",
				first.Amounts[i].Nutrient, first.Amounts[i].Value, second.Amounts[i].Value)
		}
	}
}

func TestHeading(t *testing.T) {
	res := Result{Code: "A001", Name: "Rice", Quantity: 200}
	if got, want := Heading(res), "For 200g of Rice (Code: A001):"; got != want {
		t.Errorf("Heading() = %q, want %q", got, want)
	}
}

func TestParseOptionLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"A001 - Rice", "A001"},
		{" A001 - Rice, white - cooked", "A001"},
		{"A001", "A001"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ParseOptionLabel(tt.label); got != tt.want {
			t.Errorf("ParseOptionLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func nutrientIndex(t *testing.T, n Nutrient) int {
	t.Helper()
	for i, nn := range Nutrients {
		if nn == n {
			return i
		}
	}
	t.Fatalf("unknown nutrient %q", n)
	return -1
}
