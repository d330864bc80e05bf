package core

import (
	"github.com/google/uuid"
)

// Nutrient identifies one of the fixed nutrient columns of the table.
type Nutrient string

const (
	Moisture     Nutrient = "Moisture"
	Protein      Nutrient = "Protein"
	Ash          Nutrient = "Ash"
	TotalFat     Nutrient = "Total Fat"
	Total        Nutrient = "Total"
	Insoluble    Nutrient = "Insoluble"
	Soluble      Nutrient = "Soluble"
	Carbohydrate Nutrient = "Carbohydrate"
	Energy       Nutrient = "Energy"
)

// Column headers for the identifying fields.
const (
	ColFoodCode = "Food Code"
	ColFoodName = "Food Name"
)

// Nutrients lists every nutrient in display order.
var Nutrients = []Nutrient{
	Moisture, Protein, Ash, TotalFat, Total, Insoluble, Soluble, Carbohydrate, Energy,
}

// Unit returns the display unit for the nutrient: "kcal" for Energy, "g" otherwise.
func (n Nutrient) Unit() string {
	if n == Energy {
		return "kcal"
	}
	return "g"
}

// RequiredColumns returns every column a table must carry, in header order.
func RequiredColumns() []string {
	cols := make([]string, 0, 2+len(Nutrients))
	cols = append(cols, ColFoodCode, ColFoodName)
	for _, n := range Nutrients {
		cols = append(cols, string(n))
	}
	return cols
}

// FoodRecord is one row of the composition table, keyed by Code.
// Raw holds the unparsed nutrient cells in the order of Nutrients.
type FoodRecord struct {
	Code string
	Name string
	Raw  [9]string
}

// Label returns the selector label "<code> - <name>".
func (r FoodRecord) Label() string {
	return r.Code + " - " + r.Name
}

// LoadStats summarizes what happened to the source rows during a load.
type LoadStats struct {
	RowsRead       int // Data rows after the header
	MissingName    int // Dropped: empty Food Name
	MissingCode    int // Dropped: empty Food Code
	DuplicateCodes int // Dropped: code already seen earlier in the table
}

// Table is an immutable, in-memory nutrient-composition table.
type Table struct {
	LoadID uuid.UUID
	Source string
	Stats  LoadStats

	records []FoodRecord
	byCode  map[string]int
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Lookup returns the record for a food code. The code is trimmed before matching.
func (t *Table) Lookup(code string) (FoodRecord, bool) {
	i, ok := t.byCode[CleanCell(code)]
	if !ok {
		return FoodRecord{}, false
	}
	return t.records[i], true
}

// FoodOption is a selector entry for the UI.
type FoodOption struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Options returns selector entries in table order.
func (t *Table) Options() []FoodOption {
	opts := make([]FoodOption, len(t.records))
	for i, r := range t.records {
		opts[i] = FoodOption{Code: r.Code, Name: r.Name, Label: r.Label()}
	}
	return opts
}

// Amount is a scaled nutrient value. Value is unrounded.
type Amount struct {
	Nutrient Nutrient `json:"nutrient"`
	Value    float64  `json:"value"`
	Unit     string   `json:"unit"`
}

// Result is the outcome of a successful Compute.
type Result struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Quantity   float64    `json:"quantity"`
	Amounts    []Amount   `json:"amounts"`
	Unresolved []Nutrient `json:"unresolved,omitempty"`
}

// Amount returns the scaled value for a nutrient, or false if it was unresolved.
func (r Result) Amount(n Nutrient) (float64, bool) {
	for _, a := range r.Amounts {
		if a.Nutrient == n {
			return a.Value, true
		}
	}
	return 0, false
}
