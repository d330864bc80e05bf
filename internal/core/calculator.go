package core

import (
	"fmt"
	"math"
)

// Quantity bounds, in grams.
const (
	MinQuantity     = 1.0
	DefaultQuantity = 100.0
	BaseQuantity    = 100.0 // Table values are per 100g
)

// Compute scales the nutrients of the food with the given code to quantity grams.
//
// The code is trimmed before matching. An unknown code returns a *NotFoundError
// and an empty Result. Cells that do not resolve to a number are left out of
// Result.Amounts and listed in Result.Unresolved.
func Compute(t *Table, code string, quantity float64) (Result, error) {
	if err := ValidateQuantity(quantity); err != nil {
		return Result{}, err
	}

	rec, ok := t.Lookup(code)
	if !ok {
		return Result{}, &NotFoundError{Code: CleanCell(code)}
	}

	return Scale(rec, quantity)
}

// Scale resolves every nutrient of rec and multiplies it by quantity/100.
// A scaled value that overflows returns ErrQuantityTooLarge.
func Scale(rec FoodRecord, quantity float64) (Result, error) {
	factor := quantity / BaseQuantity
	res := Result{
		Code:     rec.Code,
		Name:     rec.Name,
		Quantity: quantity,
		Amounts:  make([]Amount, 0, len(Nutrients)),
	}

	for i, n := range Nutrients {
		v, ok := ParseValue(rec.Raw[i])
		if !ok {
			res.Unresolved = append(res.Unresolved, n)
			continue
		}
		scaled := v * factor
		if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
			return Result{}, fmt.Errorf("%w: %v g of %s", ErrQuantityTooLarge, quantity, n)
		}
		res.Amounts = append(res.Amounts, Amount{
			Nutrient: n,
			Value:    scaled,
			Unit:     n.Unit(),
		})
	}

	return res, nil
}

// ValidateQuantity rejects quantities that are not finite or below MinQuantity.
func ValidateQuantity(quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) || quantity < MinQuantity {
		return fmt.Errorf("%w: %v (minimum %v g)", ErrInvalidQuantity, quantity, MinQuantity)
	}
	return nil
}
