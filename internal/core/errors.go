package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by errors.Is for any *NotFoundError.
	ErrNotFound = errors.New("food not found")

	// ErrInvalidQuantity is returned by Compute for quantities below MinQuantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrQuantityTooLarge is returned by Compute when a scaled value is not
	// finite. It wraps ErrInvalidQuantity.
	ErrQuantityTooLarge = fmt.Errorf("%w: quantity too large", ErrInvalidQuantity)

	// ErrUnsupportedSource is returned by OpenSource for unknown locations.
	ErrUnsupportedSource = errors.New("unsupported table source")
)

// SchemaError reports a table that cannot be used because required columns
// are absent or no header row could be found.
type SchemaError struct {
	Source  string
	Missing []string // Required columns not present in the header
	Reason  string   // Set when the problem is not about missing columns
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("schema error")
	if e.Source != "" {
		b.WriteString(" in ")
		b.WriteString(e.Source)
	}
	b.WriteString(": ")
	if len(e.Missing) > 0 {
		b.WriteString("missing required columns: ")
		b.WriteString(strings.Join(e.Missing, ", "))
	} else {
		b.WriteString(e.Reason)
	}
	return b.String()
}

// NotFoundError reports a food code that matches no row.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("food not found: no row with code %q", e.Code)
}

// Is makes errors.Is(err, ErrNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IsSchemaError reports whether err is or wraps a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
