package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientStock means the requested quantity exceeds the units
	// currently available. Recoverable: retry with a lower quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrBelowFloor means a due-date shortening would pull the due date
	// earlier than one week after the rental start.
	ErrBelowFloor = errors.New("due date cannot be earlier than one week after rental start")

	// ErrNotFound means the referenced item, rental, or report does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed input: zero quantities, empty names,
	// duplicate subcategories, an empty cart at checkout.
	ErrValidation = errors.New("validation failed")
)

// InsufficientStockError carries the item and quantities behind an
// ErrInsufficientStock so the caller can surface a useful message.
type InsufficientStockError struct {
	ItemID    string
	ItemName  string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d", e.ItemName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
