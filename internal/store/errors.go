package store

import (
	"errors"
	"fmt"
)

// ErrItemNotFound is returned when an inventory item id does not exist.
var ErrItemNotFound = errors.New("inventory item not found")

// DuplicateEmailError is returned by Register when the email is already
// taken. The conflicting email is carried for the user-facing message.
type DuplicateEmailError struct {
	Email string
}

// Error implements the error interface.
func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("email %q is already registered", e.Email)
}

// IsDuplicateEmail reports whether err is a DuplicateEmailError.
// Uses errors.As to handle wrapped errors.
func IsDuplicateEmail(err error) bool {
	var de *DuplicateEmailError
	return errors.As(err, &de)
}

// InsufficientStockError is returned by RecordSale when the requested
// quantity exceeds the item's current stock. Available reflects the live
// quantity on hand at the time of the attempt so callers can surface it.
type InsufficientStockError struct {
	ItemID    int64
	Requested int
	Available int
}

// Error implements the error interface.
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %d: requested %d, available %d",
		e.ItemID, e.Requested, e.Available)
}

// IsInsufficientStock reports whether err is an InsufficientStockError.
// Uses errors.As to handle wrapped errors.
func IsInsufficientStock(err error) bool {
	var ise *InsufficientStockError
	return errors.As(err, &ise)
}

// Validation sentinels. The interactive shell re-prompts before these can
// occur, but the store still rejects bad values so it cannot be driven into
// an invalid state by a non-interactive caller.
var (
	ErrNegativePrice       = errors.New("item price cannot be negative")
	ErrNegativeQuantity    = errors.New("item quantity cannot be negative")
	ErrNonPositiveQuantity = errors.New("sale quantity must be positive")
)
