package ledger

import (
	"fmt"

	"github.com/KirkDiggler/betabeer/internal/models"
)

// LedgerError is the error kind returned by betting and distribution operations.
// Callers match on it with errors.Is; details are wrapped around it.
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	// ErrValidation is malformed input: empty title or options, non-positive amount, unknown unit
	ErrValidation LedgerError = "validation error"

	// ErrNotFound is a missing group, bet, option or user
	ErrNotFound LedgerError = "not found"

	// ErrInvalidState is an operation not permitted in the bet's current state
	ErrInvalidState LedgerError = "invalid state"

	// ErrNotMember is a user that does not belong to the group
	ErrNotMember LedgerError = "not a member of the group"

	// ErrNotPermitted is a member attempting an owner-only action
	ErrNotPermitted LedgerError = "not permitted"

	// ErrInsufficientBalance is a change that would leave a balance below zero
	ErrInsufficientBalance LedgerError = "insufficient balance"

	// ErrConflict is a write against a record that changed since it was read
	ErrConflict LedgerError = "conflict: group changed since it was read"
)

// InsufficientBalanceError names the unit a member is short of
type InsufficientBalanceError struct {
	UserID    string
	Field     models.BalanceField
	Unit      models.DrinkUnit
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: %s needs %d %s to %s but has %d",
		ErrInsufficientBalance, e.UserID, e.Requested, e.Unit, e.Field, e.Available)
}

// Is lets errors.Is match ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
