package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers invalid constructor arguments, empty name fields,
	// non-positive operation amounts, and negative rates or opening balances.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrCodeFormat is returned when a confirmation code does not decode into
	// the expected kind-account-timestamp-sequence structure.
	ErrCodeFormat = errors.New("malformed confirmation code")
)

// InsufficientFundsError is the concrete error for a rejected withdrawal.
// The account still issues a declined (kind X) confirmation for the attempt;
// it is carried here so callers can record the rejection.
type InsufficientFundsError struct {
	Declined Confirmation
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: declined %s", e.Declined.Code())
}

// Unwrap makes the error match ErrInsufficientFunds under errors.Is.
func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
