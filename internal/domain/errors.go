package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
const (
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNoItems           = "no matching items"
	ErrMsgInvalidBoxType    = "invalid lootbox rarity type"
	ErrMsgInvalidChannel    = "invalid channel id"
	ErrMsgAccountNotFound   = "account not found"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: ...", domain.ErrXxx) for additional context
// and match them with errors.Is at the HTTP boundary.
var (
	// ErrInvalidInput covers missing or malformed request fields
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// ErrInsufficientFunds means balance is below a price or bet; no state was mutated
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// ErrNoItems means a sell matched zero ledger rows
	ErrNoItems = errors.New(ErrMsgNoItems)

	// ErrInvalidBoxType means an unknown purchasable box tier was requested
	ErrInvalidBoxType = errors.New(ErrMsgInvalidBoxType)

	// ErrInvalidChannel means the channel identifier failed validation
	ErrInvalidChannel = errors.New(ErrMsgInvalidChannel)

	// ErrAccountNotFound is an internal marker for a missing account row
	ErrAccountNotFound = errors.New(ErrMsgAccountNotFound)
)

// InsufficientFundsError carries the amounts needed to phrase a useful
// refusal. Matches errors.Is(err, ErrInsufficientFunds).
type InsufficientFundsError struct {
	Need int
	Have int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: need %d, have %d", ErrMsgInsufficientFunds, e.Need, e.Have)
}

func (e *InsufficientFundsError) Unwrap() error { return ErrInsufficientFunds }
