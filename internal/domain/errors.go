package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidOrder rejects malformed trade intents before any store access.
type ErrInvalidOrder struct {
	Reason string
}

func (e ErrInvalidOrder) Error() string {
	return fmt.Sprintf("invalid order: %s", e.Reason)
}

// ErrInsufficientFunds rejects a buy whose cost exceeds available cash.
// No partial fills - the order is all-or-nothing.
type ErrInsufficientFunds struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e ErrInsufficientFunds) Error() string {
	return fmt.Sprintf(
		"insufficient funds: order costs $%s but only $%s is available",
		e.Required.StringFixed(2),
		e.Available.StringFixed(2),
	)
}

// ErrNoPosition rejects a sell of a symbol the user does not hold.
type ErrNoPosition struct {
	Symbol string
}

func (e ErrNoPosition) Error() string {
	return fmt.Sprintf("no position held in %s", e.Symbol)
}

// ErrInsufficientShares rejects a sell larger than the held quantity.
type ErrInsufficientShares struct {
	Symbol    string
	Requested decimal.Decimal
	Owned     decimal.Decimal
}

func (e ErrInsufficientShares) Error() string {
	return fmt.Sprintf(
		"cannot sell %s shares of %s: only %s owned",
		e.Requested.String(),
		e.Symbol,
		e.Owned.String(),
	)
}
