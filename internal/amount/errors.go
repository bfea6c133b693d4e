package amount

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount is wrapped by every parsing failure.
var ErrInvalidAmount = errors.New("invalid amount")

// Reason names the rule an input broke.
type Reason string

const (
	ReasonEmpty                 Reason = "empty"
	ReasonNegative              Reason = "negative"
	ReasonMultipleDecimalPoints Reason = "more than one decimal point"
	ReasonTooManyFractionDigits Reason = "too many fractional digits"
	ReasonNonDigit              Reason = "non-digit characters"
	ReasonOutOfRange            Reason = "out of range"
)

// InvalidAmountError reports why an input could not be turned into an Amount.
type InvalidAmountError struct {
	Input    string
	Reason   Reason
	Decimals uint8
}

func (e *InvalidAmountError) Error() string {
	if e.Reason == ReasonTooManyFractionDigits {
		return fmt.Sprintf("invalid amount %q: %s (at most %d)", e.Input, e.Reason, e.Decimals)
	}
	return fmt.Sprintf("invalid amount %q: %s", e.Input, e.Reason)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}

func invalid(input string, reason Reason, decimals uint8) error {
	return &InvalidAmountError{Input: input, Reason: reason, Decimals: decimals}
}

// ReasonOf extracts the failed rule from err, if err came from this package.
func ReasonOf(err error) (Reason, bool) {
	var e *InvalidAmountError
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return "", false
}
