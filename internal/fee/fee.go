// Package fee computes the proportional fee charged on transfers between
// vault accounts of different owners.
package fee

import (
	"errors"
	"fmt"

	"github.com/mtlprog/vault/internal/amount"
)

// ErrInvalidRate is returned for a zero denominator or a rate above 100%.
var ErrInvalidRate = errors.New("invalid fee rate")

var hundred = amount.FromUint64(100)

// Rate is a fee expressed as an exact ratio Numerator/Denominator.
type Rate struct {
	Numerator   amount.Amount `json:"numerator"`
	Denominator amount.Amount `json:"denominator"`
}

// NewRate builds a Rate from the base-10 strings reported in vault metadata.
func NewRate(numerator, denominator string) (Rate, error) {
	num, err := amount.FromString(numerator)
	if err != nil {
		return Rate{}, fmt.Errorf("%w: numerator: %w", ErrInvalidRate, err)
	}
	den, err := amount.FromString(denominator)
	if err != nil {
		return Rate{}, fmt.Errorf("%w: denominator: %w", ErrInvalidRate, err)
	}
	r := Rate{Numerator: num, Denominator: den}
	if err := r.Validate(); err != nil {
		return Rate{}, err
	}
	return r, nil
}

// Validate checks Denominator > 0 and Numerator <= Denominator.
func (r Rate) Validate() error {
	if r.Denominator.IsZero() {
		return fmt.Errorf("%w: zero denominator", ErrInvalidRate)
	}
	if r.Numerator.Cmp(r.Denominator) > 0 {
		return fmt.Errorf("%w: %s/%s exceeds 100%%", ErrInvalidRate, r.Numerator, r.Denominator)
	}
	return nil
}

// Compute returns floor(a*Numerator/Denominator) and the remainder a-fee.
// The product is formed before dividing so no truncation error builds up
// on large balances. fee+net always equals a.
func Compute(a amount.Amount, r Rate) (fee, net amount.Amount) {
	fee, _ = a.MulDiv(r.Numerator, r.Denominator)
	// Only reachable with a rate that fails Validate.
	if fee.Cmp(a) > 0 {
		fee = a
	}
	return fee, a.SaturatingSub(fee)
}

// Percentage returns floor(Numerator*100/Denominator). Rates below 1% show
// as 0 even though Compute still charges them.
func Percentage(r Rate) uint64 {
	p, _ := hundred.MulDiv(r.Numerator, r.Denominator)
	n, _ := p.Uint64()
	return n
}
