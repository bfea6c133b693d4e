// Package amount holds exact token amounts and converts them to and from the
// decimal strings users type and read.
//
// An Amount counts the smallest indivisible unit of a token. The number of
// low-order digits that form the fractional part is not stored with the
// value; callers pass it (the token's decimals) to Parse and Format.
package amount

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Amount is a non-negative 256-bit integer. The zero value is zero.
type Amount struct {
	v uint256.Int
}

// FromUint64 returns n as an Amount.
func FromUint64(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// FromBig converts b, reporting false when b is negative or wider than 256 bits.
func FromBig(b *big.Int) (Amount, bool) {
	if b == nil || b.Sign() < 0 {
		return Amount{}, false
	}
	var a Amount
	if overflow := a.v.SetFromBig(b); overflow {
		return Amount{}, false
	}
	return a, true
}

// Max returns the largest representable Amount.
func Max() Amount {
	var a Amount
	a.v.SetAllOne()
	return a
}

// String renders the plain base-10 digits, without grouping or decimal point.
func (a Amount) String() string {
	return a.v.Dec()
}

func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Cmp returns -1, 0 or +1 as a is less than, equal to or greater than b.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Uint64 returns the low 64 bits and whether the value fit in them.
func (a Amount) Uint64() (uint64, bool) {
	return a.v.Uint64(), a.v.IsUint64()
}

// Big returns a fresh big.Int holding the same value.
func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

// Add returns a+b and whether the sum overflowed 256 bits.
func (a Amount) Add(b Amount) (Amount, bool) {
	var r Amount
	_, overflow := r.v.AddOverflow(&a.v, &b.v)
	return r, overflow
}

// SaturatingAdd returns a+b, or Max when the sum does not fit.
func (a Amount) SaturatingAdd(b Amount) Amount {
	r, overflow := a.Add(b)
	if overflow {
		return Max()
	}
	return r
}

// Sub returns a-b and whether the subtraction underflowed.
func (a Amount) Sub(b Amount) (Amount, bool) {
	var r Amount
	_, underflow := r.v.SubOverflow(&a.v, &b.v)
	return r, underflow
}

// SaturatingSub returns a-b, or zero when b exceeds a.
func (a Amount) SaturatingSub(b Amount) Amount {
	r, underflow := a.Sub(b)
	if underflow {
		return Amount{}
	}
	return r
}

// MulDiv returns floor(a*num/den) computed with a 512-bit intermediate, and
// whether the quotient overflowed. A zero den yields zero.
func (a Amount) MulDiv(num, den Amount) (Amount, bool) {
	if den.IsZero() {
		return Amount{}, false
	}
	var r Amount
	_, overflow := r.v.MulDivOverflow(&a.v, &num.v, &den.v)
	return r, overflow
}

// Decimal scales the amount down by 10^decimals. Exact; used for spreadsheet
// output where a numeric cell is wanted.
func (a Amount) Decimal(decimals uint8) decimal.Decimal {
	return decimal.NewFromBigInt(a.Big(), -int32(decimals))
}

// MarshalText encodes the amount as base-10 digits, which is how NEAR
// contracts pass U128 values in JSON.
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalText(text []byte) error {
	v, err := FromString(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
