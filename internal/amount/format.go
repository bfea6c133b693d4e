package amount

import (
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

// DisplayFractionDigits is the fractional precision balances are shown with.
const DisplayFractionDigits = 6

var ten = big.NewInt(10)

// Format renders v with all of its fractional digits, grouping the whole part
// with commas and dropping trailing fractional zeros.
func Format(v Amount, decimals uint8) string {
	return format(v, decimals, decimals)
}

// FormatFixed renders v with at most fracDigits fractional digits. When the
// first dropped digit is 5 or more the last kept digit rounds up, provided at
// least two digits are dropped; a single dropped digit is truncated.
func FormatFixed(v Amount, decimals, fracDigits uint8) string {
	return format(v, decimals, fracDigits)
}

func format(v Amount, decimals, fracDigits uint8) string {
	n := v.Big()
	if exp := int64(decimals) - int64(fracDigits) - 1; exp > 0 {
		half := new(big.Int).Exp(ten, big.NewInt(exp), nil)
		n.Add(n, half.Mul(half, big.NewInt(5)))
	}

	unit := new(big.Int).Exp(ten, big.NewInt(int64(decimals)), nil)
	whole, rem := new(big.Int).QuoRem(n, unit, new(big.Int))

	var fraction string
	if decimals > 0 {
		digits := rem.String()
		fraction = strings.Repeat("0", int(decimals)-len(digits)) + digits
		if len(fraction) > int(fracDigits) {
			fraction = fraction[:fracDigits]
		}
		fraction = strings.TrimRight(fraction, "0")
	}

	out := humanize.BigComma(whole)
	if fraction == "" {
		return out
	}
	return out + "." + fraction
}
