package amount

import (
	"strings"

	"github.com/holiman/uint256"
)

const groupSeparator = ","

// Parse converts a user-typed decimal string such as "1,234.5" into the
// integer count of smallest units for a token with the given decimals.
// Parsing never rounds: an input with more fractional digits than decimals
// is rejected.
func Parse(input string, decimals uint8) (Amount, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(input, groupSeparator, ""))
	if cleaned == "" {
		return Amount{}, invalid(input, ReasonEmpty, decimals)
	}
	if strings.HasPrefix(cleaned, "-") {
		return Amount{}, invalid(input, ReasonNegative, decimals)
	}

	whole, frac, _ := strings.Cut(cleaned, ".")
	if strings.Contains(frac, ".") {
		return Amount{}, invalid(input, ReasonMultipleDecimalPoints, decimals)
	}
	if len(frac) > int(decimals) {
		return Amount{}, invalid(input, ReasonTooManyFractionDigits, decimals)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return Amount{}, invalid(input, ReasonNonDigit, decimals)
	}

	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	return fromDigits(input, digits, decimals)
}

// FromString parses a raw base-10 integer as returned by contract view calls.
func FromString(s string) (Amount, error) {
	if s == "" {
		return Amount{}, invalid(s, ReasonEmpty, 0)
	}
	if strings.HasPrefix(s, "-") {
		return Amount{}, invalid(s, ReasonNegative, 0)
	}
	if !isDigits(s) {
		return Amount{}, invalid(s, ReasonNonDigit, 0)
	}
	return fromDigits(s, s, 0)
}

// MustFromString is FromString for constants; it panics on bad input.
func MustFromString(s string) Amount {
	a, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

func fromDigits(input, digits string, decimals uint8) (Amount, error) {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return Amount{}, nil
	}
	v, err := uint256.FromDecimal(digits)
	if err != nil {
		return Amount{}, invalid(input, ReasonOutOfRange, decimals)
	}
	return Amount{v: *v}, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
