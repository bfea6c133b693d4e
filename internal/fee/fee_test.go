package fee

import (
	"errors"
	"testing"

	"github.com/mtlprog/vault/internal/amount"
)

func rate(t *testing.T, num, den string) Rate {
	t.Helper()
	r, err := NewRate(num, den)
	if err != nil {
		t.Fatalf("NewRate(%s, %s): %v", num, den, err)
	}
	return r
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		num, den string
		wantFee  string
		wantNet  string
	}{
		{"half percent", "1000", "5", "1000", "5", "995"},
		{"floors to zero", "1", "1", "1000000", "0", "1"},
		{"floors", "1999", "1", "1000", "1", "1998"},
		{"zero rate", "1000", "0", "1", "0", "1000"},
		{"full rate", "1000", "1", "1", "1000", "0"},
		{"zero amount", "0", "1", "100", "0", "0"},
		{"24 decimals", "1000000000000000000000000", "1", "100", "10000000000000000000000", "990000000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := amount.MustFromString(tt.amount)
			fee, net := Compute(a, rate(t, tt.num, tt.den))
			if fee.String() != tt.wantFee {
				t.Errorf("fee = %s, want %s", fee, tt.wantFee)
			}
			if net.String() != tt.wantNet {
				t.Errorf("net = %s, want %s", net, tt.wantNet)
			}
			if sum, _ := fee.Add(net); sum.Cmp(a) != 0 {
				t.Errorf("fee + net = %s, want %s", sum, a)
			}
		})
	}
}

func TestComputeLargeAmountExact(t *testing.T) {
	// amount*numerator overflows 256 bits; the quotient does not.
	a := amount.Max()
	r := Rate{Numerator: amount.Max(), Denominator: amount.Max()}
	fee, net := Compute(a, r)
	if fee.Cmp(a) != 0 || !net.IsZero() {
		t.Errorf("Compute(max, 1/1) = %s, %s", fee, net)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		num, den string
		want     uint64
	}{
		{"1", "200", 0},
		{"1", "100", 1},
		{"5", "1000", 0},
		{"25", "1000", 2},
		{"1", "3", 33},
		{"1", "1", 100},
		{"0", "7", 0},
	}

	for _, tt := range tests {
		if got := Percentage(rate(t, tt.num, tt.den)); got != tt.want {
			t.Errorf("Percentage(%s/%s) = %d, want %d", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestNewRateInvalid(t *testing.T) {
	tests := []struct {
		name     string
		num, den string
	}{
		{"zero denominator", "1", "0"},
		{"above 100%", "3", "2"},
		{"not a number", "x", "2"},
		{"negative", "-1", "2"},
		{"empty denominator", "1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRate(tt.num, tt.den)
			if !errors.Is(err, ErrInvalidRate) {
				t.Errorf("NewRate(%q, %q) error = %v, want ErrInvalidRate", tt.num, tt.den, err)
			}
		})
	}
}
