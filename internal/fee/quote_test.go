package fee

import (
	"testing"

	"github.com/mtlprog/vault/internal/amount"
)

func TestNewQuote(t *testing.T) {
	r := rate(t, "1", "100")
	a := amount.MustFromString("2500000")

	q := NewQuote(a, r, false)
	if q.Fee.String() != "25000" || q.Net.String() != "2475000" {
		t.Errorf("quote = fee %s net %s", q.Fee, q.Net)
	}
	if q.Percent != 1 || q.Waived || q.Free() {
		t.Errorf("quote flags = %+v", q)
	}

	own := NewQuote(a, r, true)
	if !own.Waived || !own.Fee.IsZero() || own.Net.Cmp(a) != 0 {
		t.Errorf("same-owner quote = %+v", own)
	}
}

func TestQuoteDescribe(t *testing.T) {
	r := rate(t, "1", "100")

	tests := []struct {
		name      string
		amount    string
		sameOwner bool
		want      string
	}{
		{"same owner", "2500000", true, "No fee"},
		{"fee floors to zero", "99", false, "No fee"},
		{"charged", "2500000", false, "Fee 1% = 0.025 USDT | Receive = 2.475 USDT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuote(amount.MustFromString(tt.amount), r, tt.sameOwner)
			if got := q.Describe(6, amount.DisplayFractionDigits, "USDT"); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuoteDescribeSubPercentRate(t *testing.T) {
	// 0.5% shows as 0% while a fee is still taken.
	r := rate(t, "1", "200")
	q := NewQuote(amount.MustFromString("1000000000000000000000000"), r, false)
	want := "Fee 0% = 0.005 NEAR | Receive = 0.995 NEAR"
	if got := q.Describe(24, amount.DisplayFractionDigits, "NEAR"); got != want {
		t.Errorf("Describe() = %q, want %q", got, want)
	}
}

func TestQuoteDescribeFractionDigits(t *testing.T) {
	r := rate(t, "1", "100")
	q := NewQuote(amount.MustFromString("1234567"), r, false)

	tests := []struct {
		digits uint8
		want   string
	}{
		{6, "Fee 1% = 0.012345 USDT | Receive = 1.222222 USDT"},
		{2, "Fee 1% = 0.01 USDT | Receive = 1.22 USDT"},
		{0, "Fee 1% = 0 USDT | Receive = 1 USDT"},
	}

	for _, tt := range tests {
		if got := q.Describe(6, tt.digits, "USDT"); got != tt.want {
			t.Errorf("Describe(6, %d) = %q, want %q", tt.digits, got, tt.want)
		}
	}
}
