package fee

import (
	"fmt"

	"github.com/mtlprog/vault/internal/amount"
)

// Quote is the fee breakdown shown before a transfer is confirmed.
type Quote struct {
	Amount  amount.Amount `json:"amount"`
	Fee     amount.Amount `json:"fee"`
	Net     amount.Amount `json:"net"`
	Percent uint64        `json:"percent"`
	// Waived is set for transfers between accounts of the same owner.
	Waived bool `json:"waived"`
}

// NewQuote prices a transfer of a. The vault charges nothing when sender
// and receiver belong to the same owner.
func NewQuote(a amount.Amount, r Rate, sameOwner bool) Quote {
	if sameOwner {
		return Quote{Amount: a, Net: a, Percent: Percentage(r), Waived: true}
	}
	f, net := Compute(a, r)
	return Quote{Amount: a, Fee: f, Net: net, Percent: Percentage(r)}
}

// Free reports whether the receiver gets the full amount.
func (q Quote) Free() bool {
	return q.Waived || q.Fee.IsZero()
}

// Describe renders the quote the way the transfer dialog shows it, with at
// most fracDigits fractional digits per amount.
func (q Quote) Describe(decimals, fracDigits uint8, symbol string) string {
	if q.Free() {
		return "No fee"
	}
	return fmt.Sprintf("Fee %d%% = %s %s | Receive = %s %s",
		q.Percent,
		amount.FormatFixed(q.Fee, decimals, fracDigits), symbol,
		amount.FormatFixed(q.Net, decimals, fracDigits), symbol,
	)
}
