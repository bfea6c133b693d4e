package action

import (
	"github.com/mtlprog/vault/internal/amount"
	"github.com/mtlprog/vault/internal/fee"
	"github.com/mtlprog/vault/internal/ledger"
)

// DefaultGas is attached to calls that fan out into cross-contract calls.
const DefaultGas = "30000000000001"

// oneYocto is the deposit contracts require as proof of a full-access key.
var oneYocto = amount.FromUint64(1)

// Contracts names the deployed vault and token contracts.
type Contracts struct {
	Vault string
	Token string
}

// Call is a ready-to-sign contract call. Amounts in Args are base-10 strings.
type Call struct {
	Kind     Kind           `json:"kind"`
	Contract string         `json:"contract"`
	Method   string         `json:"method"`
	Args     map[string]any `json:"args"`
	// Gas is empty when the wallet default applies.
	Gas     string         `json:"gas,omitempty"`
	Deposit *amount.Amount `json:"deposit,omitempty"`
	// Quote is set for transfers.
	Quote *fee.Quote `json:"quote,omitempty"`
	// Pending holds the optimistic ledger updates to apply while the call
	// is in flight.
	Pending []ledger.Event `json:"-"`
}

// ApplyPending folds the call's optimistic updates into s.
func (c Call) ApplyPending(s ledger.Snapshot) ledger.Snapshot {
	out := ledger.Reduce(s, nil)
	for _, ev := range c.Pending {
		out = ledger.Reduce(out, ev)
	}
	return out
}

func deposit(a amount.Amount) *amount.Amount {
	return &a
}
