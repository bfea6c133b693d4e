package ledger

import (
	"math/big"
	"slices"

	"github.com/samber/lo"

	"github.com/mtlprog/vault/internal/amount"
)

// View answers queries over a Snapshot without exposing it to mutation.
type View struct {
	snap Snapshot
}

func NewView(s Snapshot) View {
	return View{snap: s.clone()}
}

// Snapshot returns a copy of the underlying snapshot.
func (v View) Snapshot() Snapshot {
	return v.snap.clone()
}

func (v View) IsRegistered() bool {
	return v.snap.Registered
}

func (v View) AvailableStorage() amount.Amount {
	return v.snap.StorageBalance.Available
}

func (v View) StorageBalance() StorageBalance {
	return v.snap.StorageBalance
}

func (v View) TokenBalance() amount.Amount {
	return v.snap.TokenBalance
}

// Accounts returns the sub-accounts in ledger order.
func (v View) Accounts() []AccountRecord {
	return slices.Clone(v.snap.Accounts)
}

// AccountByName looks up a sub-account by its unique name.
func (v View) AccountByName(name string) (AccountRecord, bool) {
	return lo.Find(v.snap.Accounts, func(a AccountRecord) bool {
		return a.Name == name
	})
}

// OwnsAccount reports whether name is one of this wallet's sub-accounts.
// Transfers between owned accounts carry no fee.
func (v View) OwnsAccount(name string) bool {
	return lo.ContainsBy(v.snap.Accounts, func(a AccountRecord) bool {
		return a.Name == name
	})
}

// TotalAccountBalance sums all sub-account balances, saturating at the
// Amount maximum.
func (v View) TotalAccountBalance() amount.Amount {
	return lo.Reduce(v.snap.Accounts, func(acc amount.Amount, a AccountRecord, _ int) amount.Amount {
		return acc.SaturatingAdd(a.Balance)
	}, amount.Amount{})
}

// WithOptimisticDelta returns a new snapshot with the named account's
// balance moved by d, clamped at zero. It reflects a pending local action
// until the next refresh replaces the snapshot. Unknown names leave the
// snapshot unchanged.
func (v View) WithOptimisticDelta(name string, d Delta) Snapshot {
	out := v.snap.clone()
	_, i, ok := lo.FindIndexOf(out.Accounts, func(a AccountRecord) bool {
		return a.Name == name
	})
	if !ok {
		return out
	}
	out.Accounts[i].Balance = d.applyTo(out.Accounts[i].Balance)
	return out
}

// Delta is a signed change to an account balance.
type Delta struct {
	magnitude amount.Amount
	debit     bool
}

// Credit increases a balance by a.
func Credit(a amount.Amount) Delta {
	return Delta{magnitude: a}
}

// Debit decreases a balance by a.
func Debit(a amount.Amount) Delta {
	return Delta{magnitude: a, debit: true}
}

// DeltaFromBig converts a signed integer. Magnitudes wider than 256 bits
// saturate.
func DeltaFromBig(n *big.Int) Delta {
	if n == nil {
		return Delta{}
	}
	mag, ok := amount.FromBig(new(big.Int).Abs(n))
	if !ok {
		mag = amount.Max()
	}
	return Delta{magnitude: mag, debit: n.Sign() < 0}
}

func (d Delta) IsZero() bool {
	return d.magnitude.IsZero()
}

func (d Delta) String() string {
	if d.debit && !d.IsZero() {
		return "-" + d.magnitude.String()
	}
	return "+" + d.magnitude.String()
}

func (d Delta) applyTo(balance amount.Amount) amount.Amount {
	if d.debit {
		return balance.SaturatingSub(d.magnitude)
	}
	return balance.SaturatingAdd(d.magnitude)
}
