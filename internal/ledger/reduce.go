package ledger

import (
	"github.com/mtlprog/vault/internal/amount"
)

// Event is a fact reported by whoever talks to the chain. The set is closed:
// every event type in this file implements apply, and no other package can.
type Event interface {
	apply(Snapshot) Snapshot
}

// Reduce returns the snapshot that results from applying ev to s. s is not
// modified. A single owner is expected to feed events in order.
func Reduce(s Snapshot, ev Event) Snapshot {
	if ev == nil {
		return s.clone()
	}
	return ev.apply(s.clone())
}

// Refreshed replaces the whole snapshot with a freshly fetched one.
type Refreshed struct {
	Snapshot Snapshot
}

func (e Refreshed) apply(Snapshot) Snapshot {
	return e.Snapshot.clone()
}

// AccountCreated appends a zero-balance account after a successful
// create_account call. Existing names are left alone.
type AccountCreated struct {
	Name string
}

func (e AccountCreated) apply(s Snapshot) Snapshot {
	if _, ok := NewView(s).AccountByName(e.Name); ok {
		return s
	}
	s.Accounts = append(s.Accounts, AccountRecord{Name: e.Name, Balance: amount.Amount{}})
	return s
}

// BalanceAdjusted records an optimistic balance change for a pending action.
type BalanceAdjusted struct {
	Account string
	Delta   Delta
}

func (e BalanceAdjusted) apply(s Snapshot) Snapshot {
	return NewView(s).WithOptimisticDelta(e.Account, e.Delta)
}

// StorageDeposited records a successful storage_deposit; the wallet is
// registered from then on.
type StorageDeposited struct {
	Balance StorageBalance
}

func (e StorageDeposited) apply(s Snapshot) Snapshot {
	s.Registered = true
	s.StorageBalance = e.Balance
	return s
}

// StorageWithdrawn records the storage balance returned by storage_withdraw.
type StorageWithdrawn struct {
	Balance StorageBalance
}

func (e StorageWithdrawn) apply(s Snapshot) Snapshot {
	s.StorageBalance = e.Balance
	return s
}

// Unregistered records a successful forced storage_unregister. The vault
// drops the wallet's sub-accounts along with its storage deposit; the
// wallet's own token balance lives on the token contract and is kept.
type Unregistered struct{}

func (Unregistered) apply(s Snapshot) Snapshot {
	s.Registered = false
	s.StorageBalance = StorageBalance{}
	s.Accounts = nil
	return s
}
