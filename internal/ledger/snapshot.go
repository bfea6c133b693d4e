// Package ledger projects the vault state reported for one wallet: its
// registration, storage deposit, token balance and named sub-accounts.
//
// Snapshots are values. Every change produces a new Snapshot; nothing here
// talks to the chain, and registration changes are only ever recorded as
// reported by the caller.
package ledger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mtlprog/vault/internal/amount"
)

// NativeDecimals and NativeSymbol describe the chain's native token, in
// which storage deposits are held.
const (
	NativeDecimals = 24
	NativeSymbol   = "NEAR"
)

var (
	ErrDuplicateAccount = errors.New("duplicate account name")
	ErrStorageBalance   = errors.New("available storage exceeds total")
)

// AccountRecord is a named sub-account in the vault.
type AccountRecord struct {
	Name    string        `json:"accountName"`
	Balance amount.Amount `json:"balance"`
}

// StorageBalance is the native deposit funding the wallet's storage.
// Available never exceeds Total.
type StorageBalance struct {
	Total     amount.Amount `json:"total"`
	Available amount.Amount `json:"available"`
}

// Snapshot is the state of one wallet as last reported by the ledger.
type Snapshot struct {
	Registered     bool            `json:"registered"`
	StorageBalance StorageBalance  `json:"storageBalance"`
	TokenBalance   amount.Amount   `json:"tokenBalance"`
	Accounts       []AccountRecord `json:"accounts"`
}

// NewSnapshot copies accounts into a validated Snapshot.
func NewSnapshot(registered bool, storage StorageBalance, tokenBalance amount.Amount, accounts []AccountRecord) (Snapshot, error) {
	s := Snapshot{
		Registered:     registered,
		StorageBalance: storage,
		TokenBalance:   tokenBalance,
		Accounts:       slices.Clone(accounts),
	}
	if err := s.Validate(); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// Validate checks account names are unique and the storage balance is consistent.
func (s Snapshot) Validate() error {
	if s.StorageBalance.Available.Cmp(s.StorageBalance.Total) > 0 {
		return fmt.Errorf("%w: %s > %s", ErrStorageBalance, s.StorageBalance.Available, s.StorageBalance.Total)
	}
	seen := make(map[string]bool, len(s.Accounts))
	for _, a := range s.Accounts {
		if seen[a.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateAccount, a.Name)
		}
		seen[a.Name] = true
	}
	return nil
}

func (s Snapshot) clone() Snapshot {
	s.Accounts = slices.Clone(s.Accounts)
	return s
}
