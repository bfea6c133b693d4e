// Package action turns what a user typed into a vault dialog into a
// contract call, and describes each dialog.
package action

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownAction = errors.New("unknown action")

// Kind is one of the closed set of user actions.
type Kind string

const (
	KindDeposit         Kind = "deposit"
	KindWithdraw        Kind = "withdraw"
	KindTransfer        Kind = "transfer"
	KindCreateAccount   Kind = "create_account"
	KindStorageDeposit  Kind = "storage_deposit"
	KindStorageWithdraw Kind = "storage_withdraw"
	KindUnregister      Kind = "unregister"
)

var kinds = []Kind{
	KindDeposit,
	KindWithdraw,
	KindTransfer,
	KindCreateAccount,
	KindStorageDeposit,
	KindStorageWithdraw,
	KindUnregister,
}

// Kinds lists every action.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

// ParseKind maps a name such as "transfer" to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// IsStorage reports whether the action moves native storage deposit rather
// than vault tokens.
func (k Kind) IsStorage() bool {
	return k == KindStorageDeposit || k == KindStorageWithdraw || k == KindUnregister
}
