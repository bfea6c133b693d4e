package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/mtlprog/vault/internal/amount"
	"github.com/mtlprog/vault/internal/fee"
	"github.com/mtlprog/vault/internal/ledger"
)

var (
	ErrReceiverNotFound = errors.New("receiver account does not exist")
	ErrMissingReceiver  = errors.New("receiver account is required")
	ErrWalletMismatch   = errors.New("wallet ID does not match")
	ErrAccountExists    = errors.New("account name already exists")
	ErrInvalidName      = errors.New("invalid account name")
)

// MaxAccountNameLength is the longest account name, in bytes, the vault accepts.
const MaxAccountNameLength = 256

// AccountLookup asks the vault whether an account name exists. Implemented
// by the caller's contract client.
type AccountLookup interface {
	AccountExists(ctx context.Context, name string) (bool, error)
}

// Request is what the user entered in a dialog.
type Request struct {
	Kind Kind
	// Account is the vault account the dialog was opened on.
	Account string
	// Receiver is the destination of a transfer.
	Receiver string
	// Input is the typed amount, the new account name for create_account,
	// or the wallet ID for unregister.
	Input string
}

// Env carries what validation needs besides the request.
type Env struct {
	Contracts     Contracts
	WalletID      string
	TokenDecimals uint8
	Rate          fee.Rate
	Ledger        ledger.View
	Lookup        AccountLookup
}

// Validate checks req and builds the contract call for it. Amount errors
// wrap amount.ErrInvalidAmount.
func Validate(ctx context.Context, req Request, env Env) (Call, error) {
	//exhaustive:enforce
	switch req.Kind {
	case KindDeposit:
		return validateDeposit(req, env)
	case KindWithdraw:
		return validateWithdraw(req, env)
	case KindTransfer:
		return validateTransfer(ctx, req, env)
	case KindCreateAccount:
		return validateCreateAccount(ctx, req, env)
	case KindStorageDeposit:
		return validateStorageDeposit(req, env)
	case KindStorageWithdraw:
		return validateStorageWithdraw(req, env)
	case KindUnregister:
		return validateUnregister(req, env)
	}
	return Call{}, fmt.Errorf("%w: %q", ErrUnknownAction, req.Kind)
}

// decimalsFor returns the decimals typed amounts of k are parsed with:
// native decimals for storage actions, token decimals otherwise.
func (env Env) decimalsFor(k Kind) uint8 {
	if k.IsStorage() {
		return ledger.NativeDecimals
	}
	return env.TokenDecimals
}

func validateDeposit(req Request, env Env) (Call, error) {
	a, err := amount.Parse(req.Input, env.decimalsFor(req.Kind))
	if err != nil {
		return Call{}, err
	}
	msg, err := DepositMessage(req.Account)
	if err != nil {
		return Call{}, err
	}
	return Call{
		Kind:     KindDeposit,
		Contract: env.Contracts.Token,
		Method:   "ft_transfer_call",
		Args: map[string]any{
			"receiver_id": env.Contracts.Vault,
			"amount":      a.String(),
			"memo":        nil,
			"msg":         msg,
		},
		Gas:     DefaultGas,
		Deposit: deposit(oneYocto),
		Pending: []ledger.Event{ledger.BalanceAdjusted{Account: req.Account, Delta: ledger.Credit(a)}},
	}, nil
}

func validateWithdraw(req Request, env Env) (Call, error) {
	a, err := amount.Parse(req.Input, env.decimalsFor(req.Kind))
	if err != nil {
		return Call{}, err
	}
	return Call{
		Kind:     KindWithdraw,
		Contract: env.Contracts.Vault,
		Method:   "withdraw",
		Args: map[string]any{
			"account_name": req.Account,
			"amount":       a.String(),
		},
		Gas:     DefaultGas,
		Deposit: deposit(oneYocto),
		Pending: []ledger.Event{ledger.BalanceAdjusted{Account: req.Account, Delta: ledger.Debit(a)}},
	}, nil
}

func validateTransfer(ctx context.Context, req Request, env Env) (Call, error) {
	if req.Receiver == "" {
		return Call{}, ErrMissingReceiver
	}

	sameOwner := env.Ledger.OwnsAccount(req.Receiver)
	if !sameOwner {
		if env.Lookup == nil {
			return Call{}, fmt.Errorf("checking receiver %q: no account lookup configured", req.Receiver)
		}
		exists, err := env.Lookup.AccountExists(ctx, req.Receiver)
		if err != nil {
			return Call{}, fmt.Errorf("checking receiver %q: %w", req.Receiver, err)
		}
		if !exists {
			return Call{}, fmt.Errorf("%w: %q", ErrReceiverNotFound, req.Receiver)
		}
	}

	a, err := amount.Parse(req.Input, env.decimalsFor(req.Kind))
	if err != nil {
		return Call{}, err
	}

	q := fee.NewQuote(a, env.Rate, sameOwner)
	pending := []ledger.Event{ledger.BalanceAdjusted{Account: req.Account, Delta: ledger.Debit(a)}}
	if sameOwner {
		pending = append(pending, ledger.BalanceAdjusted{Account: req.Receiver, Delta: ledger.Credit(q.Net)})
	}

	return Call{
		Kind:     KindTransfer,
		Contract: env.Contracts.Vault,
		Method:   "transfer",
		Args: map[string]any{
			"sender_account_name":   req.Account,
			"receiver_account_name": req.Receiver,
			"amount":                a.String(),
		},
		Quote:   &q,
		Pending: pending,
	}, nil
}

func validateCreateAccount(ctx context.Context, req Request, env Env) (Call, error) {
	name := req.Input
	if name == "" {
		return Call{}, fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if len(name) > MaxAccountNameLength {
		return Call{}, fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, MaxAccountNameLength)
	}
	if env.Ledger.OwnsAccount(name) {
		return Call{}, fmt.Errorf("%w: %q", ErrAccountExists, name)
	}
	if env.Lookup == nil {
		return Call{}, fmt.Errorf("checking account %q: no account lookup configured", name)
	}
	exists, err := env.Lookup.AccountExists(ctx, name)
	if err != nil {
		return Call{}, fmt.Errorf("checking account %q: %w", name, err)
	}
	if exists {
		return Call{}, fmt.Errorf("%w: %q", ErrAccountExists, name)
	}

	return Call{
		Kind:     KindCreateAccount,
		Contract: env.Contracts.Vault,
		Method:   "create_account",
		Args:     map[string]any{"account_name": name},
		Pending:  []ledger.Event{ledger.AccountCreated{Name: name}},
	}, nil
}

func validateStorageDeposit(req Request, env Env) (Call, error) {
	a, err := amount.Parse(req.Input, env.decimalsFor(req.Kind))
	if err != nil {
		return Call{}, err
	}
	return Call{
		Kind:     KindStorageDeposit,
		Contract: env.Contracts.Vault,
		Method:   "storage_deposit",
		Args:     map[string]any{"account_id": env.WalletID},
		Deposit:  deposit(a),
	}, nil
}

// An empty input withdraws the whole available storage balance.
func validateStorageWithdraw(req Request, env Env) (Call, error) {
	args := map[string]any{}
	if req.Input != "" {
		a, err := amount.Parse(req.Input, env.decimalsFor(req.Kind))
		if err != nil {
			return Call{}, err
		}
		args["amount"] = a.String()
	}
	return Call{
		Kind:     KindStorageWithdraw,
		Contract: env.Contracts.Vault,
		Method:   "storage_withdraw",
		Args:     args,
		Deposit:  deposit(oneYocto),
	}, nil
}

func validateUnregister(req Request, env Env) (Call, error) {
	if req.Input == "" || req.Input != env.WalletID {
		return Call{}, ErrWalletMismatch
	}
	return Call{
		Kind:     KindUnregister,
		Contract: env.Contracts.Vault,
		Method:   "storage_unregister",
		Args:     map[string]any{"force": true},
		Deposit:  deposit(oneYocto),
	}, nil
}
