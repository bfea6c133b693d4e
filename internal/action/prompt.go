package action

import (
	"fmt"

	"github.com/mtlprog/vault/internal/fee"
	"github.com/mtlprog/vault/internal/ledger"
)

// Prompt is the copy of an action's confirmation dialog.
type Prompt struct {
	Title        string   `json:"title"`
	Description  []string `json:"description"`
	InputLabel   string   `json:"inputLabel"`
	ConfirmLabel string   `json:"confirmLabel"`
}

// NewPrompt returns the dialog copy for k. symbol is the vault token's symbol;
// rate feeds the transfer fee notice.
func NewPrompt(k Kind, symbol string, rate fee.Rate) (Prompt, error) {
	//exhaustive:enforce
	switch k {
	case KindDeposit:
		return Prompt{
			Title:        fmt.Sprintf("Deposit %s?", symbol),
			Description:  []string{fmt.Sprintf("Enter the amount of %s to deposit into this account below.", symbol)},
			InputLabel:   "Amount to deposit",
			ConfirmLabel: "Deposit",
		}, nil
	case KindWithdraw:
		return Prompt{
			Title:        fmt.Sprintf("Withdraw %s?", symbol),
			Description:  []string{fmt.Sprintf("Enter the amount of %s to withdraw from this account below.", symbol)},
			InputLabel:   "Amount to withdraw",
			ConfirmLabel: "Withdraw",
		}, nil
	case KindTransfer:
		return Prompt{
			Title: fmt.Sprintf("Transfer %s to another account?", symbol),
			Description: []string{
				fmt.Sprintf("Enter the name of the account and the amount of %s you want to transfer to below.", symbol),
				fmt.Sprintf("A %d%% fee of the transferred amount will be imposed if transferring to an account of another user.", fee.Percentage(rate)),
			},
			InputLabel:   "Amount to transfer",
			ConfirmLabel: "Transfer",
		}, nil
	case KindCreateAccount:
		return Prompt{
			Title: "Create new account?",
			Description: []string{
				"Enter your new account name below (must be unique).",
				"You may need to deposit more storage if the current amount is insufficient.",
			},
			InputLabel:   "Account name",
			ConfirmLabel: "Create new account",
		}, nil
	case KindStorageDeposit:
		return Prompt{
			Title:        "Deposit Storage?",
			Description:  []string{fmt.Sprintf("Enter the amount of %s you want to deposit below (recommended: 0.1 %s).", ledger.NativeSymbol, ledger.NativeSymbol)},
			InputLabel:   "Amount to deposit",
			ConfirmLabel: "Deposit",
		}, nil
	case KindStorageWithdraw:
		return Prompt{
			Title: "Withdraw Storage?",
			Description: []string{
				fmt.Sprintf("Enter the amount of %s you want to withdraw below.", ledger.NativeSymbol),
				"Leave the amount empty to withdraw all.",
			},
			InputLabel:   "Amount to withdraw",
			ConfirmLabel: "Withdraw",
		}, nil
	case KindUnregister:
		return Prompt{
			Title: "Unregister Storage?",
			Description: []string{
				"This action cannot be undone! You will lose all your accounts (including stored tokens).",
				"Make sure you have withdrawn your tokens from all of your accounts.",
				"Enter your wallet ID below to proceed.",
			},
			InputLabel:   "Your wallet ID",
			ConfirmLabel: "Unregister",
		}, nil
	}
	return Prompt{}, fmt.Errorf("%w: %q", ErrUnknownAction, k)
}
