package action

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/near/borsh-go"
)

type transferMessage struct {
	Action  string
	Payload []byte
}

type depositPayload struct {
	AccountName string
}

// DepositMessage builds the ft_transfer_call msg that tells the vault which
// account to credit: a borsh-encoded {action, payload} envelope around a
// borsh-encoded {account_name}, base58-encoded.
func DepositMessage(accountName string) (string, error) {
	payload, err := borsh.Serialize(depositPayload{AccountName: accountName})
	if err != nil {
		return "", fmt.Errorf("encoding deposit payload: %w", err)
	}
	msg, err := borsh.Serialize(transferMessage{Action: string(KindDeposit), Payload: payload})
	if err != nil {
		return "", fmt.Errorf("encoding transfer message: %w", err)
	}
	return base58.Encode(msg), nil
}
