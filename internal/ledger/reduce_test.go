package ledger

import (
	"encoding/json"
	"testing"

	"github.com/mtlprog/vault/internal/amount"
)

func TestReduceSequence(t *testing.T) {
	s := Snapshot{}

	s = Reduce(s, StorageDeposited{Balance: StorageBalance{
		Total:     amount.MustFromString("1250000000000000000000"),
		Available: amount.MustFromString("250000000000000000000"),
	}})
	if !s.Registered {
		t.Fatal("StorageDeposited did not register the wallet")
	}

	s = Reduce(s, AccountCreated{Name: "main"})
	s = Reduce(s, AccountCreated{Name: "main"})
	if len(s.Accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(s.Accounts))
	}

	s = Reduce(s, BalanceAdjusted{Account: "main", Delta: Credit(amount.FromUint64(900))})
	s = Reduce(s, BalanceAdjusted{Account: "main", Delta: Debit(amount.FromUint64(100))})
	if acc, _ := NewView(s).AccountByName("main"); acc.Balance.String() != "800" {
		t.Errorf("balance = %s, want 800", acc.Balance)
	}

	s = Reduce(s, StorageWithdrawn{Balance: StorageBalance{Total: amount.MustFromString("1000000000000000000000")}})
	if !s.StorageBalance.Available.IsZero() || !s.Registered {
		t.Errorf("after withdraw: %+v", s)
	}

	s = Reduce(s, Unregistered{})
	if s.Registered || len(s.Accounts) != 0 || !s.StorageBalance.Total.IsZero() {
		t.Errorf("after unregister: %+v", s)
	}
}

func TestReduceRefreshedReplaces(t *testing.T) {
	local := Reduce(testSnapshot(t), BalanceAdjusted{Account: "savings", Delta: Credit(amount.FromUint64(1))})
	fresh := Snapshot{Registered: true, Accounts: []AccountRecord{{Name: "other", Balance: amount.FromUint64(5)}}}

	got := Reduce(local, Refreshed{Snapshot: fresh})
	if len(got.Accounts) != 1 || got.Accounts[0].Name != "other" {
		t.Errorf("Refreshed did not replace the snapshot: %+v", got)
	}

	fresh.Accounts[0].Name = "mutated"
	if got.Accounts[0].Name != "other" {
		t.Error("Refreshed shares the accounts slice with its input")
	}
}

func TestReduceDoesNotModifyInput(t *testing.T) {
	s := testSnapshot(t)
	_ = Reduce(s, AccountCreated{Name: "new"})
	_ = Reduce(s, Unregistered{})
	if len(s.Accounts) != 2 || !s.Registered {
		t.Errorf("input snapshot changed: %+v", s)
	}
	if got := Reduce(s, nil); len(got.Accounts) != 2 {
		t.Errorf("nil event changed the snapshot: %+v", got)
	}
}

func TestSnapshotJSON(t *testing.T) {
	s := testSnapshot(t)
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.TokenBalance.String() != "7000000" || len(back.Accounts) != 2 || back.Accounts[1].Name != "payroll" {
		t.Errorf("decoded snapshot = %+v", back)
	}
	if back.StorageBalance.Total.Cmp(s.StorageBalance.Total) != 0 {
		t.Errorf("storage total = %s", back.StorageBalance.Total)
	}
}
