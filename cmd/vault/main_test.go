package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mtlprog/vault/internal/action"
	"github.com/mtlprog/vault/internal/amount"
	"github.com/mtlprog/vault/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		VaultContract:          "vault.testnet",
		TokenContract:          "usdt.testnet",
		TokenSymbol:            "USDT",
		TokenDecimals:          6,
		DisplayFractionDigits:  6,
		TransferFeeNumerator:   "1",
		TransferFeeDenominator: "100",
	}
}

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cliApp := newApp(cfg)
	cliApp.Writer = &out
	cliApp.ErrWriter = &out
	err := cliApp.Run(append([]string{"vault"}, args...))
	return out.String(), err
}

func TestAmountCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"parse grouped", []string{"parse", "--decimals", "6", "1,234.5"}, "1234500000"},
		{"parse native", []string{"parse", "--decimals", "24", "0.1"}, "100000000000000000000000"},
		{"format default digits", []string{"format", "1234500000"}, "1,234.5"},
		{"format rounded", []string{"format", "--decimals", "6", "--digits", "2", "1234567"}, "1.23"},
		{"format all digits", []string{"format", "--digits", "-1", "1"}, "0.000001"},
		{"quote", []string{"quote", "100"}, "Fee 1% = 1 USDT | Receive = 99 USDT"},
		{"quote same owner", []string{"quote", "--same-owner", "100"}, "No fee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, testConfig(), tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInvalidAmount(t *testing.T) {
	_, err := run(t, testConfig(), "parse", "1.2.3")
	if !errors.Is(err, amount.ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
}

func TestFeeCommand(t *testing.T) {
	out, err := run(t, testConfig(), "fee", "1000000000000000000000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Percent uint64 `json:"percent"`
		Fee     string `json:"fee"`
		Net     string `json:"net"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Percent != 1 || got.Fee != "10000000000000000000000" || got.Net != "990000000000000000000000" {
		t.Errorf("fee output = %+v", got)
	}
}

func TestFeeCommandInvalidRate(t *testing.T) {
	cfg := testConfig()
	cfg.TransferFeeDenominator = "0"
	if _, err := run(t, cfg, "fee", "100"); err == nil {
		t.Fatal("expected error for zero denominator")
	}
}

const snapshotJSON = `{
  "registered": true,
  "storageBalance": {"total": "100000000000000000000000", "available": "0"},
  "tokenBalance": "9000000",
  "accounts": [
    {"accountName": "main", "balance": "5000000"},
    {"accountName": "spare", "balance": "0"}
  ]
}`

func writeSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(snapshotJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCallCommand(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, testConfig(), "call",
		"--snapshot", path, "--wallet", "alice.testnet", "--account", "main", "--receiver", "spare",
		"transfer", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Call struct {
			Kind   action.Kind    `json:"kind"`
			Method string         `json:"method"`
			Args   map[string]any `json:"args"`
		} `json:"call"`
		Fee     string `json:"fee"`
		Pending struct {
			Accounts []struct {
				Name    string `json:"accountName"`
				Balance string `json:"balance"`
			} `json:"accounts"`
		} `json:"pending"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Call.Kind != action.KindTransfer || got.Call.Method != "transfer" {
		t.Errorf("call = %+v", got.Call)
	}
	if got.Call.Args["amount"] != "2000000" {
		t.Errorf("amount arg = %v", got.Call.Args["amount"])
	}
	if got.Fee != "No fee" {
		t.Errorf("fee = %q, want No fee between own accounts", got.Fee)
	}
	if len(got.Pending.Accounts) != 2 || got.Pending.Accounts[0].Balance != "3000000" || got.Pending.Accounts[1].Balance != "2000000" {
		t.Errorf("pending = %+v", got.Pending)
	}
}

func TestCallCommandUnknownReceiver(t *testing.T) {
	_, err := run(t, testConfig(), "call",
		"--snapshot", writeSnapshot(t), "--wallet", "alice.testnet", "--account", "main", "--receiver", "ghost",
		"transfer", "2")
	if !errors.Is(err, action.ErrReceiverNotFound) {
		t.Errorf("err = %v, want ErrReceiverNotFound", err)
	}
}

func TestCallCommandCreateAccount(t *testing.T) {
	path := writeSnapshot(t)

	out, err := run(t, testConfig(), "call", "--snapshot", path, "--wallet", "alice.testnet", "create_account", "holiday")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got struct {
		Call struct {
			Method string         `json:"method"`
			Args   map[string]any `json:"args"`
		} `json:"call"`
		Pending struct {
			Accounts []struct {
				Name string `json:"accountName"`
			} `json:"accounts"`
		} `json:"pending"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Call.Method != "create_account" || got.Call.Args["account_name"] != "holiday" {
		t.Errorf("call = %+v", got.Call)
	}
	if n := len(got.Pending.Accounts); n != 3 || got.Pending.Accounts[2].Name != "holiday" {
		t.Errorf("pending accounts = %+v", got.Pending.Accounts)
	}

	_, err = run(t, testConfig(), "call", "--snapshot", path, "--wallet", "alice.testnet", "--receiver-exists", "create_account", "holiday")
	if !errors.Is(err, action.ErrAccountExists) {
		t.Errorf("taken name: err = %v, want ErrAccountExists", err)
	}
}

func TestQuoteHonoursDisplayFractionDigits(t *testing.T) {
	cfg := testConfig()
	cfg.DisplayFractionDigits = 2
	out, err := run(t, cfg, "quote", "1.234567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := strings.TrimSpace(out), "Fee 1% = 0.01 USDT | Receive = 1.22 USDT"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestSnapshotCommandsRequireDatabase(t *testing.T) {
	_, err := run(t, testConfig(), "snapshot", "latest", "--wallet", "alice.testnet")
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("err = %v, want DATABASE_URL error", err)
	}
}
