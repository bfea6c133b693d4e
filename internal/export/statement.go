package export

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mtlprog/vault/internal/amount"
	"github.com/mtlprog/vault/internal/ledger"
)

const shareDecimals = 4

// Options controls how amounts are scaled and rendered.
type Options struct {
	Symbol         string
	Decimals       uint8
	FractionDigits uint8
}

// Row is one vault account in a statement.
type Row struct {
	Account string
	Raw     amount.Amount
	Balance decimal.Decimal
	Display string
	// Share is the account's fraction of all account balances, 0 to 1.
	Share decimal.Decimal
}

// Summary holds the wallet-level totals of a statement.
type Summary struct {
	WalletID         string
	Symbol           string
	TakenAt          time.Time
	Registered       bool
	TokenBalance     decimal.Decimal
	AccountsTotal    decimal.Decimal
	StorageTotal     decimal.Decimal
	StorageAvailable decimal.Decimal
}

// Statement is an account statement of one wallet at one moment.
type Statement struct {
	Summary Summary
	Rows    []Row
}

// BuildStatement derives a statement from a ledger snapshot.
func BuildStatement(walletID string, snap ledger.Snapshot, opts Options, at time.Time) Statement {
	view := ledger.NewView(snap)
	total := view.TotalAccountBalance()
	storage := view.StorageBalance()

	rows := lo.Map(view.Accounts(), func(acc ledger.AccountRecord, _ int) Row {
		return Row{
			Account: acc.Name,
			Raw:     acc.Balance,
			Balance: acc.Balance.Decimal(opts.Decimals),
			Display: amount.FormatFixed(acc.Balance, opts.Decimals, opts.FractionDigits),
			Share:   share(acc.Balance, total),
		}
	})

	return Statement{
		Summary: Summary{
			WalletID:         walletID,
			Symbol:           opts.Symbol,
			TakenAt:          at.UTC(),
			Registered:       view.IsRegistered(),
			TokenBalance:     view.TokenBalance().Decimal(opts.Decimals),
			AccountsTotal:    total.Decimal(opts.Decimals),
			StorageTotal:     storage.Total.Decimal(ledger.NativeDecimals),
			StorageAvailable: storage.Available.Decimal(ledger.NativeDecimals),
		},
		Rows: rows,
	}
}

func share(part, total amount.Amount) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Decimal(0).DivRound(total.Decimal(0), shareDecimals)
}

// Cell is a spreadsheet cell: text, or an exact number when Numeric is set.
type Cell struct {
	Text    string
	Number  decimal.Decimal
	Numeric bool
}

func text(s string) Cell { return Cell{Text: s} }

func number(d decimal.Decimal) Cell { return Cell{Number: d, Numeric: true} }

// Table is one sheet of a statement; the first row is the header.
type Table struct {
	Name string
	Rows [][]Cell
}

const (
	accountsSheet = "Accounts"
	summarySheet  = "Summary"
)

// Tables lays the statement out as the Summary and Accounts sheets.
func (st Statement) Tables() []Table {
	s := st.Summary
	registered := "no"
	if s.Registered {
		registered = "yes"
	}

	summary := Table{Name: summarySheet, Rows: [][]Cell{
		{text("Field"), text("Value")},
		{text("Wallet"), text(s.WalletID)},
		{text("Taken at"), text(s.TakenAt.Format(time.RFC3339))},
		{text("Registered"), text(registered)},
		{text("Token balance, " + s.Symbol), number(s.TokenBalance)},
		{text("Accounts total, " + s.Symbol), number(s.AccountsTotal)},
		{text("Storage total, " + ledger.NativeSymbol), number(s.StorageTotal)},
		{text("Storage available, " + ledger.NativeSymbol), number(s.StorageAvailable)},
	}}

	accounts := Table{Name: accountsSheet, Rows: [][]Cell{
		{text("Account"), text("Balance"), text("Display"), text("Raw"), text("Share")},
	}}
	for _, r := range st.Rows {
		accounts.Rows = append(accounts.Rows, []Cell{
			text(r.Account), number(r.Balance), text(r.Display), text(r.Raw.String()), number(r.Share),
		})
	}

	return []Table{summary, accounts}
}
