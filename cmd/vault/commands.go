package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/vault/internal/action"
	"github.com/mtlprog/vault/internal/amount"
	"github.com/mtlprog/vault/internal/config"
	"github.com/mtlprog/vault/internal/database"
	"github.com/mtlprog/vault/internal/export"
	"github.com/mtlprog/vault/internal/fee"
	"github.com/mtlprog/vault/internal/ledger"
	"github.com/mtlprog/vault/internal/snapshot"
	"github.com/mtlprog/vault/internal/worker"
)

type app struct {
	cfg config.Config
}

func (a *app) rate() (fee.Rate, error) {
	return fee.NewRate(a.cfg.TransferFeeNumerator, a.cfg.TransferFeeDenominator)
}

func decimalsOf(c *cli.Context) (uint8, error) {
	d := c.Uint("decimals")
	if d > math.MaxUint8 {
		return 0, fmt.Errorf("decimals %d out of range", d)
	}
	return uint8(d), nil
}

func requireArg(c *cli.Context, n int, name string) (string, error) {
	if c.NArg() < n+1 {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return c.Args().Get(n), nil
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) parse(c *cli.Context) error {
	input, err := requireArg(c, 0, "amount")
	if err != nil {
		return err
	}
	decimals, err := decimalsOf(c)
	if err != nil {
		return err
	}
	v, err := amount.Parse(input, decimals)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, v)
	return err
}

func (a *app) format(c *cli.Context) error {
	raw, err := requireArg(c, 0, "raw amount")
	if err != nil {
		return err
	}
	decimals, err := decimalsOf(c)
	if err != nil {
		return err
	}
	v, err := amount.FromString(raw)
	if err != nil {
		return err
	}

	out := amount.Format(v, decimals)
	if digits := c.Int("digits"); digits >= 0 {
		if digits > math.MaxUint8 {
			return fmt.Errorf("digits %d out of range", digits)
		}
		out = amount.FormatFixed(v, decimals, uint8(digits))
	}
	_, err = fmt.Fprintln(c.App.Writer, out)
	return err
}

func (a *app) fee(c *cli.Context) error {
	raw, err := requireArg(c, 0, "raw amount")
	if err != nil {
		return err
	}
	v, err := amount.FromString(raw)
	if err != nil {
		return err
	}
	r, err := a.rate()
	if err != nil {
		return err
	}
	f, net := fee.Compute(v, r)
	return printJSON(c, map[string]any{
		"rate":    r,
		"percent": fee.Percentage(r),
		"fee":     f,
		"net":     net,
	})
}

func (a *app) quote(c *cli.Context) error {
	input, err := requireArg(c, 0, "amount")
	if err != nil {
		return err
	}
	v, err := amount.Parse(input, a.cfg.TokenDecimals)
	if err != nil {
		return err
	}
	r, err := a.rate()
	if err != nil {
		return err
	}
	q := fee.NewQuote(v, r, c.Bool("same-owner"))
	_, err = fmt.Fprintln(c.App.Writer, q.Describe(a.cfg.TokenDecimals, a.cfg.DisplayFractionDigits, a.cfg.TokenSymbol))
	return err
}

// staticLookup answers every receiver lookup the same way.
type staticLookup bool

func (l staticLookup) AccountExists(context.Context, string) (bool, error) {
	return bool(l), nil
}

func (a *app) call(c *cli.Context) error {
	name, err := requireArg(c, 0, "kind")
	if err != nil {
		return err
	}
	kind, err := action.ParseKind(name)
	if err != nil {
		return err
	}
	snap, err := readSnapshot(c.String("snapshot"))
	if err != nil {
		return err
	}
	r, err := a.rate()
	if err != nil {
		return err
	}
	prompt, err := action.NewPrompt(kind, a.cfg.TokenSymbol, r)
	if err != nil {
		return err
	}

	view := ledger.NewView(snap)
	call, err := action.Validate(c.Context, action.Request{
		Kind:     kind,
		Account:  c.String("account"),
		Receiver: c.String("receiver"),
		Input:    c.Args().Get(1),
	}, action.Env{
		Contracts:     action.Contracts{Vault: a.cfg.VaultContract, Token: a.cfg.TokenContract},
		WalletID:      c.String("wallet"),
		TokenDecimals: a.cfg.TokenDecimals,
		Rate:          r,
		Ledger:        view,
		Lookup:        staticLookup(c.Bool("receiver-exists")),
	})
	if err != nil {
		return err
	}

	out := map[string]any{"prompt": prompt, "call": call, "pending": call.ApplyPending(view.Snapshot())}
	if call.Quote != nil {
		out["fee"] = call.Quote.Describe(a.cfg.TokenDecimals, a.cfg.DisplayFractionDigits, a.cfg.TokenSymbol)
	}
	return printJSON(c, out)
}

func readSnapshot(path string) (ledger.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ledger.Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	var snap ledger.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return ledger.Snapshot{}, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	if err := snap.Validate(); err != nil {
		return ledger.Snapshot{}, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return snap, nil
}

// journal connects to the database, applies migrations and returns the
// snapshot service with a cleanup func.
func (a *app) journal(ctx context.Context) (*snapshot.Service, func(), error) {
	if a.cfg.DatabaseURL == "" {
		return nil, nil, errors.New("DATABASE_URL is required")
	}

	pool, err := database.Connect(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	migrationsSub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("creating migrations sub-fs: %w", err)
	}
	if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	return snapshot.NewService(snapshot.NewPgRepository(pool)), pool.Close, nil
}

func (a *app) snapshotRecord(c *cli.Context) error {
	path, err := requireArg(c, 0, "file")
	if err != nil {
		return err
	}
	snap, err := readSnapshot(path)
	if err != nil {
		return err
	}
	svc, closeDB, err := a.journal(c.Context)
	if err != nil {
		return err
	}
	defer closeDB()

	return svc.Record(c.Context, c.String("wallet"), snap, time.Now())
}

func (a *app) snapshotLatest(c *cli.Context) error {
	svc, closeDB, err := a.journal(c.Context)
	if err != nil {
		return err
	}
	defer closeDB()

	entry, err := svc.Latest(c.Context, c.String("wallet"))
	if err != nil {
		return err
	}
	return printJSON(c, entry)
}

func (a *app) snapshotHistory(c *cli.Context) error {
	svc, closeDB, err := a.journal(c.Context)
	if err != nil {
		return err
	}
	defer closeDB()

	entries, err := svc.History(c.Context, c.String("wallet"), c.Int("limit"))
	if err != nil {
		return err
	}
	return printJSON(c, entries)
}

func (a *app) exportOptions() export.Options {
	return export.Options{
		Symbol:         a.cfg.TokenSymbol,
		Decimals:       a.cfg.TokenDecimals,
		FractionDigits: a.cfg.DisplayFractionDigits,
	}
}

func (a *app) exportWith(c *cli.Context, w export.SheetWriter) error {
	svc, closeDB, err := a.journal(c.Context)
	if err != nil {
		return err
	}
	defer closeDB()

	job := worker.NewStatementWorker(svc, export.NewService(a.exportOptions(), w), c.String("wallet"), a.cfg.ExportInterval)
	if c.Bool("watch") {
		job.Run(c.Context)
		return nil
	}
	return job.RunOnce(c.Context)
}

func (a *app) exportXLSX(c *cli.Context) error {
	return a.exportWith(c, export.NewXLSXWriter(c.String("out")))
}

func (a *app) exportSheets(c *cli.Context) error {
	if a.cfg.GoogleSpreadsheetID == "" || a.cfg.GoogleCredentialsJSON == "" {
		return errors.New("GOOGLE_SPREADSHEET_ID and GOOGLE_CREDENTIALS_JSON are required")
	}
	w, err := export.NewSheetsWriter(c.Context, a.cfg.GoogleSpreadsheetID, a.cfg.GoogleCredentialsJSON)
	if err != nil {
		return err
	}
	return a.exportWith(c, w)
}
