package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/vault/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := newApp(config.Load())
	if err := app.RunContext(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newApp(cfg config.Config) *cli.App {
	a := &app{cfg: cfg}
	return &cli.App{
		Name:  "vault",
		Usage: "exact token amounts, fees and statements for vault accounts",
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "convert a decimal amount to its raw integer form",
				ArgsUsage: "<amount>",
				Flags:     []cli.Flag{a.decimalsFlag()},
				Action:    a.parse,
			},
			{
				Name:      "format",
				Usage:     "render a raw integer amount for display",
				ArgsUsage: "<raw>",
				Flags: []cli.Flag{
					a.decimalsFlag(),
					&cli.IntFlag{Name: "digits", Usage: "fraction digits to keep, negative keeps all", Value: int(a.cfg.DisplayFractionDigits)},
				},
				Action: a.format,
			},
			{
				Name:      "fee",
				Usage:     "split a raw amount into transfer fee and net",
				ArgsUsage: "<raw>",
				Action:    a.fee,
			},
			{
				Name:      "quote",
				Usage:     "describe the fee for a transfer of a decimal amount",
				ArgsUsage: "<amount>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "same-owner", Usage: "receiver belongs to the sender's wallet"},
				},
				Action: a.quote,
			},
			{
				Name:      "call",
				Usage:     "validate a dialog request and print the contract call",
				ArgsUsage: "<kind> <input>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "snapshot", Usage: "ledger snapshot JSON file", Required: true},
					&cli.StringFlag{Name: "wallet", Usage: "signed-in wallet ID", Required: true},
					&cli.StringFlag{Name: "account", Usage: "vault account the dialog acts on"},
					&cli.StringFlag{Name: "receiver", Usage: "transfer receiver account"},
					&cli.BoolFlag{Name: "receiver-exists", Usage: "treat a foreign receiver or new account name as existing"},
				},
				Action: a.call,
			},
			{
				Name:  "snapshot",
				Usage: "ledger snapshot journal",
				Subcommands: []*cli.Command{
					{
						Name:      "record",
						Usage:     "store a snapshot JSON file as the wallet's current state",
						ArgsUsage: "<file>",
						Flags:     []cli.Flag{walletFlag()},
						Action:    a.snapshotRecord,
					},
					{
						Name:   "latest",
						Usage:  "print the wallet's most recent snapshot",
						Flags:  []cli.Flag{walletFlag()},
						Action: a.snapshotLatest,
					},
					{
						Name:  "history",
						Usage: "list the wallet's snapshots, newest first",
						Flags: []cli.Flag{
							walletFlag(),
							&cli.IntFlag{Name: "limit", Value: 30},
						},
						Action: a.snapshotHistory,
					},
				},
			},
			{
				Name:  "export",
				Usage: "export the wallet's latest statement",
				Subcommands: []*cli.Command{
					{
						Name:  "xlsx",
						Usage: "save the statement as an Excel workbook",
						Flags: []cli.Flag{
							walletFlag(),
							&cli.StringFlag{Name: "out", Value: "statement.xlsx"},
						},
						Action: a.exportXLSX,
					},
					{
						Name:  "sheets",
						Usage: "write the statement to the configured Google spreadsheet",
						Flags: []cli.Flag{
							walletFlag(),
							&cli.BoolFlag{Name: "watch", Usage: "keep exporting every EXPORT_INTERVAL"},
						},
						Action: a.exportSheets,
					},
				},
			},
		},
	}
}

func (a *app) decimalsFlag() cli.Flag {
	return &cli.UintFlag{Name: "decimals", Usage: "token decimals", Value: uint(a.cfg.TokenDecimals)}
}

func walletFlag() cli.Flag {
	return &cli.StringFlag{Name: "wallet", Usage: "wallet ID", Required: true}
}
