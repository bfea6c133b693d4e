package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/mtlprog/vault/internal/export"
	"github.com/mtlprog/vault/internal/ledger"
	"github.com/mtlprog/vault/internal/snapshot"
)

// SnapshotSource returns the latest journaled snapshot of a wallet.
type SnapshotSource interface {
	Latest(ctx context.Context, walletID string) (snapshot.Entry, error)
}

// Exporter writes a wallet's statement.
type Exporter interface {
	Export(ctx context.Context, walletID string, snap ledger.Snapshot) (export.Statement, error)
}

// StatementWorker periodically exports the latest statement of one wallet.
type StatementWorker struct {
	source   SnapshotSource
	exporter Exporter
	walletID string
	interval time.Duration
}

// NewStatementWorker creates a new StatementWorker.
func NewStatementWorker(source SnapshotSource, exporter Exporter, walletID string, interval time.Duration) *StatementWorker {
	return &StatementWorker{
		source:   source,
		exporter: exporter,
		walletID: walletID,
		interval: interval,
	}
}

// RunOnce exports the wallet's latest snapshot.
func (w *StatementWorker) RunOnce(ctx context.Context) error {
	entry, err := w.source.Latest(ctx, w.walletID)
	if err != nil {
		return err
	}
	_, err = w.exporter.Export(ctx, w.walletID, entry.Snapshot)
	return err
}

// Run starts the export loop. It blocks until the context is cancelled.
func (w *StatementWorker) Run(ctx context.Context) {
	slog.Info("StatementWorker: starting", "wallet", w.walletID, "interval", w.interval)

	// Export immediately on startup
	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("StatementWorker: shutting down")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *StatementWorker) tick(ctx context.Context) {
	if err := w.RunOnce(ctx); err != nil {
		slog.Error("StatementWorker: export failed", "wallet", w.walletID, "error", err)
		return
	}
	slog.Info("StatementWorker: export completed", "wallet", w.walletID)
}
