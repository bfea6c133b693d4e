package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mtlprog/vault/internal/ledger"
)

// ErrMissingWallet is returned when no wallet ID is given.
var ErrMissingWallet = errors.New("wallet ID is required")

// SheetWriter writes a statement to a spreadsheet destination.
type SheetWriter interface {
	Write(ctx context.Context, st Statement) error
}

// Service builds statements and delegates writing to a SheetWriter.
type Service struct {
	opts   Options
	writer SheetWriter
	now    func() time.Time
}

// NewService creates a new export Service.
func NewService(opts Options, writer SheetWriter) *Service {
	return &Service{opts: opts, writer: writer, now: time.Now}
}

// Export validates snap, builds the wallet's statement and writes it.
func (s *Service) Export(ctx context.Context, walletID string, snap ledger.Snapshot) (Statement, error) {
	if walletID == "" {
		return Statement{}, ErrMissingWallet
	}
	if err := snap.Validate(); err != nil {
		return Statement{}, fmt.Errorf("invalid snapshot: %w", err)
	}

	st := BuildStatement(walletID, snap, s.opts, s.now())
	if err := s.writer.Write(ctx, st); err != nil {
		return Statement{}, fmt.Errorf("writing statement: %w", err)
	}

	slog.Info("statement exported", "wallet", walletID, "accounts", len(st.Rows))
	return st, nil
}
