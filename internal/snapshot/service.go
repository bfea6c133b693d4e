package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/mtlprog/vault/internal/ledger"
)

// ErrMissingWallet is returned when no wallet ID is given.
var ErrMissingWallet = errors.New("wallet ID is required")

// Entry is a decoded journal record.
type Entry struct {
	TakenAt  time.Time       `json:"takenAt"`
	Snapshot ledger.Snapshot `json:"snapshot"`
}

// Service journals refreshed ledger snapshots per wallet.
type Service struct {
	repo Repository
}

// NewService creates a new snapshot Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record validates snap and stores it as the wallet's state at the given time.
func (s *Service) Record(ctx context.Context, walletID string, snap ledger.Snapshot, at time.Time) error {
	if walletID == "" {
		return ErrMissingWallet
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := s.repo.Save(ctx, walletID, at.UTC(), data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	slog.Info("snapshot recorded", "wallet", walletID, "accounts", len(snap.Accounts), "taken_at", at.UTC())
	return nil
}

// Latest returns the most recent snapshot of the wallet.
func (s *Service) Latest(ctx context.Context, walletID string) (Entry, error) {
	if walletID == "" {
		return Entry{}, ErrMissingWallet
	}
	rec, err := s.repo.GetLatest(ctx, walletID)
	if err != nil {
		return Entry{}, err
	}
	return decode(*rec)
}

// History returns up to limit snapshots of the wallet, newest first.
// Records that fail to decode are skipped with a warning.
func (s *Service) History(ctx context.Context, walletID string, limit int) ([]Entry, error) {
	if walletID == "" {
		return nil, ErrMissingWallet
	}
	records, err := s.repo.List(ctx, walletID, limit)
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(records, func(rec Record, _ int) (Entry, bool) {
		e, err := decode(rec)
		if err != nil {
			slog.Warn("skipping unreadable snapshot", "wallet", walletID, "id", rec.ID, "error", err)
			return Entry{}, false
		}
		return e, true
	}), nil
}

func decode(rec Record) (Entry, error) {
	var snap ledger.Snapshot
	if err := json.Unmarshal(rec.Data, &snap); err != nil {
		return Entry{}, fmt.Errorf("unmarshaling snapshot %d: %w", rec.ID, err)
	}
	if err := snap.Validate(); err != nil {
		return Entry{}, fmt.Errorf("snapshot %d: %w", rec.ID, err)
	}
	return Entry{TakenAt: rec.TakenAt, Snapshot: snap}, nil
}
