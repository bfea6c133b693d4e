package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates that the requested snapshot was not found.
var ErrNotFound = errors.New("snapshot not found")

// Record is a stored ledger snapshot of one wallet.
type Record struct {
	ID        int64           `json:"id"`
	WalletID  string          `json:"walletId"`
	TakenAt   time.Time       `json:"takenAt"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Repository defines persistent storage for snapshots.
type Repository interface {
	Save(ctx context.Context, walletID string, takenAt time.Time, data json.RawMessage) error
	GetLatest(ctx context.Context, walletID string) (*Record, error)
	List(ctx context.Context, walletID string, limit int) ([]Record, error)
}

// PgRepository implements Repository with PostgreSQL.
type PgRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepository creates a new PostgreSQL snapshot repository.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) Save(ctx context.Context, walletID string, takenAt time.Time, data json.RawMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ledger_snapshots (wallet_id, taken_at, data)
		 VALUES ($1, $2, $3::jsonb)
		 ON CONFLICT (wallet_id, taken_at)
		 DO UPDATE SET data = $3::jsonb`,
		walletID, takenAt, data)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

func (r *PgRepository) GetLatest(ctx context.Context, walletID string) (*Record, error) {
	var rec Record
	err := r.pool.QueryRow(ctx,
		`SELECT id, wallet_id, taken_at, data, created_at
		 FROM ledger_snapshots
		 WHERE wallet_id = $1
		 ORDER BY taken_at DESC
		 LIMIT 1`, walletID).Scan(&rec.ID, &rec.WalletID, &rec.TakenAt, &rec.Data, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting latest snapshot: %w", err)
	}
	return &rec, nil
}

func (r *PgRepository) List(ctx context.Context, walletID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, wallet_id, taken_at, data, created_at
		 FROM ledger_snapshots
		 WHERE wallet_id = $1
		 ORDER BY taken_at DESC
		 LIMIT $2`, walletID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Record, error) {
		var rec Record
		err := row.Scan(&rec.ID, &rec.WalletID, &rec.TakenAt, &rec.Data, &rec.CreatedAt)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("scanning snapshots: %w", err)
	}
	return records, nil
}
