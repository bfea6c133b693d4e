package export

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mtlprog/vault/internal/ledger"
)

type mockWriter struct {
	written *Statement
	err     error
}

func (m *mockWriter) Write(_ context.Context, st Statement) error {
	m.written = &st
	return m.err
}

func TestExportSuccess(t *testing.T) {
	w := &mockWriter{}
	svc := NewService(testOpts, w)
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	st, err := svc.Export(context.Background(), "alice.testnet", testSnapshot(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.written == nil {
		t.Fatal("expected statement to be written")
	}
	if !st.Summary.TakenAt.Equal(at) || st.Summary.WalletID != "alice.testnet" {
		t.Errorf("summary = %+v", st.Summary)
	}
}

func TestExportErrors(t *testing.T) {
	bad := testSnapshot(t)
	bad.StorageBalance.Available, bad.StorageBalance.Total = bad.StorageBalance.Total, bad.StorageBalance.Available

	tests := []struct {
		name   string
		wallet string
		snap   ledger.Snapshot
		writer *mockWriter
		want   error
	}{
		{"missing wallet", "", testSnapshot(t), &mockWriter{}, ErrMissingWallet},
		{"inconsistent storage", "alice.testnet", bad, &mockWriter{}, ledger.ErrStorageBalance},
		{"writer failure", "alice.testnet", testSnapshot(t), &mockWriter{err: errors.New("quota exceeded")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(testOpts, tt.writer).Export(context.Background(), tt.wallet, tt.snap)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
