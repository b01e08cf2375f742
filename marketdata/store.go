package marketdata

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by LoadSnapshot when the store holds no snapshot.
var ErrNoSnapshot = errors.New("no market data snapshot")

// Store persists market data snapshots.
type Store interface {
	SaveSnapshot(ctx context.Context, s *Snapshot) error
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	Close() error
}
