package composer

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound signals a session with no stored snapshot, either
// because it never started or because its snapshot expired.
var ErrSnapshotNotFound = errors.New("wizard snapshot not found")

// SnapshotStore persists wizard snapshots keyed by session ID. Snapshots are
// short-lived; implementations apply their own expiry.
type SnapshotStore interface {
	Load(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, state *State) error
	Clear(ctx context.Context, sessionID string) error
}
