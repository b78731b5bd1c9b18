package teamstats

import "context"

// Log is an append-only history of snapshots; the latest entry is current.
type Log interface {
	Append(ctx context.Context, snapshot Snapshot) (int64, error)
	Latest(ctx context.Context) (Snapshot, bool, error)
}
