package teamstats

import "time"

// Snapshot is one recorded state of the season counters.
type Snapshot struct {
	ID           int64
	Wins         int64
	Draws        int64
	Losses       int64
	Goals        int64
	GoalsAgainst int64
	CreatedAt    time.Time
}
