package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=dedup_repository.go -destination=dedup_repository_mock.go -package=domain

// DedupRepository records short-lived delivery marks so duplicate events
// redelivered across a process restart are still suppressed. Marks expire on
// their own after the dedup window; the engine treats the repository as an
// optional supplement to its in-memory scan.
type DedupRepository interface {
	MarkDelivered(ctx context.Context, deviceID, soundType string, at time.Time, window time.Duration) error
	RecentlyDelivered(ctx context.Context, deviceID, soundType string) (bool, error)
}
