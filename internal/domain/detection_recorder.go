package domain

import (
	"context"
	"time"
)

// DetectionRecord is one intake event as written to the history sink.
// Suppressed and excluded events are recorded too; Outcome says what the
// pipeline did with the event.
type DetectionRecord struct {
	DetectionID string
	DeviceID    string
	SoundType   string
	Confidence  float64
	Timestamp   time.Time
	Outcome     string
	IsCritical  bool
	IsImportant bool
	IsExcluded  bool
}

// LevelRecord is a single audio-level reading written to the history sink.
type LevelRecord struct {
	DeviceID  string
	DBLevel   float64
	Timestamp time.Time
}

// DetectionRecorder is the history sink for intake traffic. Implementations
// write to InfluxDB locally and BigQuery on gcloud; a noop recorder is used
// when recording is not configured.
type DetectionRecorder interface {
	RecordDetection(ctx context.Context, record DetectionRecord) error
	RecordLevel(ctx context.Context, record LevelRecord) error
	Flush(ctx context.Context) error
	Close() error
}
