package detectionlog

import (
	"context"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

type noopRecorder struct{}

// NewNoopRecorder returns a recorder that drops everything; used when
// detection history recording is disabled or unconfigured.
func NewNoopRecorder() domain.DetectionRecorder {
	return noopRecorder{}
}

func (noopRecorder) RecordDetection(_ context.Context, _ domain.DetectionRecord) error {
	return nil
}

func (noopRecorder) RecordLevel(_ context.Context, _ domain.LevelRecord) error {
	return nil
}

func (noopRecorder) Flush(_ context.Context) error { return nil }

func (noopRecorder) Close() error { return nil }
