//go:build gcloud

package detectionlog

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

type detectionRow struct {
	RecordedAt  time.Time `bigquery:"recorded_at"`
	DetectedAt  time.Time `bigquery:"detected_at"`
	DetectionID string    `bigquery:"detection_id"`
	DeviceID    string    `bigquery:"device_id"`
	SoundType   string    `bigquery:"sound_type"`
	Confidence  float64   `bigquery:"confidence"`
	Outcome     string    `bigquery:"outcome"`
	IsCritical  bool      `bigquery:"is_critical"`
	IsImportant bool      `bigquery:"is_important"`
	IsExcluded  bool      `bigquery:"is_excluded"`
}

type levelRow struct {
	RecordedAt time.Time `bigquery:"recorded_at"`
	MeasuredAt time.Time `bigquery:"measured_at"`
	DeviceID   string    `bigquery:"device_id"`
	DBLevel    float64   `bigquery:"db_level"`
}

type bigQueryRecorder struct {
	client            *bigquery.Client
	detectionInserter *bigquery.Inserter
	levelInserter     *bigquery.Inserter
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.DetectionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "detection history recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, detection history recording disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, detection history recording disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	dataset := client.Dataset(cfg.BigQueryDataset)

	slog.InfoContext(ctx, "detection recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:            client,
		detectionInserter: dataset.Table(cfg.BigQueryTable).Inserter(),
		levelInserter:     dataset.Table(cfg.BigQueryTable + "_levels").Inserter(),
	}, nil
}

func (r *bigQueryRecorder) RecordDetection(ctx context.Context, record domain.DetectionRecord) error {
	row := &detectionRow{
		RecordedAt:  time.Now(),
		DetectedAt:  record.Timestamp,
		DetectionID: record.DetectionID,
		DeviceID:    record.DeviceID,
		SoundType:   record.SoundType,
		Confidence:  record.Confidence,
		Outcome:     record.Outcome,
		IsCritical:  record.IsCritical,
		IsImportant: record.IsImportant,
		IsExcluded:  record.IsExcluded,
	}

	if err := r.detectionInserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert detection to BigQuery",
			slog.String("error", err.Error()),
			slog.String("device_id", record.DeviceID),
		)
		return err
	}

	return nil
}

func (r *bigQueryRecorder) RecordLevel(ctx context.Context, record domain.LevelRecord) error {
	row := &levelRow{
		RecordedAt: time.Now(),
		MeasuredAt: record.Timestamp,
		DeviceID:   record.DeviceID,
		DBLevel:    record.DBLevel,
	}

	if err := r.levelInserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert audio level to BigQuery",
			slog.String("error", err.Error()),
			slog.String("device_id", record.DeviceID),
		)
		return err
	}

	return nil
}

func (r *bigQueryRecorder) Flush(_ context.Context) error {
	// Inserter.Put is synchronous; nothing to flush.
	return nil
}

func (r *bigQueryRecorder) Close() error {
	return r.client.Close()
}
