//go:build !gcloud

package detectionlog

import (
	"context"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
	org      string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.DetectionRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "detection history recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, detection history recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "detection recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
		org:      cfg.InfluxDBOrg,
	}, nil
}

func (r *influxDBRecorder) RecordDetection(ctx context.Context, record domain.DetectionRecord) error {
	point := influxdb2.NewPoint(
		"sound_detection",
		map[string]string{
			"device_id":  record.DeviceID,
			"sound_type": record.SoundType,
			"outcome":    record.Outcome,
		},
		map[string]any{
			"detection_id": record.DetectionID,
			"confidence":   record.Confidence,
			"is_critical":  record.IsCritical,
			"is_important": record.IsImportant,
			"is_excluded":  record.IsExcluded,
		},
		record.Timestamp,
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write detection to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("device_id", record.DeviceID),
			slog.String("sound_type", record.SoundType),
		)
		return err
	}

	return nil
}

func (r *influxDBRecorder) RecordLevel(ctx context.Context, record domain.LevelRecord) error {
	point := influxdb2.NewPoint(
		"audio_level",
		map[string]string{
			"device_id": record.DeviceID,
		},
		map[string]any{
			"db_level": record.DBLevel,
		},
		record.Timestamp,
	)

	if err := r.writeAPI.WritePoint(ctx, point); err != nil {
		slog.WarnContext(ctx, "failed to write audio level to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("device_id", record.DeviceID),
		)
		return err
	}

	return nil
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	// WriteAPIBlocking writes synchronously; nothing is buffered.
	return nil
}

func (r *influxDBRecorder) Close() error {
	r.client.Close()
	return nil
}
