package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const pipelineMeterName = "sentinel.pipeline"

type PipelineMetrics struct {
	eventsProcessed      metric.Int64Counter
	notificationsCreated metric.Int64Counter
	notificationsEvicted metric.Int64Counter
	autoReads            metric.Int64Counter
	samplesIngested      metric.Int64Counter
	intakeReconnects     metric.Int64Counter
	decodeFailures       metric.Int64Counter
}

func NewPipelineMetrics() (*PipelineMetrics, error) {
	meter := otel.Meter(pipelineMeterName)

	eventsProcessed, err := meter.Int64Counter(
		"pipeline_events_total",
		metric.WithDescription("Total number of live-channel events processed"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsCreated, err := meter.Int64Counter(
		"pipeline_notifications_created_total",
		metric.WithDescription("Total number of notifications accepted into the store"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsEvicted, err := meter.Int64Counter(
		"pipeline_notifications_evicted_total",
		metric.WithDescription("Total number of notifications evicted at capacity"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	autoReads, err := meter.Int64Counter(
		"pipeline_auto_reads_total",
		metric.WithDescription("Total number of notifications auto-marked read"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	samplesIngested, err := meter.Int64Counter(
		"telemetry_samples_ingested_total",
		metric.WithDescription("Total number of audio-level samples ingested"),
		metric.WithUnit("{sample}"),
	)
	if err != nil {
		return nil, err
	}

	intakeReconnects, err := meter.Int64Counter(
		"intake_reconnects_total",
		metric.WithDescription("Total number of live-channel reconnect attempts"),
		metric.WithUnit("{reconnect}"),
	)
	if err != nil {
		return nil, err
	}

	decodeFailures, err := meter.Int64Counter(
		"intake_decode_failures_total",
		metric.WithDescription("Total number of malformed live-channel messages dropped"),
		metric.WithUnit("{message}"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		eventsProcessed:      eventsProcessed,
		notificationsCreated: notificationsCreated,
		notificationsEvicted: notificationsEvicted,
		autoReads:            autoReads,
		samplesIngested:      samplesIngested,
		intakeReconnects:     intakeReconnects,
		decodeFailures:       decodeFailures,
	}, nil
}

func (m *PipelineMetrics) RecordEvent(ctx context.Context, eventType, outcome string) {
	m.eventsProcessed.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_type", eventType),
		attribute.String("outcome", outcome),
	))
}

func (m *PipelineMetrics) RecordNotificationCreated(ctx context.Context, severity string) {
	m.notificationsCreated.Add(ctx, 1, metric.WithAttributes(
		attribute.String("severity", severity),
	))
}

func (m *PipelineMetrics) RecordEvictions(ctx context.Context, count int) {
	m.notificationsEvicted.Add(ctx, int64(count))
}

func (m *PipelineMetrics) RecordAutoRead(ctx context.Context) {
	m.autoReads.Add(ctx, 1)
}

func (m *PipelineMetrics) RecordSampleIngested(ctx context.Context, deviceID string) {
	m.samplesIngested.Add(ctx, 1, metric.WithAttributes(
		attribute.String("device_id", deviceID),
	))
}

func (m *PipelineMetrics) RecordReconnect(ctx context.Context) {
	m.intakeReconnects.Add(ctx, 1)
}

func (m *PipelineMetrics) RecordDecodeFailure(ctx context.Context) {
	m.decodeFailures.Add(ctx, 1)
}
