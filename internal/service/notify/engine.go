// Package notify turns classified detection events into live notifications:
// it deduplicates, enforces the retained-count ceiling, and manages the
// read/unread lifecycle with timed auto-read.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
	"github.com/soundsentinel/sentinel-hub/internal/infra/pushqueue"
	"github.com/soundsentinel/sentinel-hub/internal/observability/metrics"
	"github.com/soundsentinel/sentinel-hub/internal/observability/tracing"
	"github.com/soundsentinel/sentinel-hub/internal/service/classify"
	"github.com/soundsentinel/sentinel-hub/internal/telemetry"
)

// Event outcomes as recorded downstream.
const (
	OutcomeNotified   = "notified"
	OutcomeSuppressed = "suppressed"
	OutcomeExcluded   = "excluded"
	OutcomeIgnored    = "ignored"
	OutcomeDuplicate  = "duplicate"
)

// SettingsSource resolves per-device notification settings and display names.
// Implementations may fail while the backend is unreachable; the engine then
// classifies with nil settings, which fails closed.
type SettingsSource interface {
	Settings(ctx context.Context, deviceID string) (*domain.DeviceSettings, error)
	DeviceName(ctx context.Context, deviceID string) string
}

// Engine is the single consumer of intake events. Handlers run to completion
// before the next event is processed; the store and the telemetry registry are
// only ever mutated from here.
type Engine struct {
	classifier  *classify.Classifier
	settings    SettingsSource
	store       *Store
	timers      TimerFactory
	registry    *telemetry.Registry
	dedupRepo   domain.DedupRepository
	recorder    domain.DetectionRecorder
	pushQueue   pushqueue.PushQueue
	metrics     *metrics.PipelineMetrics
	dedupWindow time.Duration
	autoRead    time.Duration
}

func NewEngine(
	classifier *classify.Classifier,
	settings SettingsSource,
	store *Store,
	timers TimerFactory,
	registry *telemetry.Registry,
	dedupRepo domain.DedupRepository,
	recorder domain.DetectionRecorder,
	pushQueue pushqueue.PushQueue,
	pipelineMetrics *metrics.PipelineMetrics,
	dedupWindow time.Duration,
	autoRead time.Duration,
) *Engine {
	return &Engine{
		classifier:  classifier,
		settings:    settings,
		store:       store,
		timers:      timers,
		registry:    registry,
		dedupRepo:   dedupRepo,
		recorder:    recorder,
		pushQueue:   pushQueue,
		metrics:     pipelineMetrics,
		dedupWindow: dedupWindow,
		autoRead:    autoRead,
	}
}

// HandleSound processes one detection event end to end. Every event reaches
// the downstream recorder regardless of whether a notification is created.
func (e *Engine) HandleSound(ctx context.Context, event *domain.SoundEvent) {
	ctx, span := tracing.StartHandleSoundSpan(ctx, event.DeviceID, event.SoundType)
	defer span.End()

	// A detection can carry a level reading; feed the telemetry window first
	// so charting never depends on the notification path.
	if event.DBLevel > 0 {
		e.registry.ForDevice(event.DeviceID).Ingest(event.DBLevel, event.Timestamp)
		if e.metrics != nil {
			e.metrics.RecordSampleIngested(ctx, event.DeviceID)
		}
	}

	verdict := e.classify(ctx, event)
	outcome := e.decide(ctx, event, verdict)

	tracing.RecordSoundOutcome(span, outcome, verdict)
	if e.metrics != nil {
		e.metrics.RecordEvent(ctx, "sound_detected", outcome)
	}

	e.record(ctx, event, verdict, outcome)
}

// HandleLevel processes a bare audio-level reading.
func (e *Engine) HandleLevel(ctx context.Context, event *domain.LevelEvent) {
	e.registry.ForDevice(event.DeviceID).Ingest(event.DBLevel, event.Timestamp)

	if e.metrics != nil {
		e.metrics.RecordEvent(ctx, "audio_level_updated", "ingested")
		if event.DBLevel > 0 {
			e.metrics.RecordSampleIngested(ctx, event.DeviceID)
		}
	}

	if e.recorder != nil {
		if err := e.recorder.RecordLevel(ctx, domain.LevelRecord{
			DeviceID:  event.DeviceID,
			DBLevel:   event.DBLevel,
			Timestamp: event.Timestamp,
		}); err != nil {
			slog.WarnContext(ctx, "failed to record audio level",
				slog.String("device_id", event.DeviceID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Store exposes the live notification collection to the HTTP layer.
func (e *Engine) Store() *Store {
	return e.store
}

func (e *Engine) classify(ctx context.Context, event *domain.SoundEvent) domain.Verdict {
	settings, err := e.settings.Settings(ctx, event.DeviceID)
	if err != nil {
		// Fail closed: an unreachable settings backend must not produce
		// spurious interruptions.
		slog.WarnContext(ctx, "device settings unavailable, classifying closed",
			slog.String("device_id", event.DeviceID),
			slog.String("error", err.Error()),
		)
		settings = nil
	}

	return e.classifier.Classify(event, settings)
}

func (e *Engine) decide(ctx context.Context, event *domain.SoundEvent, verdict domain.Verdict) string {
	if event.NotifyOverridden() {
		slog.DebugContext(ctx, "notification suppressed by backend override",
			slog.String("device_id", event.DeviceID),
			slog.String("sound_type", event.SoundType),
		)
		return OutcomeSuppressed
	}

	if verdict.IsExcluded {
		return OutcomeExcluded
	}

	if !verdict.Actionable() {
		return OutcomeIgnored
	}

	if e.isDuplicate(ctx, event) {
		slog.DebugContext(ctx, "duplicate detection dropped",
			slog.String("device_id", event.DeviceID),
			slog.String("sound_type", event.SoundType),
		)
		return OutcomeDuplicate
	}

	e.accept(ctx, event, verdict)
	return OutcomeNotified
}

// isDuplicate applies the dedup-window comparison. Delivery is at-least-once
// over a fan-out channel, so the comparison uses wall-clock proximity rather
// than any sequence numbering.
func (e *Engine) isDuplicate(ctx context.Context, event *domain.SoundEvent) bool {
	for _, n := range e.store.All() {
		if n.SoundType != event.SoundType {
			continue
		}
		delta := event.Timestamp.Sub(n.Timestamp)
		if delta < 0 {
			delta = -delta
		}
		if delta < e.dedupWindow {
			return true
		}
	}

	// The repository mark survives restarts; errors degrade to the in-memory
	// answer rather than blocking the pipeline.
	if e.dedupRepo != nil {
		recent, err := e.dedupRepo.RecentlyDelivered(ctx, event.DeviceID, event.SoundType)
		if err != nil {
			slog.WarnContext(ctx, "dedup repository lookup failed",
				slog.String("device_id", event.DeviceID),
				slog.String("error", err.Error()),
			)
			return false
		}
		return recent
	}

	return false
}

func (e *Engine) accept(ctx context.Context, event *domain.SoundEvent, verdict domain.Verdict) {
	n := domain.NewNotification(
		event.SoundType,
		event.Confidence,
		event.DeviceID,
		e.settings.DeviceName(ctx, event.DeviceID),
		event.Timestamp,
		verdict.IsCritical,
		verdict.IsImportant,
	)

	// The store adopts the handle and cancels it on any removal, so the timer
	// can only ever flip the read flag of a live entry.
	var handle TimerHandle
	if e.autoRead > 0 {
		id := n.ID
		handle = e.timers.AfterFunc(e.autoRead, func() {
			if err := e.store.MarkRead(id); err == nil && e.metrics != nil {
				e.metrics.RecordAutoRead(context.Background())
			}
		})
	}

	evicted := e.store.Insert(n, handle)
	if len(evicted) > 0 && e.metrics != nil {
		e.metrics.RecordEvictions(ctx, len(evicted))
	}

	slog.InfoContext(ctx, "notification created",
		slog.String("notification_id", n.ID),
		slog.String("device_id", n.DeviceID),
		slog.String("sound_type", n.SoundType),
		slog.Bool("critical", n.IsCritical),
		slog.Float64("confidence", n.Confidence),
	)

	if e.metrics != nil {
		e.metrics.RecordNotificationCreated(ctx, severity(verdict))
	}

	if e.dedupRepo != nil {
		if err := e.dedupRepo.MarkDelivered(ctx, event.DeviceID, event.SoundType, event.Timestamp, e.dedupWindow); err != nil {
			slog.WarnContext(ctx, "failed to save dedup mark",
				slog.String("device_id", event.DeviceID),
				slog.String("error", err.Error()),
			)
		}
	}

	e.dispatchPush(ctx, n)
}

func (e *Engine) dispatchPush(ctx context.Context, n *domain.Notification) {
	if e.pushQueue == nil {
		return
	}

	task := &pushqueue.PushTask{
		NotificationID: n.ID,
		DeviceID:       n.DeviceID,
		DeviceName:     n.DeviceName,
		SoundType:      n.SoundType,
		Confidence:     n.Confidence,
		Critical:       n.IsCritical,
		DetectedAt:     n.Timestamp,
	}

	resp, err := e.pushQueue.RegisterPush(ctx, task)
	if err != nil {
		slog.ErrorContext(ctx, "failed to register push dispatch",
			slog.String("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		return
	}

	slog.DebugContext(ctx, "push dispatch registered",
		slog.String("notification_id", n.ID),
		slog.String("task_name", resp.Name),
	)
}

func (e *Engine) record(ctx context.Context, event *domain.SoundEvent, verdict domain.Verdict, outcome string) {
	if e.recorder == nil {
		return
	}

	if err := e.recorder.RecordDetection(ctx, domain.DetectionRecord{
		DetectionID: event.DetectionID,
		DeviceID:    event.DeviceID,
		SoundType:   event.SoundType,
		Confidence:  event.Confidence,
		Timestamp:   event.Timestamp,
		Outcome:     outcome,
		IsCritical:  verdict.IsCritical,
		IsImportant: verdict.IsImportant,
		IsExcluded:  verdict.IsExcluded,
	}); err != nil {
		slog.WarnContext(ctx, "failed to record detection",
			slog.String("detection_id", event.DetectionID),
			slog.String("error", err.Error()),
		)
	}
}

func severity(v domain.Verdict) string {
	if v.IsCritical {
		return "critical"
	}
	return "important"
}
