// Package intake subscribes to the sentinel backend's live channel and feeds
// decoded events into the notification pipeline and the telemetry windows.
package intake

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
	"github.com/soundsentinel/sentinel-hub/internal/observability/metrics"
)

// Sink consumes decoded intake events. Calls are made sequentially from the
// intake goroutine; a handler runs to completion before the next message is
// read.
type Sink interface {
	HandleSound(ctx context.Context, event *domain.SoundEvent)
	HandleLevel(ctx context.Context, event *domain.LevelEvent)
}

// Listener maintains a WebSocket subscription to the live channel, redialing
// with capped exponential backoff on any drop. Delivery upstream is
// at-least-once; gaps during reconnects are expected and tolerated by the
// pipeline's dedup and windowing.
type Listener struct {
	url       string
	sink      Sink
	metrics   *metrics.PipelineMetrics
	connected atomic.Bool

	backoffInitial time.Duration
	backoffMax     time.Duration
}

func NewListener(url string, sink Sink, pipelineMetrics *metrics.PipelineMetrics, backoffInitial, backoffMax time.Duration) *Listener {
	return &Listener{
		url:            url,
		sink:           sink,
		metrics:        pipelineMetrics,
		backoffInitial: backoffInitial,
		backoffMax:     backoffMax,
	}
}

// Connected reports whether the listener currently holds a live connection.
// The readiness probe reads this from the health check goroutine.
func (l *Listener) Connected() bool {
	return l.connected.Load()
}

// Run blocks until the context is cancelled, reconnecting as needed. Only
// consecutive failed dials grow the backoff; a drop after a live session
// retries at the initial delay again.
func (l *Listener) Run(ctx context.Context) error {
	failures := 0

	for {
		connected, err := l.listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			failures = 0
		}

		backoff := l.reconnectDelay(failures)
		slog.WarnContext(ctx, "live channel dropped, reconnecting",
			slog.String("url", l.url),
			slog.Duration("backoff", backoff),
			slog.String("error", errString(err)),
		)
		if l.metrics != nil {
			l.metrics.RecordReconnect(ctx)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		failures++
	}
}

// reconnectDelay maps a count of consecutive dial failures to a wait, doubling
// from the initial delay up to the cap.
func (l *Listener) reconnectDelay(failures int) time.Duration {
	delay := l.backoffInitial
	for i := 0; i < failures && delay < l.backoffMax; i++ {
		delay *= 2
	}
	if delay > l.backoffMax {
		delay = l.backoffMax
	}
	return delay
}

// listen reports whether a connection was established alongside the error
// that ended it.
func (l *Listener) listen(ctx context.Context) (bool, error) {
	conn, _, err := websocket.Dial(ctx, l.url, nil)
	if err != nil {
		return false, err
	}
	defer conn.Close(websocket.StatusNormalClosure, "listener stopped")

	l.connected.Store(true)
	defer l.connected.Store(false)

	// A live feed can outgrow the default read limit during bursts.
	conn.SetReadLimit(1 << 20)

	slog.InfoContext(ctx, "live channel connected",
		slog.String("url", l.url),
	)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return true, err
		}
		l.dispatch(ctx, data)
	}
}

func (l *Listener) dispatch(ctx context.Context, data []byte) {
	msg, err := decodeEnvelope(data, time.Now())
	if err != nil {
		slog.WarnContext(ctx, "dropping malformed live-channel message",
			slog.String("error", err.Error()),
		)
		if l.metrics != nil {
			l.metrics.RecordDecodeFailure(ctx)
		}
		return
	}

	switch {
	case msg.Sound != nil:
		l.sink.HandleSound(ctx, msg.Sound)
	case msg.Level != nil:
		l.sink.HandleLevel(ctx, msg.Level)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "context canceled"
	}
	return err.Error()
}
