// Package telemetry holds the rolling audio-level window for each device.
package telemetry

import (
	"sync"
	"time"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

// Window is a bounded buffer of audio-level samples kept in timestamp order
// regardless of arrival order; delivery upstream is at-least-once and not
// ordered, so late arrivals happen. It retains only samples newer than the
// look-back horizon; eviction happens on every ingest. Zero and negative
// levels are treated as "no signal" and never stored.
//
// The window is mutated by the intake goroutine and read by HTTP handlers, so
// all access goes through a mutex.
type Window struct {
	mu      sync.Mutex
	size    time.Duration
	samples []domain.Sample
}

func NewWindow(size time.Duration) *Window {
	return &Window{
		size:    size,
		samples: make([]domain.Sample, 0, 64),
	}
}

// Ingest adds a sample taken at the given instant and evicts everything older
// than the window horizon. The horizon follows the newest timestamp seen, so
// a late arrival never rewinds it; a sample already past the horizon on
// arrival is dropped outright. Levels <= 0 only trigger eviction.
func (w *Window) Ingest(level float64, at time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()

	horizon := w.evictLocked(at)

	if level <= 0 {
		return
	}
	if !at.After(horizon) {
		return
	}

	// Insert in timestamp order. Arrivals are near-ordered, so the scan
	// from the tail is almost always zero steps.
	idx := len(w.samples)
	for idx > 0 && w.samples[idx-1].Timestamp.After(at) {
		idx--
	}
	w.samples = append(w.samples, domain.Sample{})
	copy(w.samples[idx+1:], w.samples[idx:])
	w.samples[idx] = domain.Sample{Timestamp: at, Level: level}
}

// Snapshot returns the retained samples oldest-first. The returned slice is a
// copy; callers may hold it across later ingests.
func (w *Window) Snapshot() []domain.Sample {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]domain.Sample, len(w.samples))
	copy(out, w.samples)
	return out
}

// Len returns the number of retained samples.
func (w *Window) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.samples)
}

// Size returns the look-back horizon.
func (w *Window) Size() time.Duration {
	return w.size
}

// evictLocked drops samples at or before the horizon and returns the horizon
// used. The reference instant is the newest timestamp seen, not the ingest
// instant, so a late arrival cannot resurrect already-evicted ground.
func (w *Window) evictLocked(at time.Time) time.Time {
	ref := at
	if n := len(w.samples); n > 0 && w.samples[n-1].Timestamp.After(ref) {
		ref = w.samples[n-1].Timestamp
	}
	horizon := ref.Add(-w.size)

	// Samples are held in timestamp order, so stale ones form a prefix.
	idx := 0
	for idx < len(w.samples) && !w.samples[idx].Timestamp.After(horizon) {
		idx++
	}
	if idx > 0 {
		w.samples = append(w.samples[:0], w.samples[idx:]...)
	}
	return horizon
}
