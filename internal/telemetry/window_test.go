package telemetry

import (
	"testing"
	"time"
)

func TestWindow_IngestEvictsOldSamples(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(10 * time.Second)

	// One sample per second for 15 seconds; the window must never hold a
	// sample older than now minus 10 seconds.
	for i := 0; i < 15; i++ {
		at := base.Add(time.Duration(i) * time.Second)
		w.Ingest(50, at)

		horizon := at.Add(-w.Size())
		for _, s := range w.Snapshot() {
			if !s.Timestamp.After(horizon) {
				t.Fatalf("sample at %v retained past horizon %v", s.Timestamp, horizon)
			}
		}
	}

	// At steady state the window holds the last 10 seconds of samples.
	if got := w.Len(); got != 10 {
		t.Errorf("Len() = %d, want 10", got)
	}
}

func TestWindow_IngestDropsNonPositiveLevels(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		level   float64
		wantLen int
	}{
		{name: "positive level is stored", level: 42.5, wantLen: 1},
		{name: "zero level is dropped", level: 0, wantLen: 0},
		{name: "negative level is dropped", level: -3, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(10 * time.Second)
			w.Ingest(tt.level, base)

			if got := w.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestWindow_ZeroLevelStillEvicts(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(10 * time.Second)

	w.Ingest(30, base)

	// A zero-level reading 20 seconds later carries no sample but still
	// advances the horizon.
	w.Ingest(0, base.Add(20*time.Second))

	if got := w.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0 after horizon passed", got)
	}
}

func TestWindow_SampleExactlyAtHorizonIsEvicted(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(10 * time.Second)

	w.Ingest(30, base)
	w.Ingest(40, base.Add(10*time.Second))

	snap := w.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("Len() = %d, want 1", len(snap))
	}
	if !snap[0].Timestamp.Equal(base.Add(10 * time.Second)) {
		t.Errorf("retained sample = %v, want the newest one", snap[0].Timestamp)
	}
}

func TestWindow_SnapshotIsOldestFirstCopy(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(10 * time.Second)

	w.Ingest(10, base)
	w.Ingest(20, base.Add(time.Second))
	w.Ingest(30, base.Add(2*time.Second))

	snap := w.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Snapshot() len = %d, want 3", len(snap))
	}
	for i := 1; i < len(snap); i++ {
		if snap[i].Timestamp.Before(snap[i-1].Timestamp) {
			t.Errorf("snapshot not ordered oldest-first at index %d", i)
		}
	}

	// Mutating the copy must not affect the window.
	snap[0].Level = 999
	if got := w.Snapshot()[0].Level; got != 10 {
		t.Errorf("window sample mutated through snapshot: level = %v, want 10", got)
	}
}

func TestWindow_BurstThenSilence(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(10 * time.Second)

	// Rapid burst of samples within the same second.
	for i := 0; i < 20; i++ {
		w.Ingest(60, base.Add(time.Duration(i)*50*time.Millisecond))
	}
	if got := w.Len(); got != 20 {
		t.Fatalf("Len() after burst = %d, want 20", got)
	}

	// After the window has fully slid past the burst, everything is gone.
	w.Ingest(0, base.Add(11*time.Second))
	if got := w.Len(); got != 0 {
		t.Errorf("Len() after silence = %d, want 0", got)
	}
}

func TestWindow_LateArrivalKeepsTimestampOrder(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(10 * time.Second)

	// A sample from t+8s arrives after the one from t+10s.
	w.Ingest(90, base.Add(10*time.Second))
	w.Ingest(85, base.Add(8*time.Second))

	snap := w.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Len() = %d, want 2", len(snap))
	}
	if !snap[0].Timestamp.Equal(base.Add(8 * time.Second)) {
		t.Errorf("snapshot[0] = %v, want the t+8s sample first", snap[0].Timestamp)
	}
	if !snap[1].Timestamp.Equal(base.Add(10 * time.Second)) {
		t.Errorf("snapshot[1] = %v, want the t+10s sample last", snap[1].Timestamp)
	}
}

func TestWindow_LateArrivalPastHorizonIsDropped(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(5 * time.Second)

	w.Ingest(90, base.Add(10*time.Second))
	// Stale relative to the newest sample already seen; must never land.
	w.Ingest(85, base.Add(3*time.Second))
	w.Ingest(80, base.Add(11*time.Second))

	snap := w.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Len() = %d, want 2", len(snap))
	}
	horizon := base.Add(11 * time.Second).Add(-w.Size())
	for i, s := range snap {
		if !s.Timestamp.After(horizon) {
			t.Errorf("sample %d at %v is stale: retained past horizon %v", i, s.Timestamp, horizon)
		}
		if i > 0 && snap[i].Timestamp.Before(snap[i-1].Timestamp) {
			t.Errorf("snapshot not ordered oldest-first at index %d", i)
		}
	}
}

func TestWindow_LateArrivalDoesNotRewindHorizon(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	w := NewWindow(5 * time.Second)

	w.Ingest(90, base.Add(10*time.Second))

	// An old instant arriving late must not shrink the window back and
	// evict the fresh sample.
	w.Ingest(85, base.Add(2*time.Second))

	if got := w.Len(); got != 1 {
		t.Fatalf("Len() = %d, want the fresh sample retained", got)
	}
	if got := w.Snapshot()[0].Level; got != 90 {
		t.Errorf("retained level = %v, want 90", got)
	}
}

func TestRegistry_ForDevice(t *testing.T) {
	r := NewRegistry(10 * time.Second)

	a := r.ForDevice("device-a")
	b := r.ForDevice("device-b")
	if a == b {
		t.Error("ForDevice() handed out the same window for distinct devices")
	}

	if again := r.ForDevice("device-a"); again != a {
		t.Error("ForDevice() did not return the existing window")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry(10 * time.Second)

	if _, ok := r.Lookup("unknown"); ok {
		t.Error("Lookup() reported a window for a device that never ingested")
	}

	r.ForDevice("device-a")
	if _, ok := r.Lookup("device-a"); !ok {
		t.Error("Lookup() missed an existing window")
	}

	ids := r.DeviceIDs()
	if len(ids) != 1 || ids[0] != "device-a" {
		t.Errorf("DeviceIDs() = %v, want [device-a]", ids)
	}
}
