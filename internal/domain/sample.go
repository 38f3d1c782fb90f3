package domain

import "time"

// Sample is a single audio-level reading inside the telemetry window.
// Levels arrive pre-normalized to a 0-100 scale; the buffer does not clamp.
type Sample struct {
	Timestamp time.Time
	Level     float64
}
