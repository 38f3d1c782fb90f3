package domain

import "time"

// SoundEvent is a detection delivered by the sentinel backend over the live
// channel. Delivery is at-least-once with no ordering guarantee across
// devices, so consumers must tolerate duplicates and late arrivals.
type SoundEvent struct {
	DetectionID     string
	DeviceID        string
	SoundType       string
	Confidence      float64
	Timestamp       time.Time
	ShouldNotify    *bool // explicit backend override; false suppresses unconditionally
	IsCustom        bool
	CustomSoundType string
	DBLevel         float64
}

// NotifyOverridden reports whether the backend explicitly suppressed
// notification for this event.
func (e *SoundEvent) NotifyOverridden() bool {
	return e.ShouldNotify != nil && !*e.ShouldNotify
}

// LevelEvent is a bare audio-level reading without a detection attached.
type LevelEvent struct {
	DeviceID  string
	DBLevel   float64
	Timestamp time.Time
}
