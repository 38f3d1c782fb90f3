package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

// Live-channel message types emitted by the sentinel backend. Types not
// handled here (device lifecycle, clears) are acknowledged and ignored.
const (
	typeSoundDetected     = "sound_detected"
	typeAudioLevelUpdated = "audio_level_updated"
)

var (
	errMissingType      = errors.New("envelope missing type")
	errMissingDeviceID  = errors.New("envelope missing device_id")
	errMissingSoundType = errors.New("envelope missing sound_type")
)

// envelope is the wire shape of every live-channel payload; Type selects
// which of the remaining fields are meaningful.
type envelope struct {
	Type            string   `json:"type"`
	DetectionID     string   `json:"detection_id"`
	DeviceID        string   `json:"device_id"`
	SoundType       string   `json:"sound_type"`
	Confidence      float64  `json:"confidence"`
	Timestamp       string   `json:"timestamp"`
	ShouldNotify    *bool    `json:"should_notify,omitempty"`
	IsCustom        bool     `json:"is_custom"`
	CustomSoundType string   `json:"custom_sound_type"`
	DBLevel         *float64 `json:"db_level,omitempty"`
}

// decoded is one successfully parsed message; exactly one of Sound and Level
// is set. Both nil means the message type is not ours to handle.
type decoded struct {
	Sound *domain.SoundEvent
	Level *domain.LevelEvent
}

// decodeEnvelope validates and converts a raw live-channel payload. A missing
// required field is an error; the intake loop logs and drops such messages
// without dying.
func decodeEnvelope(data []byte, now time.Time) (decoded, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return decoded{}, fmt.Errorf("malformed envelope: %w", err)
	}

	if env.Type == "" {
		return decoded{}, errMissingType
	}

	switch env.Type {
	case typeSoundDetected:
		if env.DeviceID == "" {
			return decoded{}, errMissingDeviceID
		}
		if env.SoundType == "" {
			return decoded{}, errMissingSoundType
		}

		event := &domain.SoundEvent{
			DetectionID:     env.DetectionID,
			DeviceID:        env.DeviceID,
			SoundType:       env.SoundType,
			Confidence:      env.Confidence,
			Timestamp:       parseTimestamp(env.Timestamp, now),
			ShouldNotify:    env.ShouldNotify,
			IsCustom:        env.IsCustom,
			CustomSoundType: env.CustomSoundType,
		}
		if env.DBLevel != nil {
			event.DBLevel = *env.DBLevel
		}
		return decoded{Sound: event}, nil

	case typeAudioLevelUpdated:
		if env.DeviceID == "" {
			return decoded{}, errMissingDeviceID
		}

		var level float64
		if env.DBLevel != nil {
			level = *env.DBLevel
		}
		return decoded{Level: &domain.LevelEvent{
			DeviceID:  env.DeviceID,
			DBLevel:   level,
			Timestamp: parseTimestamp(env.Timestamp, now),
		}}, nil

	default:
		return decoded{}, nil
	}
}

// parseTimestamp falls back to arrival time when the payload carries no usable
// timestamp; the dedup comparison needs an instant either way.
func parseTimestamp(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return fallback
}
