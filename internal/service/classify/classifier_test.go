package classify

import (
	"testing"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier()

	settings := &domain.DeviceSettings{
		DeviceID:           "device-1",
		NotificationSounds: []string{"dog bark"},
		ExcludedSounds:     []string{"traffic"},
		CustomSounds: []domain.CustomSound{
			{Name: "garage door", Type: domain.CustomSoundSpecific},
			{Name: "dishwasher hum", Type: domain.CustomSoundExcluded},
		},
	}

	tests := []struct {
		name      string
		soundType string
		want      domain.Verdict
	}{
		{
			name:      "smoke alarm is critical",
			soundType: "Smoke alarm",
			want:      domain.Verdict{IsCritical: true},
		},
		{
			name:      "glass shatter is critical",
			soundType: "Glass shatter",
			want:      domain.Verdict{IsCritical: true},
		},
		{
			name:      "doorbell is important",
			soundType: "Doorbell",
			want:      domain.Verdict{IsImportant: true},
		},
		{
			name:      "microwave oven is important",
			soundType: "Microwave oven",
			want:      domain.Verdict{IsImportant: true},
		},
		{
			name:      "device notification sound is important",
			soundType: "Dog bark",
			want:      domain.Verdict{IsImportant: true},
		},
		{
			name:      "specific custom sound is important",
			soundType: "Garage door",
			want:      domain.Verdict{IsImportant: true},
		},
		{
			name:      "excluded sound is excluded",
			soundType: "Traffic",
			want:      domain.Verdict{IsExcluded: true},
		},
		{
			name:      "excluded custom sound is excluded",
			soundType: "Dishwasher hum",
			want:      domain.Verdict{IsExcluded: true},
		},
		{
			name:      "unknown sound matches nothing",
			soundType: "Bird chirp",
			want:      domain.Verdict{},
		},
		{
			name:      "empty sound type matches nothing",
			soundType: "",
			want:      domain.Verdict{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &domain.SoundEvent{DeviceID: "device-1", SoundType: tt.soundType}

			got := classifier.Classify(event, settings)

			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.soundType, got, tt.want)
			}
		})
	}
}

func TestClassifier_BidirectionalSubstringMatch(t *testing.T) {
	classifier := NewClassifier()
	settings := &domain.DeviceSettings{DeviceID: "device-1"}

	tests := []struct {
		name      string
		soundType string
		want      domain.Verdict
	}{
		{
			// Taxonomy label "siren" is contained in the event type.
			name:      "label contained in event type",
			soundType: "Emergency vehicle siren",
			want:      domain.Verdict{IsCritical: true},
		},
		{
			// Event type "ring" is contained in the taxonomy label
			// "phone ring"; the reverse direction must hit too.
			name:      "event type contained in label",
			soundType: "Ring",
			want:      domain.Verdict{IsImportant: true},
		},
		{
			name:      "match ignores case and surrounding whitespace",
			soundType: "  FIRE ALARM  ",
			want:      domain.Verdict{IsCritical: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := &domain.SoundEvent{DeviceID: "device-1", SoundType: tt.soundType}

			got := classifier.Classify(event, settings)

			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.soundType, got, tt.want)
			}
		})
	}
}

func TestClassifier_ExclusionWinsOverEverything(t *testing.T) {
	classifier := NewClassifier()

	// A sound that is both critical by taxonomy and excluded by the device
	// must come out excluded only.
	settings := &domain.DeviceSettings{
		DeviceID:       "device-1",
		ExcludedSounds: []string{"smoke alarm"},
	}

	event := &domain.SoundEvent{DeviceID: "device-1", SoundType: "Smoke alarm"}
	got := classifier.Classify(event, settings)

	want := domain.Verdict{IsExcluded: true}
	if got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
	if got.Actionable() {
		t.Error("excluded verdict must not be actionable")
	}
}

func TestClassifier_NilSettingsFailsClosed(t *testing.T) {
	classifier := NewClassifier()

	event := &domain.SoundEvent{DeviceID: "device-1", SoundType: "Smoke alarm"}
	got := classifier.Classify(event, nil)

	if got != (domain.Verdict{}) {
		t.Errorf("Classify() with nil settings = %+v, want zero verdict", got)
	}
}
