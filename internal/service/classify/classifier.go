// Package classify decides whether a detection event is actionable, based on
// the static sound taxonomies and the device's own notification settings.
package classify

import (
	"strings"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify derives the verdict for an event given the device's settings.
// Settings may be nil (not yet loaded); in that case nothing matches and the
// verdict is all-false, so an unconfigured device never interrupts anyone.
func (c *Classifier) Classify(event *domain.SoundEvent, settings *domain.DeviceSettings) domain.Verdict {
	if settings == nil {
		return domain.Verdict{}
	}

	verdict := domain.Verdict{}

	if matchesAny(event.SoundType, settings.ExcludedSounds) ||
		matchesAny(event.SoundType, settings.ExcludedCustomSounds()) {
		verdict.IsExcluded = true
		return verdict
	}

	verdict.IsCritical = matchesAny(event.SoundType, criticalSounds)

	verdict.IsImportant = matchesAny(event.SoundType, householdSounds) ||
		matchesAny(event.SoundType, settings.NotificationSounds) ||
		matchesAny(event.SoundType, settings.SpecificSounds())

	return verdict
}

// matchesAny reports whether the sound type fuzzily matches any label.
// Matching is case-insensitive containment in either direction: the model's
// class names and the taxonomy labels disagree on granularity ("Smoke alarm"
// vs "smoke"), so exact matching would miss real hits.
func matchesAny(soundType string, labels []string) bool {
	needle := strings.ToLower(strings.TrimSpace(soundType))
	if needle == "" {
		return false
	}

	for _, label := range labels {
		candidate := strings.ToLower(strings.TrimSpace(label))
		if candidate == "" {
			continue
		}
		if strings.Contains(needle, candidate) || strings.Contains(candidate, needle) {
			return true
		}
	}
	return false
}
