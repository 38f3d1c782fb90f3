package domain

const (
	CustomSoundSpecific = "specific"
	CustomSoundExcluded = "excluded"
)

// CustomSound is a user-trained sound label attached to a device. Type is
// either "specific" (surface as important) or "excluded" (suppress).
type CustomSound struct {
	Name string
	Type string
}

// DeviceSettings holds the per-device notification configuration fetched from
// the sentinel backend.
type DeviceSettings struct {
	DeviceID           string
	NotificationSounds []string
	ExcludedSounds     []string
	CustomSounds       []CustomSound
}

// SpecificSounds returns the names of custom sounds trained as "specific".
func (s *DeviceSettings) SpecificSounds() []string {
	return s.customSoundsOfType(CustomSoundSpecific)
}

// ExcludedCustomSounds returns the names of custom sounds trained as "excluded".
func (s *DeviceSettings) ExcludedCustomSounds() []string {
	return s.customSoundsOfType(CustomSoundExcluded)
}

func (s *DeviceSettings) customSoundsOfType(soundType string) []string {
	names := make([]string, 0, len(s.CustomSounds))
	for _, cs := range s.CustomSounds {
		if cs.Type == soundType {
			names = append(names, cs.Name)
		}
	}
	return names
}
