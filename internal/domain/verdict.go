package domain

// Verdict is the classification outcome for a single detection event.
// It is derived per event and never stored.
type Verdict struct {
	IsCritical  bool
	IsImportant bool
	IsExcluded  bool
}

// Actionable reports whether the event should produce a notification at all.
// Exclusion wins over any taxonomy match.
func (v Verdict) Actionable() bool {
	return !v.IsExcluded && (v.IsCritical || v.IsImportant)
}
