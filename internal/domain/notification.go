package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a live alert surfaced to the dashboard. It is created by the
// notify engine once an event survives classification and deduplication.
type Notification struct {
	ID          string
	SoundType   string
	Confidence  float64
	DeviceID    string
	DeviceName  string
	Timestamp   time.Time
	IsCritical  bool
	IsImportant bool
	IsRead      bool
}

func NewNotification(soundType string, confidence float64, deviceID, deviceName string, timestamp time.Time, critical, important bool) *Notification {
	return &Notification{
		ID:          uuid.NewString(),
		SoundType:   soundType,
		Confidence:  confidence,
		DeviceID:    deviceID,
		DeviceName:  deviceName,
		Timestamp:   timestamp,
		IsCritical:  critical,
		IsImportant: important,
		IsRead:      false,
	}
}

// MarkRead flips the read flag. The transition is one-way: once read, a
// notification never becomes unread again.
func (n *Notification) MarkRead() {
	n.IsRead = true
}
