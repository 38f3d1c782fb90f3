package sentinelapi

import "context"

//go:generate mockgen -source=repository.go -destination=mock.go -package=sentinelapi

// SentinelRepository is the REST surface of the sound-detection backend that
// the hub consumes: the device list and each device's notification settings.
type SentinelRepository interface {
	GetDevices(ctx context.Context) ([]Device, error)
	GetNotificationSettings(ctx context.Context, deviceID string) (*NotificationSettings, error)
}
