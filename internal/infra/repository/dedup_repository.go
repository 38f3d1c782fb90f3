package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

const dedupKeyPrefix = "sentinel:dedup:"

// markRecord is what gets stored per (device, sound) mark; the payload is for
// operators inspecting keys, expiry alone drives the dedup answer.
type markRecord struct {
	DeviceID    string    `json:"device_id"`
	SoundType   string    `json:"sound_type"`
	DeliveredAt time.Time `json:"delivered_at"`
}

type dedupRepository struct {
	client *redis.Client
}

// NewDedupRepository returns a Redis-backed dedup-mark store. Each mark lives
// exactly one dedup window, so expiry implements the window check.
func NewDedupRepository(client *redis.Client) domain.DedupRepository {
	return &dedupRepository{
		client: client,
	}
}

func (r *dedupRepository) MarkDelivered(ctx context.Context, deviceID, soundType string, at time.Time, window time.Duration) error {
	record := markRecord{
		DeviceID:    deviceID,
		SoundType:   soundType,
		DeliveredAt: at,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidMarkData
	}

	return r.client.Set(ctx, dedupKey(deviceID, soundType), data, window).Err()
}

func (r *dedupRepository) RecentlyDelivered(ctx context.Context, deviceID, soundType string) (bool, error) {
	exists, err := r.client.Exists(ctx, dedupKey(deviceID, soundType)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func dedupKey(deviceID, soundType string) string {
	return dedupKeyPrefix + deviceID + ":" + soundType
}
