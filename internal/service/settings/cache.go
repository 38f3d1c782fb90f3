// Package settings caches per-device notification settings and device names
// fetched from the sentinel backend.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
	"github.com/soundsentinel/sentinel-hub/internal/infra/sentinelapi"
)

// Cache lazily fetches settings per device and keeps them for a TTL. A fetch
// failure is returned to the caller so classification can fail closed; a
// previously cached value is served until it expires.
type Cache struct {
	repo sentinelapi.SentinelRepository
	ttl  time.Duration

	mu      sync.Mutex
	entries map[string]*cacheEntry
	names   map[string]string
	namesAt time.Time

	now func() time.Time
}

type cacheEntry struct {
	settings  *domain.DeviceSettings
	fetchedAt time.Time
}

func NewCache(repo sentinelapi.SentinelRepository, ttl time.Duration) *Cache {
	return &Cache{
		repo:    repo,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		names:   make(map[string]string),
		now:     time.Now,
	}
}

// Settings returns the device's notification settings, fetching from the
// backend when the cached copy is missing or stale.
func (c *Cache) Settings(ctx context.Context, deviceID string) (*domain.DeviceSettings, error) {
	c.mu.Lock()
	entry, ok := c.entries[deviceID]
	if ok && c.now().Sub(entry.fetchedAt) < c.ttl {
		settings := entry.settings
		c.mu.Unlock()
		return settings, nil
	}
	c.mu.Unlock()

	fetched, err := c.repo.GetNotificationSettings(ctx, deviceID)
	if err != nil {
		// Serve the stale copy if there is one; classification still has
		// something better than nothing.
		if ok {
			slog.WarnContext(ctx, "settings refresh failed, serving stale copy",
				slog.String("device_id", deviceID),
				slog.String("error", err.Error()),
			)
			return entry.settings, nil
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSettingsUnavailable, err)
	}

	settings := toDomain(deviceID, fetched)

	c.mu.Lock()
	c.entries[deviceID] = &cacheEntry{settings: settings, fetchedAt: c.now()}
	c.mu.Unlock()

	return settings, nil
}

// DeviceName resolves a device's display name, refreshing the device list when
// the cached one is stale. An unknown device falls back to its id.
func (c *Cache) DeviceName(ctx context.Context, deviceID string) string {
	c.mu.Lock()
	stale := c.now().Sub(c.namesAt) >= c.ttl
	name, known := c.names[deviceID]
	c.mu.Unlock()

	if known && !stale {
		return name
	}

	devices, err := c.repo.GetDevices(ctx)
	if err != nil {
		slog.WarnContext(ctx, "failed to refresh device list",
			slog.String("error", err.Error()),
		)
		if known {
			return name
		}
		return deviceID
	}

	c.mu.Lock()
	c.names = make(map[string]string, len(devices))
	for _, d := range devices {
		c.names[d.ID] = d.Name
	}
	c.namesAt = c.now()
	name, known = c.names[deviceID]
	c.mu.Unlock()

	if !known {
		return deviceID
	}
	return name
}

// Invalidate drops the cached settings for a device, forcing a refetch on the
// next lookup.
func (c *Cache) Invalidate(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, deviceID)
}

func toDomain(deviceID string, s *sentinelapi.NotificationSettings) *domain.DeviceSettings {
	custom := make([]domain.CustomSound, 0, len(s.CustomSounds))
	for _, cs := range s.CustomSounds {
		custom = append(custom, domain.CustomSound{Name: cs.Name, Type: cs.Type})
	}

	return &domain.DeviceSettings{
		DeviceID:           deviceID,
		NotificationSounds: s.NotificationSounds,
		ExcludedSounds:     s.ExcludedSounds,
		CustomSounds:       custom,
	}
}
