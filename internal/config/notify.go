package config

import "time"

const (
	dedupWindowMSEnv    = "NOTIFY_DEDUP_WINDOW_MS"
	autoReadMSEnv       = "NOTIFY_AUTO_READ_MS"
	maxNotificationsEnv = "NOTIFY_MAX_NOTIFICATIONS"
	settingsTTLEnv      = "NOTIFY_SETTINGS_TTL_SECONDS"

	defaultDedupWindowMS      = 2000
	defaultAutoReadMS         = 4000
	defaultMaxNotifications   = 100
	defaultSettingsTTLSeconds = 60
)

type NotifyConfig struct {
	DedupWindow      time.Duration
	AutoReadAfter    time.Duration
	MaxNotifications int
	SettingsTTL      time.Duration
}

func LoadNotifyConfig() *NotifyConfig {
	return &NotifyConfig{
		DedupWindow:      time.Duration(envInt(dedupWindowMSEnv, defaultDedupWindowMS)) * time.Millisecond,
		AutoReadAfter:    time.Duration(envInt(autoReadMSEnv, defaultAutoReadMS)) * time.Millisecond,
		MaxNotifications: envInt(maxNotificationsEnv, defaultMaxNotifications),
		SettingsTTL:      time.Duration(envInt(settingsTTLEnv, defaultSettingsTTLSeconds)) * time.Second,
	}
}
