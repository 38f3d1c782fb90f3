package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.SentinelAPIURL == "" {
		return errors.New("SENTINEL_API_URL environment variable is required")
	}
	if cfg.LiveChannelURL == "" && cfg.Intake.MQTTBrokerURL == "" {
		return errors.New("LIVE_CHANNEL_URL or INTAKE_MQTT_BROKER_URL is required")
	}
	return nil
}
