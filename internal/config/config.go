package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	SentinelAPIURL string
	LiveChannelURL string
	Port           string
	LogLevel       slog.Level
	Intake         *IntakeConfig
	Redis          *RedisConfig
	Telemetry      *TelemetryConfig
	Notify         *NotifyConfig
	PushQueue      PushQueueConfig
}

type PushQueueConfig struct {
	PushTasksURL string
	QueueName    string

	GCloudProjectID  string
	GCloudLocationID string
	GCloudQueueID    string
	GCloudTargetURL  string

	MaxRetries int
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	queueName := os.Getenv("PUSH_QUEUE_NAME")
	if queueName == "" {
		queueName = "default"
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		SentinelAPIURL: os.Getenv("SENTINEL_API_URL"),
		LiveChannelURL: os.Getenv("LIVE_CHANNEL_URL"),
		Port:           port,
		LogLevel:       ParseLogLevel(os.Getenv("LOG_LEVEL")),
		Intake:         LoadIntakeConfig(),
		Redis:          redisConfig,
		Telemetry:      LoadTelemetryConfig(),
		Notify:         LoadNotifyConfig(),
		PushQueue: PushQueueConfig{
			PushTasksURL: os.Getenv("PUSH_TASKS_URL"),
			QueueName:    queueName,

			GCloudProjectID:  os.Getenv("GCLOUD_PROJECT_ID"),
			GCloudLocationID: os.Getenv("GCLOUD_LOCATION_ID"),
			GCloudQueueID:    os.Getenv("GCLOUD_QUEUE_ID"),
			GCloudTargetURL:  os.Getenv("GCLOUD_TARGET_URL"),

			MaxRetries: envInt("PUSH_QUEUE_MAX_RETRIES", 3),
		},
	}, nil
}

// ParseLogLevel maps a LOG_LEVEL string to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
