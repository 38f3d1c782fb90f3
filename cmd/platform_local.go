//go:build !gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/soundsentinel/sentinel-hub/internal/config"
	"github.com/soundsentinel/sentinel-hub/internal/infra/pushqueue"
	"github.com/soundsentinel/sentinel-hub/internal/observability"
	"github.com/soundsentinel/sentinel-hub/internal/observability/logging"
)

func initPushQueue(_ context.Context, cfg *config.Config) (pushqueue.PushQueue, func() error, error) {
	if cfg.PushQueue.PushTasksURL == "" {
		slog.Warn("PUSH_TASKS_URL not set, push dispatch disabled")

		return nil, nil, nil
	}

	pq := pushqueue.NewHTTPTasksClient(
		cfg.PushQueue.PushTasksURL,
		cfg.PushQueue.QueueName,
		cfg.PushQueue.MaxRetries,
	)

	slog.Info("push queue initialized",
		slog.String("type", "http_tasks"),
		slog.String("url", cfg.PushQueue.PushTasksURL),
		slog.String("queue", cfg.PushQueue.QueueName),
	)

	return pq, nil, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "sentinel-hub"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   env,
		LogLevel:      config.ParseLogLevel(os.Getenv("LOG_LEVEL")),
		SamplingRate:  1.0,
		DefaultModule: logging.Module("sentinel-hub"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
