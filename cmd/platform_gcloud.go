//go:build gcloud

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

func initPushQueue(ctx context.Context, cfg *config.Config) (pushqueue.PushQueue, func() error, error) {
	cloudTasksClient, err := pushqueue.NewCloudTasksClient(ctx, pushqueue.CloudTasksConfig{
		ProjectID:  cfg.PushQueue.GCloudProjectID,
		LocationID: cfg.PushQueue.GCloudLocationID,
		QueueID:    cfg.PushQueue.GCloudQueueID,
		TargetURL:  cfg.PushQueue.GCloudTargetURL,
		MaxRetries: cfg.PushQueue.MaxRetries,
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("push queue initialized",
		slog.String("type", "cloud_tasks"),
		slog.String("project", cfg.PushQueue.GCloudProjectID),
		slog.String("location", cfg.PushQueue.GCloudLocationID),
		slog.String("queue", cfg.PushQueue.GCloudQueueID),
	)

	cleanup := func() error {
		if err := cloudTasksClient.Close(); err != nil {
			slog.Warn("failed to close cloud tasks client", slog.String("error", err.Error()))

			return err
		}

		return nil
	}

	return cloudTasksClient, cleanup, nil
}

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "sentinel-hub"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
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
