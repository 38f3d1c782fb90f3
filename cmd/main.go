package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/soundsentinel/sentinel-hub/internal/config"
	"github.com/soundsentinel/sentinel-hub/internal/handler"
	"github.com/soundsentinel/sentinel-hub/internal/health"
	"github.com/soundsentinel/sentinel-hub/internal/infra/detectionlog"
	"github.com/soundsentinel/sentinel-hub/internal/infra/repository"
	"github.com/soundsentinel/sentinel-hub/internal/infra/sentinelapi"
	"github.com/soundsentinel/sentinel-hub/internal/intake"
	"github.com/soundsentinel/sentinel-hub/internal/observability/logging"
	"github.com/soundsentinel/sentinel-hub/internal/observability/metrics"
	"github.com/soundsentinel/sentinel-hub/internal/observability/middleware"
	"github.com/soundsentinel/sentinel-hub/internal/service/classify"
	"github.com/soundsentinel/sentinel-hub/internal/service/notify"
	"github.com/soundsentinel/sentinel-hub/internal/service/settings"
	"github.com/soundsentinel/sentinel-hub/internal/telemetry"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	pipelineMetrics, err := metrics.NewPipelineMetrics()
	if err != nil {
		slog.Error("failed to initialize pipeline metrics", slog.String("error", err.Error()))
		return 1
	}

	// Detection history recorder (InfluxDB for local, BigQuery for gcloud)
	recorderCfg := detectionlog.LoadConfig()
	recorder, err := detectionlog.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize detection recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close detection recorder", slog.String("error", err.Error()))
		}
	}()

	pushQueue, cleanup, err := initPushQueue(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize push queue", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("push queue cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	// The dedup repository is an optional supplement; a missing Redis only
	// costs cross-restart dedup, so connection failure is not fatal.
	dedupRepo := repository.NewDedupRepository(redisClient)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, cross-restart dedup disabled",
			slog.String("event", "redis.connect.fail"),
			slog.String("addr", cfg.Redis.Addr),
			slog.String("error", err.Error()),
		)
		dedupRepo = nil
	} else {
		slog.Info("redis connected",
			slog.String("addr", cfg.Redis.Addr),
		)
	}

	apiClient := sentinelapi.NewClient(cfg.SentinelAPIURL)
	settingsCache := settings.NewCache(apiClient, cfg.Notify.SettingsTTL)

	registry := telemetry.NewRegistry(cfg.Telemetry.WindowSize)
	store := notify.NewStore(cfg.Notify.MaxNotifications)

	engine := notify.NewEngine(
		classify.NewClassifier(),
		settingsCache,
		store,
		notify.NewTimerFactory(),
		registry,
		dedupRepo,
		recorder,
		pushQueue,
		pipelineMetrics,
		cfg.Notify.DedupWindow,
		cfg.Notify.AutoReadAfter,
	)

	// Intake: WebSocket live channel and/or MQTT broker. The first transport
	// configured feeds the readiness probe.
	var intakeProbe health.IntakeProbe
	if cfg.LiveChannelURL != "" {
		listener := intake.NewListener(
			cfg.LiveChannelURL,
			engine,
			pipelineMetrics,
			cfg.Intake.ReconnectInitial,
			cfg.Intake.ReconnectMax,
		)
		intakeProbe = listener
		go func() {
			if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("live channel listener stopped", slog.String("error", err.Error()))
			}
		}()
	}

	if cfg.Intake.MQTTBrokerURL != "" {
		mqttListener := intake.NewMQTTListener(
			cfg.Intake.MQTTBrokerURL,
			cfg.Intake.MQTTTopic,
			cfg.Intake.MQTTClientID,
			engine,
			pipelineMetrics,
		)
		if err := mqttListener.Start(ctx); err != nil {
			slog.Error("failed to start mqtt intake", slog.String("error", err.Error()))
			return 1
		}
		defer mqttListener.Stop()
		if intakeProbe == nil {
			intakeProbe = mqttListener
		}
	}

	notificationHandler := handler.NewNotificationHandler(store)
	telemetryHandler := handler.NewTelemetryHandler(registry, cfg.Telemetry)

	// Setup router with observability middleware
	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("sentinel-hub"),
		TracerName:  "github.com/soundsentinel/sentinel-hub/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	// Health check endpoints
	healthChecker := health.NewChecker(intakeProbe, redisClient, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	// API routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/notifications", notificationHandler.HandleList)
		v1.GET("/notifications/unread_count", notificationHandler.HandleUnreadCount)
		v1.POST("/notifications/:id/read", notificationHandler.HandleMarkRead)
		v1.DELETE("/notifications", notificationHandler.HandleClearAll)

		v1.GET("/telemetry/devices", telemetryHandler.HandleDevices)
		v1.GET("/telemetry/:deviceID/window", telemetryHandler.HandleWindow)
		v1.GET("/telemetry/:deviceID/chart", telemetryHandler.HandleChart)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("telemetry_window", cfg.Telemetry.WindowSize),
			slog.Duration("dedup_window", cfg.Notify.DedupWindow),
			slog.Int("max_notifications", cfg.Notify.MaxNotifications),
		)
		serverErr <- srv.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := recorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush detection recorder", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
