// Package logging configures the process-wide slog handler and carries the
// service identity attached to every record.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// Environment selects log output formatting.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags log records with the emitting subsystem.
type Module string

// ServiceInfo identifies the running binary in every log record.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

// NewLogger builds the service logger: text output for dev, JSON for
// everything else, with the service identity attached.
func NewLogger(info ServiceInfo, env Environment, level slog.Level, module Module) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == EnvDev {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	attrs := []slog.Attr{
		slog.String("service", info.Name),
		slog.String("version", info.Version),
		slog.String("module", string(module)),
	}
	if info.Revision != "" {
		attrs = append(attrs, slog.String("revision", info.Revision))
	}

	return slog.New(handler.WithAttrs(attrs))
}

type requestIDKey struct{}

// WithRequestID stores a request id in the context for downstream log records
// and outbound headers.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request id stored in ctx, if any.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}
