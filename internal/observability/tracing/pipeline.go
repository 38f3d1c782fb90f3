package tracing

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

const pipelineTracerName = "github.com/soundsentinel/sentinel-hub/internal/service/notify"

func PipelineTracer() trace.Tracer {
	return otel.Tracer(pipelineTracerName)
}

func StartHandleSoundSpan(ctx context.Context, deviceID, soundType string) (context.Context, trace.Span) {
	return PipelineTracer().Start(ctx, "pipeline.handle_sound",
		trace.WithAttributes(
			attribute.String("device_id", deviceID),
			attribute.String("sound_type", soundType),
		),
	)
}

func RecordSoundOutcome(span trace.Span, outcome string, verdict domain.Verdict) {
	span.SetAttributes(
		attribute.String("pipeline.outcome", outcome),
		attribute.Bool("verdict.critical", verdict.IsCritical),
		attribute.Bool("verdict.important", verdict.IsImportant),
		attribute.Bool("verdict.excluded", verdict.IsExcluded),
	)
}

// InjectToHTTPRequest propagates the active trace context onto an outbound
// request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
