package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/soundsentinel/sentinel-hub/internal/observability/metrics"
)

// MQTTListener consumes the same envelope payloads from an MQTT broker, for
// deployments where devices publish through a local broker instead of the
// backend's WebSocket fan-out. Reconnects are delegated to the paho client.
type MQTTListener struct {
	brokerURL string
	topic     string
	clientID  string
	sink      Sink
	metrics   *metrics.PipelineMetrics

	client mqtt.Client
}

func NewMQTTListener(brokerURL, topic, clientID string, sink Sink, pipelineMetrics *metrics.PipelineMetrics) *MQTTListener {
	return &MQTTListener{
		brokerURL: brokerURL,
		topic:     topic,
		clientID:  clientID,
		sink:      sink,
		metrics:   pipelineMetrics,
	}
}

// Start connects and subscribes. Message handlers run on the paho dispatch
// goroutine one at a time, preserving run-to-completion semantics.
func (l *MQTTListener) Start(ctx context.Context) error {
	opts := mqtt.NewClientOptions().
		AddBroker(l.brokerURL).
		SetClientID(l.clientID).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(30 * time.Second).
		SetOrderMatters(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			slog.Warn("mqtt connection lost",
				slog.String("broker", l.brokerURL),
				slog.String("error", err.Error()),
			)
			if l.metrics != nil {
				l.metrics.RecordReconnect(context.Background())
			}
		})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to mqtt broker: %w", token.Error())
	}

	if token := client.Subscribe(l.topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		l.handle(ctx, msg.Payload())
	}); token.Wait() && token.Error() != nil {
		client.Disconnect(250)
		return fmt.Errorf("failed to subscribe to %s: %w", l.topic, token.Error())
	}

	l.client = client

	slog.InfoContext(ctx, "mqtt intake started",
		slog.String("broker", l.brokerURL),
		slog.String("topic", l.topic),
	)

	return nil
}

// Connected reports whether the client currently holds a broker connection.
// The readiness probe reads this.
func (l *MQTTListener) Connected() bool {
	return l.client != nil && l.client.IsConnectionOpen()
}

// Stop unsubscribes and disconnects.
func (l *MQTTListener) Stop() {
	if l.client == nil {
		return
	}
	if token := l.client.Unsubscribe(l.topic); token.Wait() && token.Error() != nil {
		slog.Warn("failed to unsubscribe mqtt topic",
			slog.String("topic", l.topic),
			slog.String("error", token.Error().Error()),
		)
	}
	l.client.Disconnect(250)
}

func (l *MQTTListener) handle(ctx context.Context, payload []byte) {
	msg, err := decodeEnvelope(payload, time.Now())
	if err != nil {
		slog.WarnContext(ctx, "dropping malformed mqtt message",
			slog.String("error", err.Error()),
		)
		if l.metrics != nil {
			l.metrics.RecordDecodeFailure(ctx)
		}
		return
	}

	switch {
	case msg.Sound != nil:
		l.sink.HandleSound(ctx, msg.Sound)
	case msg.Level != nil:
		l.sink.HandleLevel(ctx, msg.Level)
	}
}
