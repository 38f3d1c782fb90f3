package config

import (
	"os"
	"time"
)

const (
	reconnectInitialMSEnv = "INTAKE_RECONNECT_INITIAL_MS"
	reconnectMaxMSEnv     = "INTAKE_RECONNECT_MAX_MS"
	mqttBrokerURLEnv      = "INTAKE_MQTT_BROKER_URL"
	mqttTopicEnv          = "INTAKE_MQTT_TOPIC"
	mqttClientIDEnv       = "INTAKE_MQTT_CLIENT_ID"

	defaultReconnectInitialMS = 1000
	defaultReconnectMaxMS     = 30000
	defaultMQTTTopic          = "sentinel/+/events"
	defaultMQTTClientID       = "sentinel-hub"
)

type IntakeConfig struct {
	ReconnectInitial time.Duration
	ReconnectMax     time.Duration

	MQTTBrokerURL string
	MQTTTopic     string
	MQTTClientID  string
}

func LoadIntakeConfig() *IntakeConfig {
	topic := os.Getenv(mqttTopicEnv)
	if topic == "" {
		topic = defaultMQTTTopic
	}

	clientID := os.Getenv(mqttClientIDEnv)
	if clientID == "" {
		clientID = defaultMQTTClientID
	}

	return &IntakeConfig{
		ReconnectInitial: time.Duration(envInt(reconnectInitialMSEnv, defaultReconnectInitialMS)) * time.Millisecond,
		ReconnectMax:     time.Duration(envInt(reconnectMaxMSEnv, defaultReconnectMaxMS)) * time.Millisecond,
		MQTTBrokerURL:    os.Getenv(mqttBrokerURLEnv),
		MQTTTopic:        topic,
		MQTTClientID:     clientID,
	}
}
