package config

import "time"

const (
	windowSecondsEnv      = "TELEMETRY_WINDOW_SECONDS"
	chartDefaultWidthEnv  = "CHART_DEFAULT_WIDTH"
	chartDefaultHeightEnv = "CHART_DEFAULT_HEIGHT"

	defaultWindowSeconds = 10
	defaultChartWidth    = 600
	defaultChartHeight   = 200
)

type TelemetryConfig struct {
	WindowSize         time.Duration
	ChartDefaultWidth  int
	ChartDefaultHeight int
}

func LoadTelemetryConfig() *TelemetryConfig {
	return &TelemetryConfig{
		WindowSize:         time.Duration(envInt(windowSecondsEnv, defaultWindowSeconds)) * time.Second,
		ChartDefaultWidth:  envInt(chartDefaultWidthEnv, defaultChartWidth),
		ChartDefaultHeight: envInt(chartDefaultHeightEnv, defaultChartHeight),
	}
}
