package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundsentinel/sentinel-hub/internal/config"
	"github.com/soundsentinel/sentinel-hub/internal/telemetry"
)

func setupTelemetryRouter(registry *telemetry.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewTelemetryHandler(registry, &config.TelemetryConfig{
		WindowSize:         10 * time.Second,
		ChartDefaultWidth:  600,
		ChartDefaultHeight: 200,
	})
	r.GET("/telemetry/devices", h.HandleDevices)
	r.GET("/telemetry/:deviceID/window", h.HandleWindow)
	r.GET("/telemetry/:deviceID/chart", h.HandleChart)
	return r
}

func TestHandleWindow(t *testing.T) {
	registry := telemetry.NewRegistry(10 * time.Second)
	router := setupTelemetryRouter(registry)

	now := time.Now()
	registry.ForDevice("device-1").Ingest(42, now.Add(-2*time.Second))
	registry.ForDevice("device-1").Ingest(58, now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/telemetry/device-1/window", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		DeviceID      string  `json:"device_id"`
		WindowSeconds float64 `json:"window_seconds"`
		Samples       []struct {
			Level float64 `json:"level"`
		} `json:"samples"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.WindowSeconds != 10 {
		t.Errorf("window_seconds = %v, want 10", resp.WindowSeconds)
	}
	if len(resp.Samples) != 2 {
		t.Fatalf("samples len = %d, want 2", len(resp.Samples))
	}
	if resp.Samples[0].Level != 42 || resp.Samples[1].Level != 58 {
		t.Error("samples not ordered oldest-first")
	}
}

func TestHandleWindowUnknownDevice(t *testing.T) {
	registry := telemetry.NewRegistry(10 * time.Second)
	router := setupTelemetryRouter(registry)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/telemetry/never-seen/window", nil))

	// The dashboard polls before the first sample; an unknown device is an
	// empty window, not an error.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Samples []struct{} `json:"samples"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Samples) != 0 {
		t.Errorf("samples len = %d, want 0", len(resp.Samples))
	}
}

func TestHandleChart(t *testing.T) {
	registry := telemetry.NewRegistry(10 * time.Second)
	router := setupTelemetryRouter(registry)

	now := time.Now()
	registry.ForDevice("device-1").Ingest(30, now.Add(-4*time.Second))
	registry.ForDevice("device-1").Ingest(70, now)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/telemetry/device-1/chart?cursor_x=600", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Frame struct {
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
			Points []struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"points"`
			Area []struct{} `json:"area"`
		} `json:"frame"`
		Tooltip *struct {
			Level float64 `json:"level"`
		} `json:"tooltip"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Frame.Width != 600 || resp.Frame.Height != 200 {
		t.Errorf("viewport = %vx%v, want defaults 600x200", resp.Frame.Width, resp.Frame.Height)
	}
	if len(resp.Frame.Points) != 2 {
		t.Fatalf("points len = %d, want 2", len(resp.Frame.Points))
	}
	if len(resp.Frame.Area) != 4 {
		t.Errorf("area len = %d, want 4", len(resp.Frame.Area))
	}
	if resp.Tooltip == nil {
		t.Fatal("cursor_x set but no tooltip returned")
	}
	if resp.Tooltip.Level != 70 {
		t.Errorf("tooltip level = %v, want the newest sample's 70", resp.Tooltip.Level)
	}
}

func TestHandleChartParamValidation(t *testing.T) {
	registry := telemetry.NewRegistry(10 * time.Second)
	router := setupTelemetryRouter(registry)

	tests := []struct {
		name  string
		query string
	}{
		{name: "non-numeric width", query: "width=wide"},
		{name: "negative width", query: "width=-10"},
		{name: "zero height", query: "height=0"},
		{name: "non-numeric cursor", query: "cursor_x=here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/telemetry/device-1/chart?"+tt.query, nil))

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestHandleDevices(t *testing.T) {
	registry := telemetry.NewRegistry(10 * time.Second)
	router := setupTelemetryRouter(registry)

	registry.ForDevice("device-1").Ingest(42, time.Now())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/telemetry/devices", nil))

	var resp struct {
		DeviceIDs []string `json:"device_ids"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.DeviceIDs) != 1 || resp.DeviceIDs[0] != "device-1" {
		t.Errorf("device_ids = %v, want [device-1]", resp.DeviceIDs)
	}
}
