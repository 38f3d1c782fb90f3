package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundsentinel/sentinel-hub/internal/chart"
	"github.com/soundsentinel/sentinel-hub/internal/config"
	"github.com/soundsentinel/sentinel-hub/internal/telemetry"
)

type TelemetryHandler struct {
	registry *telemetry.Registry
	cfg      *config.TelemetryConfig
}

func NewTelemetryHandler(registry *telemetry.Registry, cfg *config.TelemetryConfig) *TelemetryHandler {
	return &TelemetryHandler{
		registry: registry,
		cfg:      cfg,
	}
}

type sampleResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Level     float64   `json:"level"`
}

type windowResponse struct {
	DeviceID      string           `json:"device_id"`
	WindowSeconds float64          `json:"window_seconds"`
	Samples       []sampleResponse `json:"samples"`
}

type chartResponse struct {
	DeviceID string         `json:"device_id"`
	Frame    chart.Frame    `json:"frame"`
	Tooltip  *chart.Tooltip `json:"tooltip,omitempty"`
}

// HandleWindow returns the device's current sample window, oldest first.
// A device that has never reported yields an empty window, not a 404: the
// dashboard polls before the first sample arrives.
func (h *TelemetryHandler) HandleWindow(c *gin.Context) {
	deviceID := c.Param("deviceID")

	resp := windowResponse{
		DeviceID:      deviceID,
		WindowSeconds: h.cfg.WindowSize.Seconds(),
		Samples:       []sampleResponse{},
	}

	if w, ok := h.registry.Lookup(deviceID); ok {
		for _, s := range w.Snapshot() {
			resp.Samples = append(resp.Samples, sampleResponse{
				Timestamp: s.Timestamp,
				Level:     s.Level,
			})
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HandleChart renders the device's window into a pixel-space frame. A
// cursor_x query sets the pointer and returns the tooltip for the nearest
// sample; omitting it leaves the tooltip cleared.
func (h *TelemetryHandler) HandleChart(c *gin.Context) {
	deviceID := c.Param("deviceID")

	width := float64(h.cfg.ChartDefaultWidth)
	if v := c.Query("width"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid width"})
			return
		}
		width = parsed
	}

	height := float64(h.cfg.ChartDefaultHeight)
	if v := c.Query("height"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid height"})
			return
		}
		height = parsed
	}

	renderer := chart.NewRenderer(h.cfg.WindowSize, width, height)

	resp := chartResponse{DeviceID: deviceID}

	if w, ok := h.registry.Lookup(deviceID); ok {
		resp.Frame = renderer.Render(w.Snapshot(), time.Now())
	} else {
		resp.Frame = renderer.Render(nil, time.Now())
	}

	if v := c.Query("cursor_x"); v != "" {
		cursorX, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cursor_x"})
			return
		}
		resp.Tooltip = renderer.SetPointer(cursorX)
	}

	c.JSON(http.StatusOK, resp)
}

// HandleDevices lists the devices that have reported telemetry.
func (h *TelemetryHandler) HandleDevices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"device_ids": h.registry.DeviceIDs()})
}
