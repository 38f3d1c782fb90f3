package sentinelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/soundsentinel/sentinel-hub/internal/observability/tracing"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) GetDevices(ctx context.Context) ([]Device, error) {
	body, err := c.get(ctx, "/devices")
	if err != nil {
		return nil, err
	}

	var resp DevicesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		slog.ErrorContext(ctx, "failed to decode devices response",
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode devices response: %w", err)
	}

	slog.DebugContext(ctx, "fetched devices",
		slog.Int("count", len(resp.Devices)),
	)

	return resp.Devices, nil
}

func (c *Client) GetNotificationSettings(ctx context.Context, deviceID string) (*NotificationSettings, error) {
	body, err := c.get(ctx, "/notification_settings/"+url.PathEscape(deviceID))
	if err != nil {
		return nil, err
	}

	var settings NotificationSettings
	if err := json.Unmarshal(body, &settings); err != nil {
		slog.ErrorContext(ctx, "failed to decode notification settings",
			slog.String("device_id", deviceID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to decode notification settings: %w", err)
	}

	return &settings, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send request to sentinel backend",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.ErrorContext(ctx, "unexpected status code from sentinel backend",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
