package sentinelapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_GetDevices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/devices" {
			t.Errorf("path = %q, want /devices", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"devices": [
				{"id": "device-1", "name": "Living Room", "status": "online"},
				{"id": "device-2", "name": "Nursery", "status": "offline"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	devices, err := client.GetDevices(context.Background())
	if err != nil {
		t.Fatalf("GetDevices() error = %v", err)
	}
	if len(devices) != 2 {
		t.Fatalf("devices len = %d, want 2", len(devices))
	}
	if devices[0].ID != "device-1" || devices[0].Name != "Living Room" {
		t.Errorf("devices[0] = %+v", devices[0])
	}
}

func TestClient_GetNotificationSettings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notification_settings/device-1" {
			t.Errorf("path = %q, want /notification_settings/device-1", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"notification_sounds": ["dog bark"],
			"excluded_sounds": ["traffic"],
			"custom_sounds": [{"name": "garage door", "type": "specific"}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	settings, err := client.GetNotificationSettings(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("GetNotificationSettings() error = %v", err)
	}
	if len(settings.NotificationSounds) != 1 || settings.NotificationSounds[0] != "dog bark" {
		t.Errorf("NotificationSounds = %v", settings.NotificationSounds)
	}
	if len(settings.CustomSounds) != 1 || settings.CustomSounds[0].Type != "specific" {
		t.Errorf("CustomSounds = %v", settings.CustomSounds)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	if _, err := client.GetDevices(context.Background()); err == nil {
		t.Error("GetDevices() accepted a 500 response")
	}
	if _, err := client.GetNotificationSettings(context.Background(), "device-1"); err == nil {
		t.Error("GetNotificationSettings() accepted a 500 response")
	}
}
