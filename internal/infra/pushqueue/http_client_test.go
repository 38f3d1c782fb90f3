//go:build !gcloud

package pushqueue

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestHTTPTasksClient_RegisterPush(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		var req pushTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode task request: %v", err)
		}

		payload, err := base64.StdEncoding.DecodeString(req.Task.HTTPRequest.Body)
		if err != nil {
			t.Errorf("task body is not base64: %v", err)
		}
		var task PushTask
		if err := json.Unmarshal(payload, &task); err != nil {
			t.Errorf("task body is not a push task: %v", err)
		}
		if task.NotificationID != "notif-1" || task.SoundType != "Smoke alarm" {
			t.Errorf("decoded task = %+v", task)
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name": "tasks/abc123", "createTime": "2026-01-15T12:00:00Z"}`))
	}))
	defer server.Close()

	client := NewHTTPTasksClient(server.URL, "default", 3)

	resp, err := client.RegisterPush(context.Background(), &PushTask{
		NotificationID: "notif-1",
		DeviceID:       "device-1",
		DeviceName:     "Living Room",
		SoundType:      "Smoke alarm",
		Confidence:     0.97,
		Critical:       true,
		DetectedAt:     time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RegisterPush() error = %v", err)
	}
	if resp.Name != "tasks/abc123" {
		t.Errorf("task name = %q, want tasks/abc123", resp.Name)
	}
	if gotPath != "/tasks" {
		t.Errorf("path = %q, want /tasks for the default queue", gotPath)
	}
}

func TestHTTPTasksClient_NamedQueuePath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"name": "tasks/abc123", "createTime": "2026-01-15T12:00:00Z"}`))
	}))
	defer server.Close()

	client := NewHTTPTasksClient(server.URL, "alerts", 3)

	if _, err := client.RegisterPush(context.Background(), &PushTask{NotificationID: "notif-1"}); err != nil {
		t.Fatalf("RegisterPush() error = %v", err)
	}
	if gotPath != "/tasks/alerts" {
		t.Errorf("path = %q, want /tasks/alerts", gotPath)
	}
}

func TestHTTPTasksClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"name": "tasks/abc123", "createTime": "2026-01-15T12:00:00Z"}`))
	}))
	defer server.Close()

	client := NewHTTPTasksClient(server.URL, "default", 3)

	resp, err := client.RegisterPush(context.Background(), &PushTask{NotificationID: "notif-1"})
	if err != nil {
		t.Fatalf("RegisterPush() error = %v", err)
	}
	if resp.Name != "tasks/abc123" {
		t.Errorf("task name = %q", resp.Name)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server saw %d calls, want 3", got)
	}
}

func TestHTTPTasksClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHTTPTasksClient(server.URL, "default", 2)

	if _, err := client.RegisterPush(context.Background(), &PushTask{NotificationID: "notif-1"}); err == nil {
		t.Error("RegisterPush() = nil error, want failure after exhausting retries")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("server saw %d calls, want 2", got)
	}
}
