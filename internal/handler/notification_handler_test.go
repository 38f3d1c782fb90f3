package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
	"github.com/soundsentinel/sentinel-hub/internal/service/notify"
)

func setupNotificationRouter(store *notify.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewNotificationHandler(store)
	r.GET("/notifications", h.HandleList)
	r.GET("/notifications/unread_count", h.HandleUnreadCount)
	r.POST("/notifications/:id/read", h.HandleMarkRead)
	r.DELETE("/notifications", h.HandleClearAll)
	return r
}

func insertNotification(store *notify.Store, soundType string, at time.Time) *domain.Notification {
	n := domain.NewNotification(soundType, 0.9, "device-1", "Living Room", at, false, true)
	store.Insert(n, nil)
	return n
}

func TestHandleList(t *testing.T) {
	store := notify.NewStore(100)
	router := setupNotificationRouter(store)

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	older := insertNotification(store, "Doorbell", base)
	newer := insertNotification(store, "Smoke alarm", base.Add(5*time.Second))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp struct {
		Notifications []struct {
			ID        string `json:"id"`
			SoundType string `json:"sound_type"`
			IsRead    bool   `json:"is_read"`
		} `json:"notifications"`
		UnreadCount int `json:"unread_count"`
		Total       int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Total != 2 || resp.UnreadCount != 2 {
		t.Errorf("total = %d, unread = %d, want 2/2", resp.Total, resp.UnreadCount)
	}
	if len(resp.Notifications) != 2 {
		t.Fatalf("notifications len = %d, want 2", len(resp.Notifications))
	}
	if resp.Notifications[0].ID != newer.ID || resp.Notifications[1].ID != older.ID {
		t.Error("notifications not ordered newest-first")
	}
}

func TestHandleListUnreadFilter(t *testing.T) {
	store := notify.NewStore(100)
	router := setupNotificationRouter(store)

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	read := insertNotification(store, "Doorbell", base)
	unread := insertNotification(store, "Smoke alarm", base.Add(5*time.Second))

	if err := store.MarkRead(read.ID); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications?unread=true", nil)
	router.ServeHTTP(w, req)

	var resp struct {
		Notifications []struct {
			ID string `json:"id"`
		} `json:"notifications"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(resp.Notifications) != 1 || resp.Notifications[0].ID != unread.ID {
		t.Errorf("unread filter returned %v", resp.Notifications)
	}
}

func TestHandleMarkRead(t *testing.T) {
	store := notify.NewStore(100)
	router := setupNotificationRouter(store)

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	n := insertNotification(store, "Doorbell", base)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{name: "existing notification", id: n.ID, wantStatus: http.StatusOK},
		{name: "repeat is idempotent", id: n.ID, wantStatus: http.StatusOK},
		{name: "unknown id", id: "no-such-id", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/notifications/"+tt.id+"/read", nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}

	if !n.IsRead {
		t.Error("notification not marked read")
	}
}

func TestHandleUnreadCountAndClearAll(t *testing.T) {
	store := notify.NewStore(100)
	router := setupNotificationRouter(store)

	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	insertNotification(store, "Doorbell", base)
	insertNotification(store, "Smoke alarm", base.Add(time.Second))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications/unread_count", nil))

	var count struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &count); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if count.UnreadCount != 2 {
		t.Errorf("unread_count = %d, want 2", count.UnreadCount)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d, want 200", w.Code)
	}

	if store.Len() != 0 {
		t.Errorf("store holds %d notifications after clear, want 0", store.Len())
	}
}
