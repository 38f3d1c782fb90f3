package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
	"github.com/soundsentinel/sentinel-hub/internal/service/notify"
)

type NotificationHandler struct {
	store *notify.Store
}

func NewNotificationHandler(store *notify.Store) *NotificationHandler {
	return &NotificationHandler{
		store: store,
	}
}

type notificationResponse struct {
	ID          string    `json:"id"`
	SoundType   string    `json:"sound_type"`
	Confidence  float64   `json:"confidence"`
	DeviceID    string    `json:"device_id"`
	DeviceName  string    `json:"device_name"`
	Timestamp   time.Time `json:"timestamp"`
	IsCritical  bool      `json:"is_critical"`
	IsImportant bool      `json:"is_important"`
	IsRead      bool      `json:"is_read"`
}

type notificationsResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
	Total         int                    `json:"total"`
}

// HandleList returns live notifications newest-first. ?unread=true narrows to
// unread entries.
func (h *NotificationHandler) HandleList(c *gin.Context) {
	var notifications []*domain.Notification
	if c.Query("unread") == "true" {
		notifications = h.store.Unread()
	} else {
		notifications = h.store.All()
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toResponse(n))
	}

	c.JSON(http.StatusOK, notificationsResponse{
		Notifications: out,
		UnreadCount:   h.store.UnreadCount(),
		Total:         h.store.Len(),
	})
}

// HandleUnreadCount returns the unread badge count.
func (h *NotificationHandler) HandleUnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"unread_count": h.store.UnreadCount()})
}

// HandleMarkRead marks one notification as read. Marking an already-read
// notification succeeds; the operation is idempotent.
func (h *NotificationHandler) HandleMarkRead(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.MarkRead(id); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HandleClearAll removes every live notification.
func (h *NotificationHandler) HandleClearAll(c *gin.Context) {
	h.store.ClearAll()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toResponse(n *domain.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		SoundType:   n.SoundType,
		Confidence:  n.Confidence,
		DeviceID:    n.DeviceID,
		DeviceName:  n.DeviceName,
		Timestamp:   n.Timestamp,
		IsCritical:  n.IsCritical,
		IsImportant: n.IsImportant,
		IsRead:      n.IsRead,
	}
}
