package pushqueue

import "time"

// PushTask carries one accepted notification to the push-delivery service.
type PushTask struct {
	NotificationID string    `json:"notification_id"`
	DeviceID       string    `json:"device_id"`
	DeviceName     string    `json:"device_name"`
	SoundType      string    `json:"sound_type"`
	Confidence     float64   `json:"confidence"`
	Critical       bool      `json:"critical"`
	DetectedAt     time.Time `json:"detected_at"`
}

type TaskResponse struct {
	Name       string    `json:"name"`
	CreateTime time.Time `json:"create_time"`
}

type pushTaskRequest struct {
	Task pushTaskBody `json:"task"`
}

type pushTaskBody struct {
	HTTPRequest pushHTTPRequest `json:"httpRequest"`
}

type pushHTTPRequest struct {
	Body    string            `json:"body"`
	Headers map[string]string `json:"headers,omitempty"`
}

type pushTaskResponse struct {
	Name       string `json:"name"`
	CreateTime string `json:"createTime"`
}
