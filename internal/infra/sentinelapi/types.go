package sentinelapi

// Device mirrors the backend's /devices response entries.
type Device struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	IPAddress      string  `json:"ip_address"`
	MACAddress     string  `json:"mac_address"`
	Model          string  `json:"model"`
	MicrophoneInfo string  `json:"microphone_info"`
	WifiSignal     float64 `json:"wifi_signal"`
	Status         string  `json:"status"`
	LastSeen       string  `json:"last_seen"`
}

type DevicesResponse struct {
	Devices []Device `json:"devices"`
}

// CustomSound is a user-trained sound label; Type is "specific" or "excluded".
type CustomSound struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// NotificationSettings mirrors /notification_settings/{device_id}.
type NotificationSettings struct {
	NotificationSounds []string      `json:"notification_sounds"`
	ExcludedSounds     []string      `json:"excluded_sounds"`
	CustomSounds       []CustomSound `json:"custom_sounds"`
}
