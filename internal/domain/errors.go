package domain

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrSettingsUnavailable  = errors.New("device settings unavailable")
)
