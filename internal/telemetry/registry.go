package telemetry

import (
	"sync"
	"time"
)

// Registry hands out one Window per device, created lazily on first ingest.
type Registry struct {
	mu      sync.RWMutex
	size    time.Duration
	windows map[string]*Window
}

func NewRegistry(size time.Duration) *Registry {
	return &Registry{
		size:    size,
		windows: make(map[string]*Window),
	}
}

// ForDevice returns the device's window, creating it if needed.
func (r *Registry) ForDevice(deviceID string) *Window {
	r.mu.RLock()
	w, ok := r.windows[deviceID]
	r.mu.RUnlock()
	if ok {
		return w
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.windows[deviceID]; ok {
		return w
	}
	w = NewWindow(r.size)
	r.windows[deviceID] = w
	return w
}

// Lookup returns the device's window without creating one.
func (r *Registry) Lookup(deviceID string) (*Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[deviceID]
	return w, ok
}

// DeviceIDs returns the ids of all devices that have reported at least once.
func (r *Registry) DeviceIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.windows))
	for id := range r.windows {
		ids = append(ids, id)
	}
	return ids
}
