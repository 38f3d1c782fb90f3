package notify

import (
	"sync"

	"github.com/soundsentinel/sentinel-hub/internal/domain"
)

// Store is the ordered collection of live notifications backing the dashboard.
// Entries are kept newest-first; read-state changes never reorder them. The
// store owns the auto-read timer handle of every entry and cancels it the
// moment the entry leaves the store, whatever the reason.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  []*entry
}

type entry struct {
	notification *domain.Notification
	autoRead     TimerHandle
}

func NewStore(capacity int) *Store {
	return &Store{
		capacity: capacity,
		entries:  make([]*entry, 0, capacity),
	}
}

// Insert places the notification at the head and adopts its auto-read timer
// handle (which may be nil). If the store exceeds capacity, the oldest entries
// are evicted and their timers cancelled. Eviction is routine backpressure,
// not an error.
func (s *Store) Insert(n *domain.Notification, autoRead TimerHandle) (evicted []*domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]*entry{{notification: n, autoRead: autoRead}}, s.entries...)

	for len(s.entries) > s.capacity {
		last := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]
		if last.autoRead != nil {
			last.autoRead.Stop()
		}
		evicted = append(evicted, last.notification)
	}
	return evicted
}

// All returns the live notifications newest-first. The slice is a copy; the
// pointed-to notifications are shared and only ever mutated via MarkRead.
func (s *Store) All() []*domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Notification, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.notification
	}
	return out
}

// Unread returns the unread notifications newest-first.
func (s *Store) Unread() []*domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Notification, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.notification.IsRead {
			out = append(out, e.notification)
		}
	}
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, e := range s.entries {
		if !e.notification.IsRead {
			count++
		}
	}
	return count
}

// Len returns the number of live notifications.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// MarkRead flips the notification's read flag and cancels its pending
// auto-read timer. It is idempotent and returns ErrNotificationNotFound for
// unknown ids, which includes ids already evicted or cleared.
func (s *Store) MarkRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.notification.ID != id {
			continue
		}
		e.notification.MarkRead()
		if e.autoRead != nil {
			e.autoRead.Stop()
			e.autoRead = nil
		}
		return nil
	}
	return domain.ErrNotificationNotFound
}

// ClearAll removes every notification and cancels all pending auto-read
// timers, so no stale callback can touch a discarded entry.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.autoRead != nil {
			e.autoRead.Stop()
		}
	}
	s.entries = s.entries[:0]
}
