package notify

import "time"

// TimerHandle cancels a pending delayed callback. Stop is a no-op once the
// callback has fired or the handle was already stopped.
type TimerHandle interface {
	Stop() bool
}

// TimerFactory schedules delayed callbacks. The engine cancels the returned
// handle whenever the notification it belongs to is removed, so a timer can
// never fire against an entry no longer in the store. Tests substitute a
// manual factory to drive time deterministically.
type TimerFactory interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

type realTimerFactory struct{}

// NewTimerFactory returns a factory backed by the runtime timer heap.
func NewTimerFactory() TimerFactory {
	return realTimerFactory{}
}

func (realTimerFactory) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(d, fn)
}
