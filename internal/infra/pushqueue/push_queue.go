package pushqueue

import "context"

//go:generate mockgen -source=push_queue.go -destination=mock.go -package=pushqueue

// PushQueue hands accepted notifications to the external push-delivery
// service. The hub never delivers pushes itself.
type PushQueue interface {
	RegisterPush(ctx context.Context, task *PushTask) (*TaskResponse, error)
}
