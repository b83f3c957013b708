package messaging

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by Publish when a bounded queue has no room left.
var ErrQueueFull = errors.New("messaging: queue is full")

// Queue is a typed message queue.
type Queue[T any] interface {
	// Publish enqueues a copy of t.
	Publish(ctx context.Context, t *T) error

	// Consume waits for the next message or for ctx to be done.
	Consume(ctx context.Context) (Message[T], error)
}

// Message is a delivered payload that must be settled exactly once.
type Message[T any] interface {
	T() *T

	// Ack settles the message as processed.
	Ack() error

	// Nack settles the message as failed; the queue decides whether it is
	// redelivered.
	Nack(err error) error
}
