package broadcast

import (
	"context"
	"sync"
)

type Message[T any] struct {
	Data T
}

type Subscriber[T any] interface {
	// Receive returns a channel closed when the subscription ends.
	Receive() <-chan Message[T]
	Close() error
}

type Broadcaster[T any] interface {
	Subscribe(ctx context.Context) Subscriber[T]
	Broadcast(ctx context.Context, msg Message[T]) error
	Close() error
}

type subscriber[T any] struct {
	mu     sync.RWMutex
	ch     chan Message[T]
	done   chan struct{}
	closed bool
}

func newSubscriber[T any](size int) *subscriber[T] {
	return &subscriber[T]{
		ch:   make(chan Message[T], size),
		done: make(chan struct{}),
	}
}

func (s *subscriber[T]) Receive() <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
		close(s.done)
	}
	return nil
}

// send reports false when the subscriber is closed or its buffer is full.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}
	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
