package broadcast

import (
	"context"
	"sync"
)

var _ Broadcaster[struct{}] = (*MemoryBroadcaster[struct{}])(nil)

// MemoryBroadcaster is a Broadcaster backed by buffered channels.
type MemoryBroadcaster[T any] struct {
	mu          sync.RWMutex
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	closed      bool
	wg          sync.WaitGroup
}

// NewMemoryBroadcaster uses a per-subscriber buffer of at least one message.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		bufferSize:  max(bufferSize, 1),
	}
}

func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := newSubscriber[T](b.bufferSize)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		_ = sub.Close()
		return sub
	}
	b.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-sub.done:
			}
		}()
	}

	return sub
}

func (b *MemoryBroadcaster[T]) Broadcast(_ context.Context, msg Message[T]) error {
	b.mu.RLock()
	var slow []*subscriber[T]
	for sub := range b.subscribers {
		if !sub.send(msg) {
			slow = append(slow, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range slow {
		b.unsubscribe(sub)
	}
	return nil
}

// Subscribers reports the number of live subscriptions.
func (b *MemoryBroadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close ends every subscription. Later Subscribe calls get closed subscribers.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	for sub := range b.subscribers {
		_ = sub.Close()
	}
	clear(b.subscribers)
	b.mu.Unlock()

	b.wg.Wait()
	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	delete(b.subscribers, sub)
	b.mu.Unlock()
	_ = sub.Close()
}
