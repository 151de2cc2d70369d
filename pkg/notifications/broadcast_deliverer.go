package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/userdash/pkg/broadcast"
	"github.com/dmitrymomot/userdash/pkg/cache"
	"github.com/dmitrymomot/userdash/pkg/logger"
)

// BroadcastDeliverer keeps one broadcaster per profile. Idle profiles are
// evicted in LRU order, which closes their subscriptions.
type BroadcastDeliverer struct {
	profiles   *cache.LRUCache[string, *broadcast.MemoryBroadcaster[Toast]]
	bufferSize int
	logger     *slog.Logger
}

type BroadcastOption func(*broadcastConfig)

type broadcastConfig struct {
	maxProfiles int
	logger      *slog.Logger
}

func WithMaxProfiles(n int) BroadcastOption {
	return func(c *broadcastConfig) {
		if n > 0 {
			c.maxProfiles = n
		}
	}
}

func WithBroadcastLogger(l *slog.Logger) BroadcastOption {
	return func(c *broadcastConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewBroadcastDeliverer(bufferSize int, opts ...BroadcastOption) *BroadcastDeliverer {
	cfg := &broadcastConfig{maxProfiles: 10000, logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	d := &BroadcastDeliverer{
		profiles:   cache.NewLRUCache[string, *broadcast.MemoryBroadcaster[Toast]](cfg.maxProfiles),
		bufferSize: bufferSize,
		logger:     cfg.logger,
	}
	d.profiles.SetEvictCallback(func(profileID string, b *broadcast.MemoryBroadcaster[Toast]) {
		// Close waits on subscription watchers, which take their own locks only.
		if err := b.Close(); err != nil {
			d.logger.LogAttrs(context.Background(), slog.LevelError, "failed to close evicted broadcaster",
				logger.ProfileID(profileID),
				logger.Error(err),
			)
		}
	})
	return d
}

func (d *BroadcastDeliverer) Deliver(ctx context.Context, t Toast) error {
	return d.broadcaster(t.ProfileID).Broadcast(ctx, broadcast.Message[Toast]{Data: t})
}

// Subscribe streams the profile's toasts until ctx is done.
func (d *BroadcastDeliverer) Subscribe(ctx context.Context, profileID string) broadcast.Subscriber[Toast] {
	return d.broadcaster(profileID).Subscribe(ctx)
}

// Close ends every subscription.
func (d *BroadcastDeliverer) Close() error {
	d.profiles.Clear()
	return nil
}

func (d *BroadcastDeliverer) broadcaster(profileID string) *broadcast.MemoryBroadcaster[Toast] {
	return d.profiles.GetOrCreate(profileID, func() *broadcast.MemoryBroadcaster[Toast] {
		return broadcast.NewMemoryBroadcaster[Toast](d.bufferSize)
	})
}
