package wizard

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/userdash/pkg/cache"
	"github.com/dmitrymomot/userdash/pkg/logger"
)

// DefaultRegistryCapacity bounds the number of mounted wizards.
const DefaultRegistryCapacity = 1024

// StoreFactory returns the draft store for a profile.
type StoreFactory func(profileID string) DraftStore

// Registry owns the mounted wizards, one per profile.
type Registry struct {
	wizards  *cache.LRUCache[string, *Wizard]
	newStore StoreFactory
	logger   *slog.Logger
}

type RegistryOption func(*registryConfig)

type registryConfig struct {
	capacity int
	newStore StoreFactory
	logger   *slog.Logger
}

func WithCapacity(n int) RegistryOption {
	return func(c *registryConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func WithStoreFactory(f StoreFactory) RegistryOption {
	return func(c *registryConfig) {
		if f != nil {
			c.newStore = f
		}
	}
}

func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(c *registryConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewRegistry(opts ...RegistryOption) *Registry {
	cfg := &registryConfig{
		capacity: DefaultRegistryCapacity,
		newStore: func(string) DraftStore { return nopStore{} },
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := &Registry{
		wizards:  cache.NewLRUCache[string, *Wizard](cfg.capacity),
		newStore: cfg.newStore,
		logger:   cfg.logger,
	}
	r.wizards.SetEvictCallback(func(profileID string, _ *Wizard) {
		r.logger.Debug("wizard unmounted",
			logger.Component("wizard_registry"),
			logger.ProfileID(profileID),
		)
	})
	return r
}

// Mount returns the profile's wizard, creating and rehydrating it on first use.
func (r *Registry) Mount(ctx context.Context, profileID string) *Wizard {
	return r.wizards.GetOrCreate(profileID, func() *Wizard {
		return New(ctx,
			WithDraftStore(r.newStore(profileID)),
			WithLogger(r.logger.With(logger.ProfileID(profileID))),
		)
	})
}

// Unmount drops the profile's wizard. Its draft stays in the store.
func (r *Registry) Unmount(profileID string) {
	r.wizards.Remove(profileID)
}

// Mounted reports the number of live wizards.
func (r *Registry) Mounted() int {
	return r.wizards.Len()
}
