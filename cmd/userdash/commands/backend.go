package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/userdash/pkg/config"
	"github.com/dmitrymomot/userdash/pkg/draft"
	"github.com/dmitrymomot/userdash/pkg/httpserver"
	"github.com/dmitrymomot/userdash/pkg/logger"
	"github.com/dmitrymomot/userdash/pkg/mongo"
	"github.com/dmitrymomot/userdash/pkg/pg"
	"github.com/dmitrymomot/userdash/pkg/redis"
)

// draftBackend is an opened storage backend plus its readiness probe and
// the function releasing its connections.
type draftBackend struct {
	backend draft.Backend
	checks  []httpserver.Check
	close   func()
}

func openDraftBackend(ctx context.Context, name, dir string, log *slog.Logger) (*draftBackend, error) {
	switch name {
	case "", "memory":
		return &draftBackend{backend: draft.NewMemoryBackend(), close: func() {}}, nil

	case "file":
		if dir == "" {
			var err error
			if dir, err = draft.DefaultDir(); err != nil {
				return nil, err
			}
		}
		fb, err := draft.NewFileBackend(dir)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "file draft backend ready", slog.String("dir", dir))
		return &draftBackend{backend: fb, close: func() {}}, nil

	case "redis":
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &draftBackend{
			backend: redis.NewStorage(client, cfg.KeyPrefix),
			checks:  []httpserver.Check{{Name: "redis", Fn: redis.Healthcheck(client)}},
			close: func() {
				if err := client.Close(); err != nil {
					log.Error("failed to close redis client", logger.Error(err))
				}
			},
		}, nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := mongo.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.Database).Collection(cfg.Collection)
		return &draftBackend{
			backend: mongo.NewStorage(coll),
			checks:  []httpserver.Check{{Name: "mongo", Fn: mongo.Healthcheck(client)}},
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error("failed to disconnect mongo client", logger.Error(err))
				}
			},
		}, nil

	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg, pg.Migrations, log); err != nil {
			pool.Close()
			return nil, err
		}
		return &draftBackend{
			backend: pg.NewStorage(pool),
			checks:  []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}},
			close:   pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown draft backend %q", name)
}
