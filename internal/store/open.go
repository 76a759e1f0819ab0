package store

import (
	"context"
	"fmt"

	"github.com/lazyvibe/phonebook/internal/app"
)

// Open creates the backend selected by cfg. dir is used by the file backend.
func Open(ctx context.Context, cfg app.StorageConfig, dir string) (Store, error) {
	switch cfg.Backend {
	case app.BackendFile, "":
		return NewJSONStore(dir)
	case app.BackendRedis:
		return NewRedisStore(ctx, RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case app.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
