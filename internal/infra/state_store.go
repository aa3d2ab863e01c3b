package infra

import (
	"fmt"

	"github.com/josebazania/restaurantepos/internal/config"
	"github.com/josebazania/restaurantepos/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Backends are the connections opened for the configured state driver. Redis
// is also opened, when REDIS_URL is set, for the job queues.
type Backends struct {
	Store repository.SlotStore
	Redis *redis.Client

	closers []func() error
}

// Close releases every connection opened by OpenBackends.
func (b *Backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			log.Warn().Err(err).Msg("backend close")
		}
	}
}

// OpenBackends connects the durable slot store selected by STATE_DRIVER
// (memory, redis or postgres).
func OpenBackends(cfg *config.Config) (*Backends, error) {
	b := &Backends{}

	if cfg.RedisURL != "" {
		rdb, err := NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		b.Redis = rdb
		b.closers = append(b.closers, rdb.Close)
	}

	switch cfg.StateDriver {
	case "", "memory":
		b.Store = repository.NewMemorySlotStore()
	case "redis":
		if b.Redis == nil {
			return nil, fmt.Errorf("STATE_DRIVER=redis requiere REDIS_URL")
		}
		b.Store = repository.NewRedisSlotStore(b.Redis)
	case "postgres":
		db, err := NewDatabase(cfg.DatabaseURL)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			b.Close()
			return nil, err
		}
		b.closers = append(b.closers, sqlDB.Close)
		b.Store = repository.NewGormSlotStore(db)
	default:
		b.Close()
		return nil, fmt.Errorf("STATE_DRIVER desconocido: %q", cfg.StateDriver)
	}
	return b, nil
}
