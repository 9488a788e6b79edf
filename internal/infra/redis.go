package infra

import (
	"github.com/redis/go-redis/v9"

	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
)

// InitRedis returns nil when no address is configured; callers fall back to
// cache-less operation.
func InitRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}
