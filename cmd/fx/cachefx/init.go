package cachefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sairaj2832-star/DISHANVESHI/internal/config"
	"github.com/sairaj2832-star/DISHANVESHI/internal/infra"
	"github.com/sairaj2832-star/DISHANVESHI/internal/repositories"
)

var Module = fx.Provide(provideGeocodeCache)

func provideGeocodeCache(cfg *config.Config, logger *zap.Logger) repositories.GeocodeCache {
	rdb := infra.InitRedis(cfg)
	if rdb == nil {
		logger.Info("redis not configured, geocode caching disabled")
		return repositories.NewNoopGeocodeCache()
	}
	return repositories.NewRedisGeocodeCache(rdb, cfg.Places.GeocodeCacheTTL, logger)
}
