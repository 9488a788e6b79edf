package repositories

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sairaj2832-star/DISHANVESHI/internal/infra/googlemaps"
)

// GeocodeCache remembers destination coordinates so repeated itinerary
// requests for the same place skip the Geocoding API. Cache failures are
// reported as misses, never as errors.
type GeocodeCache interface {
	Get(ctx context.Context, place string) (googlemaps.LatLng, bool)
	Set(ctx context.Context, place string, coords googlemaps.LatLng)
}

type redisGeocodeCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisGeocodeCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) GeocodeCache {
	return &redisGeocodeCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func geocodeKey(place string) string {
	return "geocode:" + strings.ToLower(strings.TrimSpace(place))
}

func (c *redisGeocodeCache) Get(ctx context.Context, place string) (googlemaps.LatLng, bool) {
	raw, err := c.rdb.Get(ctx, geocodeKey(place)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("geocode cache read failed", zap.Error(err))
		}
		return googlemaps.LatLng{}, false
	}

	var coords googlemaps.LatLng
	if err := json.Unmarshal(raw, &coords); err != nil {
		return googlemaps.LatLng{}, false
	}
	return coords, true
}

func (c *redisGeocodeCache) Set(ctx context.Context, place string, coords googlemaps.LatLng) {
	raw, err := json.Marshal(coords)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, geocodeKey(place), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("geocode cache write failed", zap.Error(err))
	}
}

type noopGeocodeCache struct{}

// NewNoopGeocodeCache is used when redis is not configured.
func NewNoopGeocodeCache() GeocodeCache {
	return noopGeocodeCache{}
}

func (noopGeocodeCache) Get(ctx context.Context, place string) (googlemaps.LatLng, bool) {
	return googlemaps.LatLng{}, false
}

func (noopGeocodeCache) Set(ctx context.Context, place string, coords googlemaps.LatLng) {}
