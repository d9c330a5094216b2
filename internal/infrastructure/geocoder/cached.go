package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"home-visit-planner/internal/domain/entity"
	"home-visit-planner/internal/domain/gateway"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "geocode:"

// noResultMarker caches "no match" outcomes so they are not retried on the
// provider until the TTL expires.
const noResultMarker = "none"

// CachedGeocoder wraps another Geocoder with a redis lookaside cache.
// Cache failures degrade to the inner geocoder instead of failing the lookup.
type CachedGeocoder struct {
	inner  gateway.Geocoder
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewCachedGeocoder(inner gateway.Geocoder, client *redis.Client, log *logrus.Logger, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		inner:  inner,
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

type cachedCoords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c *CachedGeocoder) Lookup(ctx context.Context, address string) (entity.Coordinates, error) {
	key := cacheKeyPrefix + address

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == noResultMarker {
			return entity.Coordinates{}, gateway.ErrNoResult
		}
		var cc cachedCoords
		if err := json.Unmarshal([]byte(cached), &cc); err == nil {
			return entity.Coordinates{Lat: cc.Lat, Lon: cc.Lon}, nil
		}
		c.log.Warnf("Invalid cached geocode entry for %q, refetching", address)
	case !errors.Is(err, redis.Nil):
		c.log.Warnf("Geocode cache read failed: %+v", err)
	}

	coords, err := c.inner.Lookup(ctx, address)
	if err != nil {
		if errors.Is(err, gateway.ErrNoResult) {
			c.store(ctx, key, noResultMarker)
		}
		return entity.Coordinates{}, err
	}

	payload, _ := json.Marshal(cachedCoords{Lat: coords.Lat, Lon: coords.Lon})
	c.store(ctx, key, string(payload))

	return coords, nil
}

func (c *CachedGeocoder) store(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.Warnf("Geocode cache write failed: %+v", err)
	}
}
