package cache

import (
	"context"
	"sync"
	"time"

	"weatherdash/datasource"
	"weatherdash/models"

	"github.com/rs/zerolog/log"
)

// CachedWeatherSource wraps a WeatherSource and adds TTL caching keyed by
// city, so repeated dashboard queries for the same city within the TTL do
// not hit the remote API again.
type CachedWeatherSource struct {
	source         datasource.WeatherSource
	cache          map[string]snapshotEntry
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
}

// snapshotEntry represents a cached snapshot with its fetch time
type snapshotEntry struct {
	Data      models.Snapshot
	Timestamp time.Time
}

// NewCachedWeatherSource creates a new cached wrapper around a weather source
func NewCachedWeatherSource(source datasource.WeatherSource, cacheDuration time.Duration) *CachedWeatherSource {
	return &CachedWeatherSource{
		source:        source,
		cache:         make(map[string]snapshotEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying source with [Cached] suffix
func (c *CachedWeatherSource) Name() string {
	return c.source.Name() + " [Cached]"
}

// CurrentWeather fetches current conditions, using the cache when available
func (c *CachedWeatherSource) CurrentWeather(ctx context.Context, city string) (models.Snapshot, error) {
	c.mutex.RLock()
	entry, found := c.cache[city]
	c.mutex.RUnlock()

	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		c.mutex.Lock()
		c.cacheHitCount++
		c.mutex.Unlock()

		log.Debug().
			Str("city", city).
			Str("source", c.source.Name()).
			Dur("age", time.Since(entry.Timestamp).Round(time.Second)).
			Msg("weather cache hit")

		return entry.Data, nil
	}

	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	log.Debug().
		Str("city", city).
		Str("source", c.source.Name()).
		Msg("weather cache miss, fetching fresh data")

	data, err := c.source.CurrentWeather(ctx, city)
	if err != nil {
		return models.Snapshot{}, err
	}

	c.mutex.Lock()
	c.cache[city] = snapshotEntry{
		Data:      data,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return data, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedWeatherSource) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

// Ensure CachedWeatherSource implements the WeatherSource interface
var _ datasource.WeatherSource = (*CachedWeatherSource)(nil)
