package cache

import (
	"context"
	"sync"
	"time"

	"weatherdash/datasource"
	"weatherdash/models"

	"github.com/rs/zerolog/log"
)

// CachedForecastSource wraps a ForecastSource and adds TTL caching keyed
// by city.
type CachedForecastSource struct {
	source         datasource.ForecastSource
	cache          map[string]seriesEntry
	mutex          sync.RWMutex
	cacheDuration  time.Duration
	cacheHitCount  int
	cacheMissCount int
}

// seriesEntry represents a cached forecast series with its fetch time
type seriesEntry struct {
	Data      models.ForecastSeries
	Timestamp time.Time
}

// NewCachedForecastSource creates a new cached wrapper around a forecast source
func NewCachedForecastSource(source datasource.ForecastSource, cacheDuration time.Duration) *CachedForecastSource {
	return &CachedForecastSource{
		source:        source,
		cache:         make(map[string]seriesEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying source with [Cached] suffix
func (c *CachedForecastSource) Name() string {
	return c.source.Name() + " [Cached]"
}

// Forecast fetches the forecast series, using the cache when available
func (c *CachedForecastSource) Forecast(ctx context.Context, city string) (models.ForecastSeries, error) {
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
			Msg("forecast cache hit")

		return entry.Data, nil
	}

	c.mutex.Lock()
	c.cacheMissCount++
	c.mutex.Unlock()

	log.Debug().
		Str("city", city).
		Str("source", c.source.Name()).
		Msg("forecast cache miss, fetching fresh data")

	series, err := c.source.Forecast(ctx, city)
	if err != nil {
		return models.ForecastSeries{}, err
	}

	c.mutex.Lock()
	c.cache[city] = seriesEntry{
		Data:      series,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return series, nil
}

// CacheStats returns statistics about cache hits and misses
func (c *CachedForecastSource) CacheStats() (hits, misses int) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.cacheHitCount, c.cacheMissCount
}

// Ensure CachedForecastSource implements ForecastSource
var _ datasource.ForecastSource = (*CachedForecastSource)(nil)
