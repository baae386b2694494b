package datasource

import (
	"context"

	"weatherdash/models"
)

// WeatherSource is an interface for services that can fetch current
// weather conditions for a city.
type WeatherSource interface {
	// CurrentWeather fetches current conditions for a city
	CurrentWeather(ctx context.Context, city string) (models.Snapshot, error)

	// Name returns the source's name
	Name() string
}

// ForecastSource is an interface for services that can fetch a multi-day
// forecast series for a city.
type ForecastSource interface {
	// Forecast fetches the forecast series for a city
	Forecast(ctx context.Context, city string) (models.ForecastSeries, error)

	// Name returns the source's name
	Name() string
}
