// Package dashboard orchestrates one weather query end to end: validate
// the city, fetch current conditions, fetch the forecast, aggregate it,
// fetch the condition icon, and generate the advisory. The pipeline is
// strictly sequential; no step runs concurrently with another and the
// advisory only runs after both fetches succeeded.
package dashboard

import (
	"context"
	"strings"
	"time"

	"weatherdash/datasource"
	"weatherdash/forecast"
	"weatherdash/models"

	"github.com/rs/zerolog/log"
)

// IconSource fetches condition icon assets.
type IconSource interface {
	FetchIcon(ctx context.Context, code string, scale int) (models.Icon, error)
}

// Advisor generates the natural-language advisory from fetched data.
type Advisor interface {
	Advise(ctx context.Context, snapshot models.Snapshot, series models.ForecastSeries) models.Advisory
}

// Service owns the refresh pipeline. The icon source and advisor are
// optional; without them the corresponding sections simply stay empty.
type Service struct {
	weather   datasource.WeatherSource
	forecasts datasource.ForecastSource
	icons     IconSource
	advisor   Advisor
	location  *time.Location
	iconScale int
}

// NewService wires the pipeline. location decides which zone counts as
// "local" for the daily noon selection; nil means UTC.
func NewService(weather datasource.WeatherSource, forecasts datasource.ForecastSource, icons IconSource, advisor Advisor, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		weather:   weather,
		forecasts: forecasts,
		icons:     icons,
		advisor:   advisor,
		location:  location,
		iconScale: 4,
	}
}

// Refresh runs one full query for city and returns the resulting state.
// Every failure is recorded in the state rather than returned; the
// service stays usable for the next query regardless of what failed.
func (s *Service) Refresh(ctx context.Context, city string) State {
	state := State{City: strings.TrimSpace(city), RefreshedAt: time.Now()}

	if state.City == "" {
		state.InputError = "please enter a city name"
		return state
	}

	snapshot, err := s.weather.CurrentWeather(ctx, state.City)
	if err != nil {
		log.Error().Str("city", state.City).Err(err).Msg("current weather fetch failed")
		state.WeatherError = err.Error()
	} else {
		state.Snapshot = &snapshot
		state.City = snapshot.City
	}

	series, err := s.forecasts.Forecast(ctx, state.City)
	if err != nil {
		log.Error().Str("city", state.City).Err(err).Msg("forecast fetch failed")
		state.ForecastError = err.Error()
	} else {
		state.Series = &series
		state.Buckets = forecast.DailyBuckets(series.Entries, s.location, forecast.DefaultMaxDays)
		state.Outlook = forecast.Outlook(series.Entries, forecast.DefaultOutlookEntries)
	}

	if state.Snapshot != nil && state.Snapshot.Icon != "" && s.icons != nil {
		icon, err := s.icons.FetchIcon(ctx, state.Snapshot.Icon, s.iconScale)
		if err != nil {
			log.Warn().Str("icon", state.Snapshot.Icon).Err(err).Msg("icon fetch failed, using placeholder")
			icon = datasource.PlaceholderIcon(state.Snapshot.Icon)
		}
		state.Icon = &icon
	}

	if state.OK() && s.advisor != nil {
		adv := s.advisor.Advise(ctx, *state.Snapshot, *state.Series)
		state.Advisory = &adv
	}

	return state
}
