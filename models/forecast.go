package models

import (
	"time"
)

// ForecastEntry is a single time-stamped prediction record within a
// multi-day forecast series. Entries are read-only after fetch.
type ForecastEntry struct {
	Timestamp   time.Time `json:"timestamp"`   // time this entry is for
	Temperature float64   `json:"temperature"` // in Celsius
	FeelsLike   float64   `json:"feelsLike"`   // in Celsius
	Humidity    float64   `json:"humidity"`    // percentage
	WindSpeed   float64   `json:"windSpeed"`   // in m/s
	Pressure    float64   `json:"pressure"`    // in hPa
	Description string    `json:"description"` // short text description
	Icon        string    `json:"icon"`        // icon code
}

// ForecastSeries is the ordered multi-day forecast for one city, in
// 3-hour resolution as delivered by the remote endpoint.
type ForecastSeries struct {
	City    string          `json:"city"`
	Country string          `json:"country"`
	Entries []ForecastEntry `json:"entries"`
	Fetched time.Time       `json:"fetched"` // when this series was fetched
}

// DailyBucket groups the forecast entries that share a calendar date,
// together with the representative entry chosen for summary display.
// Buckets are derived, recomputed on every query, and discarded after
// rendering.
type DailyBucket struct {
	Date           string          `json:"date"` // YYYY-MM-DD
	Entries        []ForecastEntry `json:"entries"`
	Representative ForecastEntry   `json:"representative"`
}
