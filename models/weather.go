package models

import (
	"time"
)

// Snapshot represents a single point-in-time weather reading for one city.
// It is immutable once fetched and replaced wholesale on each new query.
type Snapshot struct {
	City        string    `json:"city"`
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"` // in Celsius
	FeelsLike   float64   `json:"feelsLike"`   // in Celsius
	Humidity    float64   `json:"humidity"`    // percentage
	Pressure    float64   `json:"pressure"`    // in hPa
	WindSpeed   float64   `json:"windSpeed"`   // in m/s
	Description string    `json:"description"` // short text description
	Icon        string    `json:"icon"`        // icon code
	Lat         float64   `json:"lat"`
	Lon         float64   `json:"lon"`
}
