// Package forecast derives display-ready views from a raw forecast
// series: daily buckets with a representative midday entry, and a flat
// chronological outlook for tabular display. Everything here is pure;
// identical input yields identical output.
package forecast

import (
	"time"

	"weatherdash/models"
)

// DefaultMaxDays is how many daily buckets the dashboard shows.
const DefaultMaxDays = 5

// DefaultOutlookEntries is how many 3-hour entries the hourly table
// shows. At 3-hour resolution this spans roughly three days, so it is
// exposed as an "outlook", not a 24-hour window.
const DefaultOutlookEntries = 24

// DailyBuckets groups entries by calendar date in loc and returns the
// first maxDays distinct dates in chronological order. The representative
// of a bucket is the entry at exactly 12:00 in loc when one exists,
// otherwise the temporal-median entry of that date.
func DailyBuckets(entries []models.ForecastEntry, loc *time.Location, maxDays int) []models.DailyBucket {
	if loc == nil {
		loc = time.UTC
	}
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}

	byDate := make(map[string][]models.ForecastEntry)
	var order []string

	for _, entry := range entries {
		date := entry.Timestamp.In(loc).Format("2006-01-02")
		if _, seen := byDate[date]; !seen {
			order = append(order, date)
		}
		byDate[date] = append(byDate[date], entry)
	}

	if len(order) > maxDays {
		order = order[:maxDays]
	}

	buckets := make([]models.DailyBucket, 0, len(order))
	for _, date := range order {
		dayEntries := byDate[date]
		buckets = append(buckets, models.DailyBucket{
			Date:           date,
			Entries:        dayEntries,
			Representative: representative(dayEntries, loc),
		})
	}

	return buckets
}

// representative picks the exact-noon entry when present, else the middle
// entry of the day.
func representative(dayEntries []models.ForecastEntry, loc *time.Location) models.ForecastEntry {
	for _, entry := range dayEntries {
		t := entry.Timestamp.In(loc)
		if t.Hour() == 12 && t.Minute() == 0 {
			return entry
		}
	}
	return dayEntries[len(dayEntries)/2]
}

// Outlook returns the first n entries in their original chronological
// order, or all entries when fewer are available.
func Outlook(entries []models.ForecastEntry, n int) []models.ForecastEntry {
	if n <= 0 {
		n = DefaultOutlookEntries
	}
	if n > len(entries) {
		n = len(entries)
	}
	return entries[:n]
}
