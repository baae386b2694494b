package dashboard

import (
	"time"

	"weatherdash/models"
)

// State is the complete result set of one dashboard query. It is built
// fresh by every refresh and handed to renderers as a value; nothing in
// it is shared or mutated afterwards. Failed sections stay nil with the
// error message recorded alongside, so the presentation layer can report
// each failure where it occurred.
type State struct {
	City          string                 `json:"city"`
	Snapshot      *models.Snapshot       `json:"snapshot,omitempty"`
	Series        *models.ForecastSeries `json:"series,omitempty"`
	Buckets       []models.DailyBucket   `json:"buckets,omitempty"`
	Outlook       []models.ForecastEntry `json:"outlook,omitempty"`
	Advisory      *models.Advisory       `json:"advisory,omitempty"`
	Icon          *models.Icon           `json:"icon,omitempty"`
	InputError    string                 `json:"inputError,omitempty"`
	WeatherError  string                 `json:"weatherError,omitempty"`
	ForecastError string                 `json:"forecastError,omitempty"`
	RefreshedAt   time.Time              `json:"refreshedAt"`
}

// OK reports whether both fetches succeeded.
func (s State) OK() bool {
	return s.Snapshot != nil && s.Series != nil
}
