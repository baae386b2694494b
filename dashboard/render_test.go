package dashboard

import (
	"bytes"
	"testing"
	"time"

	"weatherdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRendererFullState(t *testing.T) {
	snap := goodSnapshot()
	series := goodSeries()
	state := State{
		City:     "Bangalore",
		Snapshot: &snap,
		Series:   &series,
		Buckets: []models.DailyBucket{{
			Date:           "2023-11-15",
			Entries:        series.Entries[:8],
			Representative: series.Entries[4],
		}},
		Outlook:     series.Entries[:3],
		Advisory:    &models.Advisory{Text: "stay hydrated", Model: "model-a"},
		RefreshedAt: time.Date(2023, 11, 15, 10, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{Out: &buf}).Render(state))
	out := buf.String()

	assert.Contains(t, out, "Weather for Bangalore")
	assert.Contains(t, out, "scattered clouds")
	assert.Contains(t, out, "Daily forecast:")
	assert.Contains(t, out, "2023-11-15")
	assert.Contains(t, out, "Outlook:")
	assert.Contains(t, out, "Advisory (model-a):")
	assert.Contains(t, out, "stay hydrated")
}

func TestTextRendererInputError(t *testing.T) {
	var buf bytes.Buffer
	state := State{InputError: "please enter a city name"}
	require.NoError(t, (&TextRenderer{Out: &buf}).Render(state))
	assert.Contains(t, buf.String(), "Input error: please enter a city name")
}

func TestTextRendererPartialFailure(t *testing.T) {
	snap := goodSnapshot()
	state := State{
		City:          "Bangalore",
		Snapshot:      &snap,
		ForecastError: "API returned status 503",
	}

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{Out: &buf}).Render(state))
	out := buf.String()

	assert.Contains(t, out, "Forecast unavailable: API returned status 503")
	assert.NotContains(t, out, "Advisory")
}
