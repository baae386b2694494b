package dashboard

import (
	"context"
	"testing"
	"time"

	"weatherdash/datasource"
	"weatherdash/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWeather struct {
	snapshot models.Snapshot
	err      error
	calls    int
}

func (s *stubWeather) CurrentWeather(context.Context, string) (models.Snapshot, error) {
	s.calls++
	return s.snapshot, s.err
}

func (s *stubWeather) Name() string { return "stub" }

type stubForecast struct {
	series models.ForecastSeries
	err    error
	calls  int
}

func (s *stubForecast) Forecast(context.Context, string) (models.ForecastSeries, error) {
	s.calls++
	return s.series, s.err
}

func (s *stubForecast) Name() string { return "stub" }

type stubIcons struct {
	icon  models.Icon
	err   error
	calls int
}

func (s *stubIcons) FetchIcon(context.Context, string, int) (models.Icon, error) {
	s.calls++
	return s.icon, s.err
}

type stubAdvisor struct {
	advisory models.Advisory
	calls    int
}

func (s *stubAdvisor) Advise(context.Context, models.Snapshot, models.ForecastSeries) models.Advisory {
	s.calls++
	return s.advisory
}

func goodSnapshot() models.Snapshot {
	return models.Snapshot{
		City:        "Bangalore",
		Temperature: 27.4,
		Description: "scattered clouds",
		Icon:        "03d",
	}
}

func goodSeries() models.ForecastSeries {
	start := time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC)
	series := models.ForecastSeries{City: "Bangalore", Country: "IN"}
	for i := 0; i < 40; i++ {
		series.Entries = append(series.Entries, models.ForecastEntry{
			Timestamp:   start.Add(time.Duration(i) * 3 * time.Hour),
			Temperature: float64(20 + i%5),
		})
	}
	return series
}

func TestRefreshEmptyCitySkipsFetch(t *testing.T) {
	weather := &stubWeather{}
	forecasts := &stubForecast{}
	svc := NewService(weather, forecasts, nil, nil, time.UTC)

	state := svc.Refresh(context.Background(), "   ")

	assert.NotEmpty(t, state.InputError)
	assert.Equal(t, 0, weather.calls)
	assert.Equal(t, 0, forecasts.calls)
	assert.Nil(t, state.Snapshot)
	assert.Nil(t, state.Series)
}

func TestRefreshFullPipeline(t *testing.T) {
	weather := &stubWeather{snapshot: goodSnapshot()}
	forecasts := &stubForecast{series: goodSeries()}
	icons := &stubIcons{icon: models.Icon{Code: "03d", Data: []byte{1}}}
	advisor := &stubAdvisor{advisory: models.Advisory{Text: "stay hydrated", Model: "model-a"}}

	svc := NewService(weather, forecasts, icons, advisor, time.UTC)
	state := svc.Refresh(context.Background(), "Bangalore")

	require.True(t, state.OK())
	assert.Equal(t, "Bangalore", state.City)
	assert.Len(t, state.Buckets, 5)
	assert.Len(t, state.Outlook, 24)
	require.NotNil(t, state.Advisory)
	assert.Equal(t, "stay hydrated", state.Advisory.Text)
	require.NotNil(t, state.Icon)
	assert.False(t, state.Icon.Placeholder)
	assert.Equal(t, 1, advisor.calls)
	assert.Equal(t, 1, icons.calls)
}

func TestRefreshWeatherFailureSkipsAdvisory(t *testing.T) {
	weather := &stubWeather{err: &datasource.NetworkError{Err: errors.New("connection refused")}}
	forecasts := &stubForecast{series: goodSeries()}
	advisor := &stubAdvisor{}

	svc := NewService(weather, forecasts, nil, advisor, time.UTC)
	state := svc.Refresh(context.Background(), "Bangalore")

	assert.NotEmpty(t, state.WeatherError)
	assert.Nil(t, state.Snapshot)
	// forecast is still fetched and aggregated
	assert.Equal(t, 1, forecasts.calls)
	assert.NotNil(t, state.Series)
	assert.NotEmpty(t, state.Buckets)
	// advisory requires both fetches to have succeeded
	assert.Equal(t, 0, advisor.calls)
	assert.Nil(t, state.Advisory)
}

func TestRefreshForecastFailureSkipsAdvisory(t *testing.T) {
	weather := &stubWeather{snapshot: goodSnapshot()}
	forecasts := &stubForecast{err: &datasource.APIError{StatusCode: 404, Message: "city not found"}}
	advisor := &stubAdvisor{}

	svc := NewService(weather, forecasts, nil, advisor, time.UTC)
	state := svc.Refresh(context.Background(), "Bangalore")

	assert.NotEmpty(t, state.ForecastError)
	assert.NotNil(t, state.Snapshot)
	assert.Equal(t, 0, advisor.calls)
}

func TestRefreshIconFailureUsesPlaceholder(t *testing.T) {
	weather := &stubWeather{snapshot: goodSnapshot()}
	forecasts := &stubForecast{series: goodSeries()}
	icons := &stubIcons{err: &datasource.NetworkError{Err: errors.New("timeout")}}

	svc := NewService(weather, forecasts, icons, nil, time.UTC)
	state := svc.Refresh(context.Background(), "Bangalore")

	require.NotNil(t, state.Icon)
	assert.True(t, state.Icon.Placeholder)
	assert.Equal(t, "03d", state.Icon.Code)
	// an icon failure never fails the query
	assert.Empty(t, state.WeatherError)
}

func TestRefreshStateReplacedWholesale(t *testing.T) {
	weather := &stubWeather{snapshot: goodSnapshot()}
	forecasts := &stubForecast{series: goodSeries()}

	svc := NewService(weather, forecasts, nil, nil, time.UTC)
	first := svc.Refresh(context.Background(), "Bangalore")

	weather.err = &datasource.APIError{StatusCode: 404, Message: "city not found"}
	forecasts.err = &datasource.APIError{StatusCode: 404, Message: "city not found"}
	second := svc.Refresh(context.Background(), "Atlantis")

	// nothing carries over from the previous query
	assert.Nil(t, second.Snapshot)
	assert.Nil(t, second.Series)
	assert.Empty(t, second.Buckets)
	assert.NotEqual(t, first.City, second.City)
}
