package datasource

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherdash/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// OpenWeatherMapClient fetches current conditions and forecasts from the
// OpenWeatherMap 2.5 API. It implements both WeatherSource and
// ForecastSource.
type OpenWeatherMapClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapClient creates a client authenticated with apiKey.
// timeout bounds every current-weather and forecast request.
func NewOpenWeatherMapClient(apiKey string, timeout time.Duration) *OpenWeatherMapClient {
	return &OpenWeatherMapClient{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the source name
func (c *OpenWeatherMapClient) Name() string {
	return "OpenWeatherMap"
}

// errorPayload is the body OpenWeatherMap sends with non-200 responses.
// cod arrives as a string there and as a number on success, so it is kept
// raw and only message is used.
type errorPayload struct {
	Cod     json.RawMessage `json:"cod"`
	Message string          `json:"message"`
}

// get issues one GET against path with the standard query shape and
// returns the response body. Transport failures map to NetworkError,
// non-200 statuses to APIError carrying the remote message.
func (c *OpenWeatherMapClient) get(ctx context.Context, path, city string) ([]byte, error) {
	if strings.TrimSpace(city) == "" {
		return nil, &InputError{Reason: "city name must not be empty"}
	}

	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var payload errorPayload
		_ = json.Unmarshal(body, &payload)
		log.Debug().
			Str("path", path).
			Str("city", city).
			Int("status", resp.StatusCode).
			Str("message", payload.Message).
			Msg("weather API error")
		return nil, &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}

	return body, nil
}

// CurrentWeather fetches the current conditions snapshot for a city.
func (c *OpenWeatherMapClient) CurrentWeather(ctx context.Context, city string) (models.Snapshot, error) {
	body, err := c.get(ctx, "/weather", city)
	if err != nil {
		return models.Snapshot{}, err
	}

	var response struct {
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Coord struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"coord"`
		Dt   int64  `json:"dt"`
		Name string `json:"name"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.Snapshot{}, errors.Wrap(err, "failed to parse weather response")
	}

	description := ""
	icon := ""
	if len(response.Weather) > 0 {
		description = response.Weather[0].Description
		icon = response.Weather[0].Icon
	}

	name := response.Name
	if name == "" {
		name = city
	}

	timestamp := time.Now()
	if response.Dt > 0 {
		timestamp = time.Unix(response.Dt, 0)
	}

	return models.Snapshot{
		City:        name,
		Timestamp:   timestamp,
		Temperature: response.Main.Temp,
		FeelsLike:   response.Main.FeelsLike,
		Humidity:    response.Main.Humidity,
		Pressure:    response.Main.Pressure,
		WindSpeed:   response.Wind.Speed,
		Description: description,
		Icon:        icon,
		Lat:         response.Coord.Lat,
		Lon:         response.Coord.Lon,
	}, nil
}

// Forecast fetches the 5-day/3-hour forecast series for a city.
func (c *OpenWeatherMapClient) Forecast(ctx context.Context, city string) (models.ForecastSeries, error) {
	body, err := c.get(ctx, "/forecast", city)
	if err != nil {
		return models.ForecastSeries{}, err
	}

	var response struct {
		City struct {
			Name    string `json:"name"`
			Country string `json:"country"`
		} `json:"city"`
		List []struct {
			Main struct {
				Temp      float64 `json:"temp"`
				FeelsLike float64 `json:"feels_like"`
				Humidity  float64 `json:"humidity"`
				Pressure  float64 `json:"pressure"`
			} `json:"main"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			Dt    int64  `json:"dt"`
			DtTxt string `json:"dt_txt"`
		} `json:"list"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastSeries{}, errors.Wrap(err, "failed to parse forecast response")
	}

	series := models.ForecastSeries{
		City:    response.City.Name,
		Country: response.City.Country,
		Entries: make([]models.ForecastEntry, 0, len(response.List)),
		Fetched: time.Now(),
	}
	if series.City == "" {
		series.City = city
	}

	for _, item := range response.List {
		description := ""
		icon := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
			icon = item.Weather[0].Icon
		}

		series.Entries = append(series.Entries, models.ForecastEntry{
			Timestamp:   time.Unix(item.Dt, 0),
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			Pressure:    item.Main.Pressure,
			Description: description,
			Icon:        icon,
		})
	}

	return series, nil
}

// Verify OpenWeatherMapClient implements both source interfaces
var (
	_ WeatherSource  = (*OpenWeatherMapClient)(nil)
	_ ForecastSource = (*OpenWeatherMapClient)(nil)
)
