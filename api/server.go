package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"weatherdash/dashboard"
	"weatherdash/datasource"
	"weatherdash/forecast"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// Server exposes the dashboard over HTTP. Each request runs the same
// strictly sequential pipeline the CLI uses; the server itself adds no
// fetch logic.
type Server struct {
	svc       *dashboard.Service
	weather   datasource.WeatherSource
	forecasts datasource.ForecastSource
	server    *http.Server
}

// NewServer creates the API server on the given port.
func NewServer(svc *dashboard.Service, weather datasource.WeatherSource, forecasts datasource.ForecastSource, port string) *Server {
	s := &Server{
		svc:       svc,
		weather:   weather,
		forecasts: forecasts,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/api/health", s.handleHealthCheck)
	r.Get("/api/dashboard", s.handleDashboard)
	r.Get("/api/weather", s.handleWeather)
	r.Get("/api/forecast", s.handleForecast)

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("starting API server")
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), map[string]string{"error": err.Error()})
}

// errorStatus maps the fetcher error kinds onto HTTP statuses: bad input
// is the caller's fault, a remote API error keeps its upstream status,
// and transport failures surface as a bad gateway.
func errorStatus(err error) int {
	var inputErr *datasource.InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	var apiErr *datasource.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 600 {
			return apiErr.StatusCode
		}
		return http.StatusBadGateway
	}
	var netErr *datasource.NetworkError
	if errors.As(err, &netErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// handleDashboard runs the full pipeline and returns the resulting state.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	state := s.svc.Refresh(r.Context(), city)
	if state.InputError != "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": state.InputError})
		return
	}

	writeJSON(w, http.StatusOK, state)
}

// handleWeather returns the current-conditions snapshot only.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	snapshot, err := s.weather.CurrentWeather(r.Context(), city)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"city":      snapshot.City,
		"data":      snapshot,
		"timestamp": time.Now(),
	})
}

// handleForecast returns the daily buckets and outlook for a city.
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))

	days := forecast.DefaultMaxDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil && d > 0 {
			days = d
			if days > forecast.DefaultMaxDays {
				days = forecast.DefaultMaxDays // the 3-hour series covers 5 days at most
			}
		}
	}

	series, err := s.forecasts.Forecast(r.Context(), city)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"city":      series.City,
		"country":   series.Country,
		"buckets":   forecast.DailyBuckets(series.Entries, time.Local, days),
		"outlook":   forecast.Outlook(series.Entries, forecast.DefaultOutlookEntries),
		"timestamp": time.Now(),
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
