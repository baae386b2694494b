package config

import (
	"os"
	"strings"
	"time"
)

// DefaultAdvisoryModels is the ordered fallback chain tried by the
// advisory generator. Lite/flash variants come first since they have the
// best free-tier availability.
var DefaultAdvisoryModels = []string{
	"gemini-2.0-flash-lite",
	"gemini-flash-latest",
	"gemini-2.0-flash",
	"gemini-2.0-flash-exp",
}

type Config struct {
	Port           string
	WeatherAPIKey  string
	GeminiAPIKey   string
	RequestTimeout time.Duration
	AdvisoryModels []string
	CacheTTL       time.Duration
	DefaultCity    string
}

// Load reads the configuration from the process environment. The two API
// keys are the only secrets; everything else has a working default.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	weatherKey := os.Getenv("OPENWEATHER_API_KEY")
	if weatherKey == "" {
		weatherKey = os.Getenv("WEATHER_API_KEY")
	}

	geminiKey := os.Getenv("GEMINI_API_KEY")
	if geminiKey == "" {
		geminiKey = os.Getenv("GOOGLE_API_KEY")
	}

	timeout := 5 * time.Second
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	ttl := 10 * time.Minute
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			ttl = d
		}
	}

	models := DefaultAdvisoryModels
	if v := os.Getenv("ADVISORY_MODELS"); v != "" {
		models = nil
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}
	}

	return Config{
		Port:           port,
		WeatherAPIKey:  weatherKey,
		GeminiAPIKey:   geminiKey,
		RequestTimeout: timeout,
		AdvisoryModels: models,
		CacheTTL:       ttl,
		DefaultCity:    os.Getenv("DEFAULT_CITY"),
	}
}
