package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "OPENWEATHER_API_KEY", "WEATHER_API_KEY",
		"GEMINI_API_KEY", "GOOGLE_API_KEY",
		"REQUEST_TIMEOUT", "ADVISORY_MODELS", "CACHE_TTL", "DEFAULT_CITY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, DefaultAdvisoryModels, cfg.AdvisoryModels)
	assert.Empty(t, cfg.WeatherAPIKey)
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestLoadKeyFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEATHER_API_KEY", "owm-secret")
	t.Setenv("GOOGLE_API_KEY", "gemini-secret")

	cfg := Load()
	assert.Equal(t, "owm-secret", cfg.WeatherAPIKey)
	assert.Equal(t, "gemini-secret", cfg.GeminiAPIKey)

	// primary names win over fallbacks
	t.Setenv("OPENWEATHER_API_KEY", "owm-primary")
	t.Setenv("GEMINI_API_KEY", "gemini-primary")
	cfg = Load()
	assert.Equal(t, "owm-primary", cfg.WeatherAPIKey)
	assert.Equal(t, "gemini-primary", cfg.GeminiAPIKey)
}

func TestLoadParsesOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("CACHE_TTL", "0s")
	t.Setenv("ADVISORY_MODELS", "model-a, model-b ,,model-c")
	t.Setenv("DEFAULT_CITY", "Bangalore")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, []string{"model-a", "model-b", "model-c"}, cfg.AdvisoryModels)
	assert.Equal(t, "Bangalore", cfg.DefaultCity)
}

func TestLoadIgnoresInvalidDurations(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("CACHE_TTL", "-5m")

	cfg := Load()
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
}
