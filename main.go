package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weatherdash/advisory"
	"weatherdash/api"
	"weatherdash/cache"
	"weatherdash/config"
	"weatherdash/dashboard"
	"weatherdash/datasource"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	cfg := config.Load()
	if cfg.WeatherAPIKey == "" {
		log.Fatal().Msg("no weather API key provided (set OPENWEATHER_API_KEY)")
	}

	owm := datasource.NewOpenWeatherMapClient(cfg.WeatherAPIKey, cfg.RequestTimeout)

	var weatherSrc datasource.WeatherSource = owm
	var forecastSrc datasource.ForecastSource = owm
	if cfg.CacheTTL > 0 {
		weatherSrc = cache.NewCachedWeatherSource(owm, cfg.CacheTTL)
		forecastSrc = cache.NewCachedForecastSource(owm, cfg.CacheTTL)
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("caching weather sources")
	}

	icons := datasource.NewIconFetcher(cfg.RequestTimeout)
	advisor := advisory.NewGenerator(advisory.NewGeminiGenerator(cfg.GeminiAPIKey), cfg.AdvisoryModels)

	svc := dashboard.NewService(weatherSrc, forecastSrc, icons, advisor, time.Local)
	server := api.NewServer(svc, weatherSrc, forecastSrc, cfg.Port)

	go func() {
		if err := server.Start(); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdownChan
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("shutdown complete")
}
