// dashquery runs one dashboard query from the command line and renders
// the result as text: current conditions, the five-day summary, the
// hourly outlook table, and the advisory.
package main

import (
	"context"
	"os"
	"time"

	"weatherdash/advisory"
	"weatherdash/config"
	"weatherdash/dashboard"
	"weatherdash/datasource"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if cfg.WeatherAPIKey == "" {
		log.Fatal().Msg("no weather API key provided (set OPENWEATHER_API_KEY)")
	}

	city := cfg.DefaultCity
	if len(os.Args) > 1 {
		city = os.Args[1]
	}

	owm := datasource.NewOpenWeatherMapClient(cfg.WeatherAPIKey, cfg.RequestTimeout)
	icons := datasource.NewIconFetcher(cfg.RequestTimeout)
	advisor := advisory.NewGenerator(advisory.NewGeminiGenerator(cfg.GeminiAPIKey), cfg.AdvisoryModels)

	svc := dashboard.NewService(owm, owm, icons, advisor, time.Local)
	state := svc.Refresh(context.Background(), city)

	renderer := &dashboard.TextRenderer{Out: os.Stdout}
	if err := renderer.Render(state); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
	if state.InputError != "" {
		os.Exit(2)
	}
}
