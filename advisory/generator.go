// Package advisory turns a fetched weather snapshot and forecast series
// into natural-language guidance by calling a generative-text API through
// an ordered list of fallback models.
package advisory

import (
	"context"
	"fmt"
	"time"

	"weatherdash/models"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// unavailableFormat is the user-facing text returned when every model in
// the fallback chain failed. It carries the last attempt's failure detail.
const unavailableFormat = "Advisory currently unavailable. Please try again later.\nDetails: %v"

// TextGenerator produces prose for a prompt against a named model.
type TextGenerator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Generator runs the model fallback chain: each model is tried in order,
// failures are recorded, and the first success wins. This is a linear
// attempt list, not a backoff policy.
type Generator struct {
	gen    TextGenerator
	models []string
}

// NewGenerator creates a generator over gen trying models in order.
func NewGenerator(gen TextGenerator, models []string) *Generator {
	return &Generator{gen: gen, models: models}
}

// Advise builds the prompt from snapshot and series and walks the
// fallback chain. It never returns an error: when all models fail the
// advisory itself states the unavailability, carrying the last failure
// detail, and is marked Unavailable.
func (g *Generator) Advise(ctx context.Context, snapshot models.Snapshot, series models.ForecastSeries) models.Advisory {
	prompt := BuildPrompt(snapshot, series.Entries)

	lastErr := errors.New("no advisory models configured")
	for _, model := range g.models {
		text, err := g.gen.Generate(ctx, model, prompt)
		if err != nil {
			log.Warn().Str("model", model).Err(err).Msg("advisory model failed, trying next")
			lastErr = err
			continue
		}
		return models.Advisory{
			Text:      text,
			Model:     model,
			Generated: time.Now(),
		}
	}

	return models.Advisory{
		Text:        fmt.Sprintf(unavailableFormat, lastErr),
		Generated:   time.Now(),
		Unavailable: true,
	}
}
