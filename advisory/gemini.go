package advisory

import (
	"context"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// GeminiGenerator is a TextGenerator backed by Google's Gemini API. A
// missing API key does not prevent construction; every Generate call then
// fails, which the fallback chain reports as unavailability.
type GeminiGenerator struct {
	apiKey string
}

func NewGeminiGenerator(apiKey string) *GeminiGenerator {
	if apiKey == "" {
		log.Warn().Msg("no Gemini API key configured, advisory generation will be unavailable")
	}
	return &GeminiGenerator{apiKey: apiKey}
}

// Generate sends prompt to the named Gemini model and returns the text of
// the first candidate. The call has no timeout of its own; it runs until
// the model responds, errors, or ctx is cancelled.
func (g *GeminiGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing Gemini API key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return "", errors.Wrap(err, "failed to create gemini client")
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close gemini client")
		}
	}()

	resp, err := client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.Wrapf(err, "model %s failed", model)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.Errorf("model %s returned no candidates", model)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errors.Errorf("model %s returned no text parts", model)
	}

	return b.String(), nil
}

var _ TextGenerator = (*GeminiGenerator)(nil)
