package advisory

import (
	"fmt"
	"strings"

	"weatherdash/models"
)

// PromptForecastEntries is how many upcoming forecast entries are
// embedded in the prompt.
const PromptForecastEntries = 8

// BuildPrompt assembles the fixed advisory prompt from the current
// snapshot and the next few forecast entries.
func BuildPrompt(snapshot models.Snapshot, entries []models.ForecastEntry) string {
	if len(entries) > PromptForecastEntries {
		entries = entries[:PromptForecastEntries]
	}

	var forecastLines []string
	for _, e := range entries {
		forecastLines = append(forecastLines, fmt.Sprintf(
			"%s: %.1f°C (feels %.1f°C), %s, Humidity: %.0f%%, Wind: %.1f m/s",
			e.Timestamp.Format("2006-01-02 15:04"),
			e.Temperature, e.FeelsLike, e.Description, e.Humidity, e.WindSpeed,
		))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional meteorologist. Analyze this weather data for %s and provide practical advice:\n\n", snapshot.City)
	b.WriteString("CURRENT CONDITIONS:\n")
	fmt.Fprintf(&b, "- Temperature: %.1f°C\n", snapshot.Temperature)
	fmt.Fprintf(&b, "- Feels Like: %.1f°C\n", snapshot.FeelsLike)
	fmt.Fprintf(&b, "- Humidity: %.0f%%\n", snapshot.Humidity)
	fmt.Fprintf(&b, "- Pressure: %.0f hPa\n", snapshot.Pressure)
	fmt.Fprintf(&b, "- Weather: %s\n", snapshot.Description)
	fmt.Fprintf(&b, "- Wind Speed: %.1f m/s\n\n", snapshot.WindSpeed)
	b.WriteString("UPCOMING FORECAST:\n")
	b.WriteString(strings.Join(forecastLines, "\n"))
	b.WriteString("\n\nBased on this weather data, provide expert advice on:\n")
	b.WriteString("1. Health and wellness impact\n")
	b.WriteString("2. Best activities for today\n")
	b.WriteString("3. What to wear\n")
	b.WriteString("4. Travel conditions\n")
	b.WriteString("5. Any weather warnings or precautions\n\n")
	b.WriteString("Keep your response conversational and practical, around 150-200 words.")

	return b.String()
}
