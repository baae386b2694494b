package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Renderer consumes a finished state and presents it. Renderers never
// fetch anything themselves.
type Renderer interface {
	Render(state State) error
}

// TextRenderer writes the dashboard as plain text, section by section.
type TextRenderer struct {
	Out io.Writer
}

func (r *TextRenderer) Render(state State) error {
	w := r.Out

	if state.InputError != "" {
		fmt.Fprintf(w, "Input error: %s\n", state.InputError)
		return nil
	}

	fmt.Fprintf(w, "Weather for %s (refreshed %s)\n\n", state.City, state.RefreshedAt.Format("Mon, 02 Jan 2006 15:04"))

	if state.WeatherError != "" {
		fmt.Fprintf(w, "Current conditions unavailable: %s\n", state.WeatherError)
	} else if state.Snapshot != nil {
		snap := state.Snapshot
		fmt.Fprintf(w, "Now: %.0f°C (feels like %.1f°C), %s\n", snap.Temperature, snap.FeelsLike, snap.Description)
		fmt.Fprintf(w, "Humidity %.0f%%  Pressure %.0f hPa  Wind %.1f m/s\n", snap.Humidity, snap.Pressure, snap.WindSpeed)
		fmt.Fprintf(w, "Location: %.4f, %.4f\n", snap.Lat, snap.Lon)
		if state.Icon != nil && state.Icon.Placeholder {
			fmt.Fprintln(w, "(condition icon unavailable)")
		}
	}

	if state.ForecastError != "" {
		fmt.Fprintf(w, "\nForecast unavailable: %s\n", state.ForecastError)
	} else {
		if len(state.Buckets) > 0 {
			fmt.Fprintf(w, "\nDaily forecast:\n")
			for _, bucket := range state.Buckets {
				rep := bucket.Representative
				fmt.Fprintf(w, "  %s  %s  %.0f°C  %s\n", bucket.Date, rep.Timestamp.Format("Mon"), rep.Temperature, rep.Description)
			}
		}

		if len(state.Outlook) > 0 {
			fmt.Fprintf(w, "\nOutlook:\n")
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "  Time\tTemp (°C)\tWeather\tWind\tHum %")
			for _, entry := range state.Outlook {
				fmt.Fprintf(tw, "  %s\t%.1f\t%s\t%.1f\t%.0f\n",
					entry.Timestamp.Format("Mon 15:04"),
					entry.Temperature, entry.Description, entry.WindSpeed, entry.Humidity)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
	}

	if state.Advisory != nil {
		fmt.Fprintf(w, "\nAdvisory")
		if state.Advisory.Model != "" {
			fmt.Fprintf(w, " (%s)", state.Advisory.Model)
		}
		fmt.Fprintf(w, ":\n%s\n", state.Advisory.Text)
	}

	return nil
}

var _ Renderer = (*TextRenderer)(nil)
