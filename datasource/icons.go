package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"weatherdash/models"
)

const iconURLTemplate = "https://openweathermap.org/img/wn/%s@%dx.png"

// IconFetcher retrieves weather condition icons from the fixed
// OpenWeatherMap image host. Decoding and resizing are left to the
// presentation layer.
type IconFetcher struct {
	httpClient *http.Client
}

func NewIconFetcher(timeout time.Duration) *IconFetcher {
	return &IconFetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchIcon downloads the image for an icon code at the given scale
// (1, 2 or 4). Failures are returned explicitly so the caller can apply
// its placeholder policy instead of skipping the icon silently.
func (f *IconFetcher) FetchIcon(ctx context.Context, code string, scale int) (models.Icon, error) {
	if code == "" {
		return models.Icon{}, &InputError{Reason: "icon code must not be empty"}
	}
	if scale != 1 && scale != 2 && scale != 4 {
		scale = 2
	}

	return f.fetchFromURL(ctx, code, fmt.Sprintf(iconURLTemplate, code, scale))
}

func (f *IconFetcher) fetchFromURL(ctx context.Context, code, iconURL string) (models.Icon, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iconURL, nil)
	if err != nil {
		return models.Icon{}, err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return models.Icon{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Icon{}, &APIError{StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Icon{}, &NetworkError{Err: err}
	}

	return models.Icon{Code: code, URL: iconURL, Data: data}, nil
}

// PlaceholderIcon is what the dashboard shows when the real icon could
// not be fetched.
func PlaceholderIcon(code string) models.Icon {
	return models.Icon{Code: code, Placeholder: true}
}
