package models

import (
	"time"
)

// Advisory is free-text guidance generated from weather data by an
// external language model. No structure is imposed on the text.
type Advisory struct {
	Text        string    `json:"text"`
	Model       string    `json:"model,omitempty"` // model that produced the text
	Generated   time.Time `json:"generated"`
	Unavailable bool      `json:"unavailable"` // true when every fallback model failed
}

// Icon is the raw image asset for a weather condition. When the fetch
// fails the caller substitutes a placeholder instead of dropping the
// icon silently; Placeholder marks that substitution.
type Icon struct {
	Code        string `json:"code"`
	URL         string `json:"url"`
	Data        []byte `json:"-"`
	Placeholder bool   `json:"placeholder"`
}
