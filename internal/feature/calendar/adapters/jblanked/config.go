// Package jblanked implements the EventRepository against the JBlanked
// news API.
package jblanked

import (
	"fmt"
	"os"
	"time"
)

const defaultBaseURL = "https://www.jblanked.com/news/api"

// Config holds the JBlanked API settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// LoadConfig reads the JBlanked settings from the environment.
// NEWS_API_KEY is required; NEWS_API_BASE_URL overrides the default host.
func LoadConfig() (Config, error) {
	key := os.Getenv("NEWS_API_KEY")
	if key == "" {
		return Config{}, fmt.Errorf("NEWS_API_KEY is not set")
	}

	base := os.Getenv("NEWS_API_BASE_URL")
	if base == "" {
		base = defaultBaseURL
	}

	return Config{
		BaseURL: base,
		APIKey:  key,
		Timeout: 30 * time.Second,
	}, nil
}
