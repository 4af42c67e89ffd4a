// Package mtbridge provides a client for the MetaTrader terminal bridge, a
// small REST gateway that sits in front of the proprietary terminal and
// exposes its deal/order history and account snapshot over HTTP.
package mtbridge

import (
	"os"
	"time"
)

// Config holds configuration for the terminal bridge client.
type Config struct {
	BaseURL string        // Base URL of the bridge (e.g. "http://localhost:5001")
	APIKey  string        // Shared secret for the bridge, optional
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads bridge configuration from environment variables.
func LoadConfig() Config {
	return Config{
		BaseURL: os.Getenv("MT_BRIDGE_BASE_URL"),
		APIKey:  os.Getenv("MT_BRIDGE_API_KEY"),
		Timeout: 30 * time.Second,
	}
}
