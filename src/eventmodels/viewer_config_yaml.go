package eventmodels

import (
	"fmt"
	"time"
)

const (
	DefaultDeribitBaseURL = "https://history.deribit.com"
	DefaultDeribitWSURL   = "wss://www.deribit.com/ws/api/v2"
)

// ViewerConfigYAML is the optional server configuration file. Every field has
// a default, so an absent or empty file still yields a working dashboard.
type ViewerConfigYAML struct {
	Addr                  string `yaml:"addr"`
	DeribitBaseURL        string `yaml:"deribitBaseUrl"`
	DeribitWSURL          string `yaml:"deribitWsUrl"`
	RequestTimeoutSeconds int    `yaml:"requestTimeoutSeconds"`
	Transport             string `yaml:"transport"`
}

func (c *ViewerConfigYAML) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}

	if c.DeribitBaseURL == "" {
		c.DeribitBaseURL = DefaultDeribitBaseURL
	}

	if c.DeribitWSURL == "" {
		c.DeribitWSURL = DefaultDeribitWSURL
	}

	if c.RequestTimeoutSeconds == 0 {
		c.RequestTimeoutSeconds = 120
	}

	if c.Transport == "" {
		c.Transport = "http"
	}
}

func (c *ViewerConfigYAML) Validate() error {
	if c.Transport != "http" && c.Transport != "ws" {
		return fmt.Errorf("ViewerConfigYAML: Validate: invalid transport: %s", c.Transport)
	}

	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("ViewerConfigYAML: Validate: requestTimeoutSeconds must be non-negative, got %d", c.RequestTimeoutSeconds)
	}

	return nil
}

func (c *ViewerConfigYAML) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
