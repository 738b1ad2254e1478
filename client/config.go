package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client settings read from CSBOT_-prefixed environment variables.
// Example: CSBOT_BASE_URL, CSBOT_BEARER_TOKEN, CSBOT_HTTP_TIMEOUT.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"http://localhost:8000"`
	BearerToken string        `envconfig:"BEARER_TOKEN"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"` // 0 = no client-side timeout
	Debug       bool          `envconfig:"DEBUG" default:"false"`
	RequestIDs  bool          `envconfig:"REQUEST_IDS" default:"true"`

	// AwaitIngestion polling
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"2s"`
	PollMaxWait  time.Duration `envconfig:"POLL_MAX_WAIT" default:"10m"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CSBOT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}

// Options converts the config into functional options.
func (cfg *Config) Options() []Option {
	opts := []Option{
		WithDebugLogging(cfg.Debug),
		WithRequestIDs(cfg.RequestIDs),
	}
	if cfg.BearerToken != "" {
		opts = append(opts, WithBearerToken(cfg.BearerToken))
	}
	if cfg.HTTPTimeout > 0 {
		opts = append(opts, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.PollInterval > 0 {
		opts = append(opts, WithPollInterval(cfg.PollInterval))
	}
	if cfg.PollMaxWait > 0 {
		opts = append(opts, WithPollMaxWait(cfg.PollMaxWait))
	}
	return opts
}

// NewFromConfig builds a Client from cfg; opts are applied after the
// config-derived options.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	return New(cfg.BaseURL, append(cfg.Options(), opts...)...)
}
