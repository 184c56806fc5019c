package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL         = "https://api.jquants.com/v1"
	DefaultAPITimeout      = 30 * time.Second
	DefaultMaxRetries      = 3
	DefaultRetryBackoff    = 1 * time.Second
	DefaultRequestInterval = 100 * time.Millisecond
	DefaultConcurrency     = 1
	DefaultSampleSize      = 50
	DefaultOutputDir       = "output"
)

func (c *FetcherConfig) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = DefaultRetryBackoff
	}

	// Batch defaults
	if c.Batch.RequestInterval == 0 {
		c.Batch.RequestInterval = DefaultRequestInterval
	}
	if c.Batch.Concurrency == 0 {
		c.Batch.Concurrency = DefaultConcurrency
	}
	if c.Batch.SampleSize == 0 {
		c.Batch.SampleSize = DefaultSampleSize
	}

	// Output defaults
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
}
