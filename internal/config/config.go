package config

import "time"

// FetcherConfig is the root configuration for a fetcher run.
type FetcherConfig struct {
	API    APIConfig    `yaml:"api"`
	Auth   AuthConfig   `yaml:"auth"`
	Batch  BatchConfig  `yaml:"batch"`
	Output OutputConfig `yaml:"output"`
}

// APIConfig holds J-Quants API settings.
type APIConfig struct {
	BaseURL      string        `yaml:"base_url"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxRetries   int           `yaml:"max_retries"`
	RetryBackoff time.Duration `yaml:"retry_backoff"`
}

// AuthConfig holds the J-Quants account credentials used for the token
// exchange. Populate via environment expansion, not literals.
type AuthConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// BatchConfig holds batch retrieval engine settings.
type BatchConfig struct {
	RequestInterval time.Duration `yaml:"request_interval"` // minimum spacing between requests, across all workers
	Concurrency     int           `yaml:"concurrency"`      // worker count; 1 = strictly sequential
	SampleSize      int           `yaml:"sample_size"`      // code universe cap in test mode
}

// OutputConfig holds output file settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}
