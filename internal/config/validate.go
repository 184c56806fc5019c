package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *FetcherConfig) Validate() error {
	if c.Auth.Email == "" {
		return errors.New("auth.email is required (set JQUANTS_EMAIL)")
	}
	if c.Auth.Password == "" {
		return errors.New("auth.password is required (set JQUANTS_PASSWORD)")
	}

	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.MaxRetries < 0 {
		return fmt.Errorf("api.max_retries must be >= 0, got %d", c.API.MaxRetries)
	}

	if c.Batch.RequestInterval < 0 {
		return fmt.Errorf("batch.request_interval must be >= 0, got %v", c.Batch.RequestInterval)
	}
	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be >= 1, got %d", c.Batch.Concurrency)
	}
	if c.Batch.SampleSize < 1 {
		return fmt.Errorf("batch.sample_size must be >= 1, got %d", c.Batch.SampleSize)
	}

	if c.Output.Dir == "" {
		return errors.New("output.dir is required")
	}

	return nil
}
