package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/jquants-data/internal/model"
)

// GetAllListedInfo fetches the full listed-securities universe.
func (c *Client) GetAllListedInfo(ctx context.Context) ([]model.Record, error) {
	return c.GetAllListedInfoWithOptions(ctx, ListedInfoOptions{})
}

// ListedInfoOptions narrows a listed-info query.
type ListedInfoOptions struct {
	Date string // YYYY-MM-DD; empty = latest
	Code string // API-form code; empty = all securities
}

// GetAllListedInfoWithOptions fetches listed securities matching the options,
// draining all pages.
func (c *Client) GetAllListedInfoWithOptions(ctx context.Context, opts ListedInfoOptions) ([]model.Record, error) {
	query := url.Values{}
	if opts.Date != "" {
		query.Set("date", opts.Date)
	}
	if opts.Code != "" {
		query.Set("code", opts.Code)
	}

	records, err := c.fetchAllPages(ctx, "/listed/info", query, []string{"info"})
	if err != nil {
		return nil, fmt.Errorf("get listed info: %w", err)
	}
	return records, nil
}
