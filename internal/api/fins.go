package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/jquants-data/internal/model"
)

// GetAllStatements fetches financial statement summaries for one security,
// draining all pages. Code must be in API form.
func (c *Client) GetAllStatements(ctx context.Context, code string) ([]model.Record, error) {
	query := url.Values{}
	query.Set("code", code)

	records, err := c.fetchAllPages(ctx, "/fins/statements", query, []string{"statements"})
	if err != nil {
		return nil, fmt.Errorf("get statements %s: %w", code, err)
	}
	return records, nil
}

// GetAllAnnouncements fetches upcoming earnings announcements. The endpoint
// is unscoped: one logical query covers the whole market.
func (c *Client) GetAllAnnouncements(ctx context.Context) ([]model.Record, error) {
	records, err := c.fetchAllPages(ctx, "/fins/announcement", nil, []string{"announcement"})
	if err != nil {
		return nil, fmt.Errorf("get announcements: %w", err)
	}
	return records, nil
}
