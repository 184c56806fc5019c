package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/jquants-data/internal/model"
)

// GetAllDailyQuotes fetches OHLCV daily quotes for one security over a date
// range, draining all pages. Code must be in API form; from/to are YYYY-MM-DD.
func (c *Client) GetAllDailyQuotes(ctx context.Context, code, from, to string) ([]model.Record, error) {
	query := url.Values{}
	query.Set("code", code)
	query.Set("from", from)
	query.Set("to", to)

	records, err := c.fetchAllPages(ctx, "/prices/daily_quotes", query, []string{"daily_quotes"})
	if err != nil {
		return nil, fmt.Errorf("get daily quotes %s: %w", code, err)
	}
	return records, nil
}
