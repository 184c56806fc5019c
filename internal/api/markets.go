package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rickgao/jquants-data/internal/model"
)

// Ordered result-key candidates for endpoints whose payload key has been
// observed to vary. The first key present in a response wins; schema drift
// upstream is a one-line fix here.
var (
	marginInterestKeys = []string{"weekly_margin_interest", "margin_interest", "data"}
	shortSellingKeys   = []string{"short_selling", "short_selling_positions", "data"}
)

// GetAllMarginInterest fetches weekly margin interest balances for one
// security, draining all pages. Code must be in API form.
func (c *Client) GetAllMarginInterest(ctx context.Context, code string) ([]model.Record, error) {
	query := url.Values{}
	query.Set("code", code)

	records, err := c.fetchAllPages(ctx, "/markets/weekly_margin_interest", query, marginInterestKeys)
	if err != nil {
		return nil, fmt.Errorf("get margin interest %s: %w", code, err)
	}
	return records, nil
}

// GetAllShortSelling fetches short-selling values for one security, draining
// all pages. Code must be in API form.
func (c *Client) GetAllShortSelling(ctx context.Context, code string) ([]model.Record, error) {
	query := url.Values{}
	query.Set("code", code)

	records, err := c.fetchAllPages(ctx, "/markets/short_selling", query, shortSellingKeys)
	if err != nil {
		return nil, fmt.Errorf("get short selling %s: %w", code, err)
	}
	return records, nil
}
