package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rickgao/jquants-data/internal/model"
)

// paginationKeyField is the continuation token field on every paged endpoint.
const paginationKeyField = "pagination_key"

// fetchAllPages drains a paged endpoint, advancing pagination_key until a
// response carries none, and concatenates the pages' records. The result key
// candidates are probed in order and the first one present wins; a page with
// no candidate present contributes nothing (empty result, not an error). Any
// round-trip failure fails the whole call: partial pages are not usable data.
func (c *Client) fetchAllPages(ctx context.Context, path string, query url.Values, resultKeys []string) ([]model.Record, error) {
	var all []model.Record
	paginationKey := ""

	for {
		q := make(url.Values, len(query)+1)
		for k, v := range query {
			q[k] = v
		}
		if paginationKey != "" {
			q.Set(paginationKeyField, paginationKey)
		}

		body, err := c.doWithRetry(ctx, http.MethodGet, path, q, nil)
		if err != nil {
			return nil, err
		}

		records, next, err := decodePage(body, resultKeys)
		if err != nil {
			return nil, fmt.Errorf("decode page %s: %w", path, err)
		}

		all = append(all, records...)

		if next == "" {
			break
		}
		paginationKey = next
	}

	return all, nil
}

// decodePage extracts the record list and continuation token from one page.
func decodePage(body []byte, resultKeys []string) ([]model.Record, string, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, "", fmt.Errorf("unmarshal envelope: %w", err)
	}

	next := ""
	if raw, ok := envelope[paginationKeyField]; ok {
		if err := json.Unmarshal(raw, &next); err != nil {
			return nil, "", fmt.Errorf("unmarshal %s: %w", paginationKeyField, err)
		}
	}

	for _, key := range resultKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var records []model.Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, "", fmt.Errorf("unmarshal %q records: %w", key, err)
		}
		return records, next, nil
	}

	// No candidate present: empty result. The continuation token is dropped
	// too; a page we cannot read records from is not worth following.
	return nil, "", nil
}
