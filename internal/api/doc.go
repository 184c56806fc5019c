// Package api provides the J-Quants REST API client.
//
// Base URL: https://api.jquants.com/v1
//
// Authentication is a two-step token exchange (POST /token/auth_user then
// POST /token/auth_refresh); data endpoints take the resulting ID token as a
// bearer header. Paged endpoints return a pagination_key that is echoed back
// to fetch the next page; the GetAll* helpers drain all pages.
//
// The margin-interest and short-selling payloads have been observed under
// more than one result key; those endpoints probe an ordered candidate list
// and treat "no candidate present" as an empty result.
package api
