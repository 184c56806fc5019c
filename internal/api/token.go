package api

import (
	"context"
	"fmt"
	"net/url"
)

type authUserRequest struct {
	MailAddress string `json:"mailaddress"`
	Password    string `json:"password"`
}

type authUserResponse struct {
	RefreshToken string `json:"refreshToken"`
}

type authRefreshResponse struct {
	IDToken string `json:"idToken"`
}

// AuthUser exchanges account credentials for a refresh token.
func (c *Client) AuthUser(ctx context.Context, email, password string) (string, error) {
	var resp authUserResponse
	body := authUserRequest{MailAddress: email, Password: password}
	if err := c.post(ctx, "/token/auth_user", nil, body, &resp); err != nil {
		return "", fmt.Errorf("auth user: %w", err)
	}
	if resp.RefreshToken == "" {
		return "", fmt.Errorf("auth user: response carried no refresh token")
	}
	return resp.RefreshToken, nil
}

// AuthRefresh exchanges a refresh token for an ID token. The API takes the
// refresh token as a query parameter, not a body field.
func (c *Client) AuthRefresh(ctx context.Context, refreshToken string) (string, error) {
	query := url.Values{}
	query.Set("refreshtoken", refreshToken)

	var resp authRefreshResponse
	if err := c.post(ctx, "/token/auth_refresh", query, nil, &resp); err != nil {
		return "", fmt.Errorf("auth refresh: %w", err)
	}
	if resp.IDToken == "" {
		return "", fmt.Errorf("auth refresh: response carried no id token")
	}
	return resp.IDToken, nil
}
