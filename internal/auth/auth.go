// Package auth performs the J-Quants two-step token exchange.
//
// Step 1 trades account credentials for a refresh token; step 2 trades the
// refresh token for the ID token that authorizes every data request. The
// result is an immutable Session value threaded through the rest of the
// program, never ambient client state.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/rickgao/jquants-data/internal/api"
)

// Credentials holds the J-Quants account credentials. Source them from
// configuration or environment, never literals.
type Credentials struct {
	Email    string
	Password string
}

// NewCredentials validates and wraps account credentials.
func NewCredentials(email, password string) (Credentials, error) {
	if email == "" {
		return Credentials{}, fmt.Errorf("email is required")
	}
	if password == "" {
		return Credentials{}, fmt.Errorf("password is required")
	}
	return Credentials{Email: email, Password: password}, nil
}

// Session is the product of a successful token exchange. It is a value:
// callers derive an authorized API client from it and pass that along.
type Session struct {
	RefreshToken string
	IDToken      string
	ObtainedAt   time.Time
}

// Authenticate runs the two-step token exchange. Failure at either step is
// fatal to the run; there is no retry beyond the client's transport-level
// backoff.
func Authenticate(ctx context.Context, client *api.Client, creds Credentials) (Session, error) {
	refreshToken, err := client.AuthUser(ctx, creds.Email, creds.Password)
	if err != nil {
		return Session{}, fmt.Errorf("authenticate: %w", err)
	}

	idToken, err := client.AuthRefresh(ctx, refreshToken)
	if err != nil {
		return Session{}, fmt.Errorf("authenticate: %w", err)
	}

	return Session{
		RefreshToken: refreshToken,
		IDToken:      idToken,
		ObtainedAt:   time.Now(),
	}, nil
}
