package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/token/auth_user" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		json.Unmarshal(body, &req)
		if req["mailaddress"] != "user@example.com" || req["password"] != "hunter2" {
			t.Errorf("unexpected credentials payload: %v", req)
		}

		json.NewEncoder(w).Encode(map[string]string{"refreshToken": "refresh-abc"})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	token, err := c.AuthUser(context.Background(), "user@example.com", "hunter2")
	if err != nil {
		t.Fatalf("AuthUser failed: %v", err)
	}
	if token != "refresh-abc" {
		t.Errorf("refresh token = %q, want %q", token, "refresh-abc")
	}
}

func TestAuthUser_MissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.AuthUser(context.Background(), "user@example.com", "hunter2"); err == nil {
		t.Error("expected error when response carries no refresh token")
	}
}

func TestAuthRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("refreshtoken") != "refresh-abc" {
			t.Errorf("refreshtoken param = %q", r.URL.Query().Get("refreshtoken"))
		}
		json.NewEncoder(w).Encode(map[string]string{"idToken": "id-xyz"})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	token, err := c.AuthRefresh(context.Background(), "refresh-abc")
	if err != nil {
		t.Fatalf("AuthRefresh failed: %v", err)
	}
	if token != "id-xyz" {
		t.Errorf("id token = %q, want %q", token, "id-xyz")
	}
}

func TestAuthRefresh_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	if _, err := c.AuthRefresh(context.Background(), "stale"); err == nil {
		t.Error("expected error for rejected refresh token")
	}
}
