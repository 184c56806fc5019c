package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestFetchAllPages_Pagination(t *testing.T) {
	// Two pages: the first carries a pagination_key, the second does not.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{}
		switch r.URL.Query().Get("pagination_key") {
		case "":
			resp["daily_quotes"] = []map[string]any{
				{"Code": "13010", "Date": "2024-06-13"},
				{"Code": "13010", "Date": "2024-06-14"},
			}
			resp["pagination_key"] = "page-2"
		case "page-2":
			resp["daily_quotes"] = []map[string]any{
				{"Code": "13010", "Date": "2024-06-17"},
			}
		default:
			t.Errorf("unexpected pagination_key %q", r.URL.Query().Get("pagination_key"))
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	records, err := c.GetAllDailyQuotes(context.Background(), "13010", "2024-06-01", "2024-06-30")
	if err != nil {
		t.Fatalf("GetAllDailyQuotes failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	// Page order preserved.
	if records[0].String("Date") != "2024-06-13" || records[2].String("Date") != "2024-06-17" {
		t.Errorf("page order not preserved: %v", records)
	}
}

func TestFetchAllPages_MidPaginationFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			json.NewEncoder(w).Encode(map[string]any{
				"daily_quotes":   []map[string]any{{"Code": "13010"}},
				"pagination_key": "page-2",
			})
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	records, err := c.GetAllDailyQuotes(context.Background(), "13010", "2024-06-01", "2024-06-30")
	if err == nil {
		t.Fatal("expected failure when a later page fails")
	}
	if records != nil {
		t.Errorf("records = %v, want nil (no partial success)", records)
	}
}

func TestDecodePage_CandidateKeys(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		keys    []string
		want    int
		wantKey string
	}{
		{
			name: "primary key present",
			body: `{"weekly_margin_interest": [{"Code": "13010"}, {"Code": "13010"}]}`,
			keys: marginInterestKeys,
			want: 2,
		},
		{
			name: "fallback key present",
			body: `{"margin_interest": [{"Code": "13010"}]}`,
			keys: marginInterestKeys,
			want: 1,
		},
		{
			name: "first present candidate wins in order",
			body: `{"short_selling": [{"a": 1}], "data": [{"b": 1}, {"b": 2}]}`,
			keys: shortSellingKeys,
			want: 1,
		},
		{
			name: "no candidate present is empty, not an error",
			body: `{"something_else": [{"Code": "13010"}]}`,
			keys: shortSellingKeys,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, next, err := decodePage([]byte(tt.body), tt.keys)
			if err != nil {
				t.Fatalf("decodePage failed: %v", err)
			}
			if len(records) != tt.want {
				t.Errorf("records = %d, want %d", len(records), tt.want)
			}
			if next != "" {
				t.Errorf("pagination key = %q, want empty", next)
			}
		})
	}
}

func TestDecodePage_PaginationKey(t *testing.T) {
	body := `{"statements": [], "pagination_key": "abc123"}`
	_, next, err := decodePage([]byte(body), []string{"statements"})
	if err != nil {
		t.Fatalf("decodePage failed: %v", err)
	}
	if next != "abc123" {
		t.Errorf("pagination key = %q, want %q", next, "abc123")
	}
}

func TestDecodePage_MalformedBody(t *testing.T) {
	if _, _, err := decodePage([]byte(`not json`), []string{"info"}); err == nil {
		t.Error("expected error for malformed body")
	}
}
