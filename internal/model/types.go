package model

import "github.com/google/uuid"

// Record is one flat row from an API response. Values are whatever
// encoding/json produced for the field (string, float64, bool, nil); the
// writers render them as text. The upstream schema is not fully stable, so
// rows stay as maps instead of structs.
type Record map[string]any

// Clone returns a shallow copy of the record. The engine re-tags the code
// field before aggregating, and must not mutate rows a fetcher may still hold.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns the value for key as a string, or "" if absent or not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// ListedSecurity is one row from the listed-info endpoint, in the canonical
// field set the text/CSV reports use.
type ListedSecurity struct {
	Code               SecurityCode
	CompanyName        string
	CompanyNameEnglish string
	Sector17CodeName   string
	MarketCode         string
	ListingDate        string
}

// BatchResult is the accumulated output of one multi-code retrieval run.
// Records preserve code iteration order; within one code, page order.
// Immutable once returned by the engine.
type BatchResult struct {
	RunID   uuid.UUID // correlates log lines and output files for this run
	Records []Record  // aggregated rows, code field re-tagged to canonical form
	Failed  int       // codes whose fetch failed outright (no rows emitted)
}

// Empty reports whether the run aggregated no records at all. A batch that
// ends empty is reported as failed even when every per-code failure was
// individually tolerated.
func (b *BatchResult) Empty() bool {
	return len(b.Records) == 0
}
