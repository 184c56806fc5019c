package writer

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rickgao/jquants-data/internal/model"
)

// WriteListedText writes the listed-securities report as a human-readable
// text file: a banner with the retrieval time, then one block per security.
func WriteListedText(records []model.Record, path string, retrievedAt time.Time) error {
	if len(records) == 0 {
		return fmt.Errorf("write text %s: no records", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "Listed securities - retrieved %s\n", retrievedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)

	for _, rec := range records {
		fmt.Fprintf(w, "Code: %s\n", renderValue(rec, "Code"))
		fmt.Fprintf(w, "Company: %s\n", renderValue(rec, "CompanyName"))
		fmt.Fprintf(w, "Company (EN): %s\n", renderValue(rec, "CompanyNameEnglish"))
		fmt.Fprintf(w, "Sector: %s\n", renderValue(rec, "Sector17CodeName"))
		fmt.Fprintf(w, "Market: %s\n", renderValue(rec, "MarketCode"))
		fmt.Fprintf(w, "Listed: %s\n", renderValue(rec, "ListingDate"))
		fmt.Fprintln(w, strings.Repeat("-", 60))
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
