package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/rickgao/jquants-data/internal/api"
	"github.com/rickgao/jquants-data/internal/batch"
	"github.com/rickgao/jquants-data/internal/calendar"
	"github.com/rickgao/jquants-data/internal/config"
	"github.com/rickgao/jquants-data/internal/model"
	"github.com/rickgao/jquants-data/internal/writer"
)

// app wires the authorized client, the batch engine and the output sinks
// behind the interactive menu.
type app struct {
	cfg    *config.FetcherConfig
	client *api.Client
	engine *batch.Engine
	logger *slog.Logger
}

const fileStamp = "20060102_150405"

// menuLoop reads menu selections until quit or EOF. Mode failures are
// reported and the menu comes back; only context cancellation ends the loop
// early.
func (a *app) menuLoop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for {
		printMenu()

		choice, ok := prompt(scanner, "Select (1-14): ")
		if !ok {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if choice == "14" || strings.EqualFold(choice, "q") {
			return nil
		}

		if err := a.runMode(ctx, scanner, choice); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Error("retrieval failed", "mode", choice, "error", err)
			fmt.Println("Retrieval failed:", err)
			continue
		}

		fmt.Println("Retrieval complete.")
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("J-Quants market data fetcher")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println(" 1. Listed securities (text + CSV)")
	fmt.Println(" 2. Daily quotes, all securities")
	fmt.Println(" 3. Listed securities + daily quotes")
	fmt.Println(" 4. Daily quotes, test sample")
	fmt.Println(" 5. Financial statements, all securities")
	fmt.Println(" 6. Financial statements, test sample")
	fmt.Println(" 7. Earnings announcements")
	fmt.Println(" 8. Weekly margin interest, all securities")
	fmt.Println(" 9. Weekly margin interest, test sample")
	fmt.Println("10. Short selling, all securities")
	fmt.Println("11. Short selling, test sample")
	fmt.Println("12. Everything (full sweep)")
	fmt.Println("13. Everything, test sample")
	fmt.Println("14. Quit")
}

func (a *app) runMode(ctx context.Context, scanner *bufio.Scanner, choice string) error {
	switch choice {
	case "1":
		return a.runListed(ctx)
	case "2":
		return a.runQuotes(ctx, promptTradingDays(scanner), false)
	case "3":
		if err := a.runListed(ctx); err != nil {
			return err
		}
		return a.runQuotes(ctx, promptTradingDays(scanner), false)
	case "4":
		return a.runQuotes(ctx, promptTradingDays(scanner), true)
	case "5":
		return a.runStatements(ctx, false)
	case "6":
		return a.runStatements(ctx, true)
	case "7":
		return a.runAnnouncements(ctx)
	case "8":
		return a.runMarginInterest(ctx, false)
	case "9":
		return a.runMarginInterest(ctx, true)
	case "10":
		return a.runShortSelling(ctx, false)
	case "11":
		return a.runShortSelling(ctx, true)
	case "12":
		return a.runAll(ctx, promptTradingDays(scanner), false)
	case "13":
		return a.runAll(ctx, promptTradingDays(scanner), true)
	default:
		return fmt.Errorf("invalid selection %q", choice)
	}
}

// promptTradingDays asks for the quote history depth. Invalid or empty input
// falls back to 30 days.
func promptTradingDays(scanner *bufio.Scanner) int {
	fmt.Println()
	fmt.Println("Trading days of history:")
	fmt.Println(" 1. 5    (one week)")
	fmt.Println(" 2. 30   (default)")
	fmt.Println(" 3. 250  (one year)")
	fmt.Println(" 4. 1250 (five years)")

	choice, _ := prompt(scanner, "Select (1-4): ")
	switch choice {
	case "1":
		return 5
	case "3":
		return 250
	case "4":
		return 1250
	default:
		return 30
	}
}

func prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

// outputPath builds a timestamped file path in the output directory.
func (a *app) outputPath(kind, ext string, testMode bool) string {
	name := kind
	if testMode {
		name += "_test"
	}
	name += "_" + time.Now().Format(fileStamp) + ext
	return filepath.Join(a.cfg.Output.Dir, name)
}

// codeUniverse enumerates the canonical security codes to batch over,
// preserving listed-info order and dropping duplicates. Test mode caps the
// universe at the configured sample size. An empty universe is fatal to the
// mode: there is nothing to batch.
func (a *app) codeUniverse(ctx context.Context, testMode bool) ([]model.SecurityCode, error) {
	records, err := a.client.GetAllListedInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate listed securities: %w", err)
	}

	codes := extractCodes(records)
	if len(codes) == 0 {
		return nil, fmt.Errorf("no security codes obtainable")
	}

	if testMode && len(codes) > a.cfg.Batch.SampleSize {
		codes = codes[:a.cfg.Batch.SampleSize]
	}

	a.logger.Info("code universe ready", "codes", len(codes), "test_mode", testMode)
	return codes, nil
}

// extractCodes pulls canonical codes out of listed-info rows, deduplicated
// in input order.
func extractCodes(records []model.Record) []model.SecurityCode {
	seen := make(map[model.SecurityCode]bool, len(records))
	codes := make([]model.SecurityCode, 0, len(records))

	for _, rec := range records {
		code := model.SecurityCode(rec.String("Code")).CanonicalForm()
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		codes = append(codes, code)
	}
	return codes
}

// canonicalizeCodes re-tags the code field of rows fetched outside the batch
// engine, which does this itself.
func canonicalizeCodes(records []model.Record, field string) {
	for _, rec := range records {
		if code := rec.String(field); code != "" {
			rec[field] = model.SecurityCode(code).CanonicalForm().String()
		}
	}
}

func (a *app) runListed(ctx context.Context) error {
	a.logger.Info("retrieving listed securities")

	records, err := a.client.GetAllListedInfo(ctx)
	if err != nil {
		return fmt.Errorf("listed securities: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("listed securities: no records returned")
	}
	canonicalizeCodes(records, "Code")

	textPath := a.outputPath("listed_securities", ".txt", false)
	if err := writer.WriteListedText(records, textPath, time.Now()); err != nil {
		return err
	}

	csvPath := a.outputPath("listed_securities", ".csv", false)
	if err := writer.WriteCSV(records, writer.ListedInfoHeader, csvPath); err != nil {
		return err
	}

	a.logger.Info("listed securities written",
		"records", len(records),
		"text", textPath,
		"csv", csvPath,
	)
	return nil
}

func (a *app) runQuotes(ctx context.Context, days int, testMode bool) error {
	codes, err := a.codeUniverse(ctx, testMode)
	if err != nil {
		return err
	}

	r := calendar.ResolveRange(days)
	a.logger.Info("retrieving daily quotes",
		"days", days,
		"from", r.From(),
		"to", r.To(),
	)

	result, err := a.engine.FetchForAll(ctx, codes, batch.Query{
		Fetch: func(ctx context.Context, apiCode string) ([]model.Record, error) {
			return a.client.GetAllDailyQuotes(ctx, apiCode, r.From(), r.To())
		},
		Range: &r,
	})
	if err != nil {
		return err
	}

	kind := fmt.Sprintf("daily_quotes_%dd", days)
	return a.writeBatch(result, writer.DailyQuotesHeader, kind, testMode)
}

func (a *app) runStatements(ctx context.Context, testMode bool) error {
	codes, err := a.codeUniverse(ctx, testMode)
	if err != nil {
		return err
	}

	a.logger.Info("retrieving financial statements")

	result, err := a.engine.FetchForAll(ctx, codes, batch.Query{
		Fetch: func(ctx context.Context, apiCode string) ([]model.Record, error) {
			return a.client.GetAllStatements(ctx, apiCode)
		},
		CodeField: "LocalCode",
	})
	if err != nil {
		return err
	}

	return a.writeBatch(result, writer.StatementsHeader, "statements", testMode)
}

func (a *app) runAnnouncements(ctx context.Context) error {
	a.logger.Info("retrieving earnings announcements")

	// One unscoped query covers the whole market; no batching needed.
	records, err := a.client.GetAllAnnouncements(ctx)
	if err != nil {
		return fmt.Errorf("announcements: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("announcements: no records returned")
	}
	canonicalizeCodes(records, "Code")

	path := a.outputPath("announcements", ".csv", false)
	if err := writer.WriteCSV(records, writer.AnnouncementsHeader, path); err != nil {
		return err
	}

	a.logger.Info("announcements written", "records", len(records), "csv", path)
	return nil
}

func (a *app) runMarginInterest(ctx context.Context, testMode bool) error {
	codes, err := a.codeUniverse(ctx, testMode)
	if err != nil {
		return err
	}

	a.logger.Info("retrieving weekly margin interest")

	result, err := a.engine.FetchForAll(ctx, codes, batch.Query{
		Fetch: func(ctx context.Context, apiCode string) ([]model.Record, error) {
			return a.client.GetAllMarginInterest(ctx, apiCode)
		},
	})
	if err != nil {
		return err
	}

	// Schema not fully known in advance: dynamic header.
	return a.writeDynamicBatch(result, "margin_interest", testMode)
}

func (a *app) runShortSelling(ctx context.Context, testMode bool) error {
	codes, err := a.codeUniverse(ctx, testMode)
	if err != nil {
		return err
	}

	a.logger.Info("retrieving short selling data")

	result, err := a.engine.FetchForAll(ctx, codes, batch.Query{
		Fetch: func(ctx context.Context, apiCode string) ([]model.Record, error) {
			return a.client.GetAllShortSelling(ctx, apiCode)
		},
	})
	if err != nil {
		return err
	}

	return a.writeDynamicBatch(result, "short_selling", testMode)
}

func (a *app) runAll(ctx context.Context, days int, testMode bool) error {
	if err := a.runListed(ctx); err != nil {
		return err
	}
	if err := a.runQuotes(ctx, days, testMode); err != nil {
		return err
	}
	if err := a.runStatements(ctx, testMode); err != nil {
		return err
	}
	if err := a.runAnnouncements(ctx); err != nil {
		return err
	}
	if err := a.runMarginInterest(ctx, testMode); err != nil {
		return err
	}
	return a.runShortSelling(ctx, testMode)
}

// writeBatch writes a batch result under a fixed header. A batch that
// aggregated nothing is a failure even when every per-code failure was
// individually tolerated.
func (a *app) writeBatch(result *model.BatchResult, header []string, kind string, testMode bool) error {
	if result.Empty() {
		return fmt.Errorf("%s: batch produced no records (%d codes failed)", kind, result.Failed)
	}

	path := a.outputPath(kind, ".csv", testMode)
	if err := writer.WriteCSV(result.Records, header, path); err != nil {
		return err
	}

	a.logger.Info("batch written",
		"run_id", result.RunID,
		"kind", kind,
		"records", len(result.Records),
		"failed_codes", result.Failed,
		"csv", path,
	)
	return nil
}

// writeDynamicBatch is writeBatch for the data kinds without a predeclared
// header.
func (a *app) writeDynamicBatch(result *model.BatchResult, kind string, testMode bool) error {
	if result.Empty() {
		return fmt.Errorf("%s: batch produced no records (%d codes failed)", kind, result.Failed)
	}

	path := a.outputPath(kind, ".csv", testMode)
	if err := writer.WriteDynamicCSV(result.Records, path); err != nil {
		return err
	}

	a.logger.Info("batch written",
		"run_id", result.RunID,
		"kind", kind,
		"records", len(result.Records),
		"failed_codes", result.Failed,
		"csv", path,
	)
	return nil
}
