package batch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/rickgao/jquants-data/internal/calendar"
	"github.com/rickgao/jquants-data/internal/model"
)

// Fetcher retrieves all records for one security code (API form). A failure
// means "no usable data for this code", never partial data.
type Fetcher func(ctx context.Context, apiCode string) ([]model.Record, error)

// Query describes one batch retrieval: how to fetch a code's records and how
// to post-process them.
type Query struct {
	Fetch     Fetcher
	Range     *calendar.DateRange // non-nil = date-scoped: rows outside trading days are dropped
	DateField string              // row field holding the date (default "Date")
	CodeField string              // row field re-tagged with the canonical code (default "Code")
}

// Config holds batch engine settings.
type Config struct {
	RequestInterval time.Duration // minimum spacing between fetches, shared across workers
	Concurrency     int           // worker count; 1 = strictly sequential
	ProgressEvery   int           // log progress every N codes (0 disables)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		RequestInterval: 100 * time.Millisecond,
		Concurrency:     1,
		ProgressEvery:   100,
	}
}

// Engine drives batch retrievals over a code universe.
type Engine struct {
	cfg     Config
	logger  *slog.Logger
	limiter *rate.Limiter
}

// New creates a new Engine.
func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	limit := rate.Inf
	if cfg.RequestInterval > 0 {
		limit = rate.Every(cfg.RequestInterval)
	}

	return &Engine{
		cfg:     cfg,
		logger:  logger,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// FetchForAll fetches records for every code, in input order. A single
// code's failure is logged and counted, never aborts the batch; only context
// cancellation returns an error. The returned result is owned by the caller.
func (e *Engine) FetchForAll(ctx context.Context, codes []model.SecurityCode, q Query) (*model.BatchResult, error) {
	if q.DateField == "" {
		q.DateField = "Date"
	}
	if q.CodeField == "" {
		q.CodeField = "Code"
	}

	result := &model.BatchResult{RunID: uuid.New()}
	start := time.Now()

	e.logger.Info("batch started",
		"run_id", result.RunID,
		"codes", len(codes),
		"concurrency", e.cfg.Concurrency,
	)

	var err error
	if e.cfg.Concurrency == 1 {
		err = e.runSequential(ctx, codes, q, result)
	} else {
		err = e.runConcurrent(ctx, codes, q, result)
	}
	if err != nil {
		return nil, err
	}

	e.logger.Info("batch complete",
		"run_id", result.RunID,
		"codes", len(codes),
		"records", len(result.Records),
		"failed", result.Failed,
		"duration", time.Since(start),
	)

	return result, nil
}

// runSequential completes one code's full pagination before starting the next.
func (e *Engine) runSequential(ctx context.Context, codes []model.SecurityCode, q Query, result *model.BatchResult) error {
	for i, code := range codes {
		if err := e.limiter.Wait(ctx); err != nil {
			return err
		}

		records, err := e.fetchOne(ctx, code, q)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			result.Failed++
			continue
		}

		result.Records = append(result.Records, records...)

		if e.cfg.ProgressEvery > 0 && (i+1)%e.cfg.ProgressEvery == 0 {
			e.logger.Info("batch progress",
				"run_id", result.RunID,
				"processed", i+1,
				"total", len(codes),
				"failed", result.Failed,
			)
		}
	}
	return nil
}

// runConcurrent fans codes out over a bounded worker pool. The shared rate
// gate keeps the global inter-request spacing, and per-code results are
// buffered by position so output order matches input order, not completion
// order.
func (e *Engine) runConcurrent(ctx context.Context, codes []model.SecurityCode, q Query, result *model.BatchResult) error {
	buffers := make([][]model.Record, len(codes))
	var failed, processed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)

	for i, code := range codes {
		g.Go(func() error {
			if err := e.limiter.Wait(gctx); err != nil {
				return err
			}

			records, err := e.fetchOne(gctx, code, q)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				failed.Add(1)
				return nil
			}

			buffers[i] = records

			n := processed.Add(1)
			if e.cfg.ProgressEvery > 0 && n%int64(e.cfg.ProgressEvery) == 0 {
				e.logger.Info("batch progress",
					"run_id", result.RunID,
					"processed", n,
					"total", len(codes),
					"failed", failed.Load(),
				)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	result.Failed = int(failed.Load())
	for _, records := range buffers {
		result.Records = append(result.Records, records...)
	}
	return nil
}

// fetchOne fetches, filters and re-tags one code's records.
func (e *Engine) fetchOne(ctx context.Context, code model.SecurityCode, q Query) ([]model.Record, error) {
	canonical := code.CanonicalForm()

	records, err := q.Fetch(ctx, code.APIForm().String())
	if err != nil {
		e.logger.Warn("fetch failed",
			"code", canonical,
			"err", err,
		)
		return nil, err
	}

	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if q.Range != nil {
			d, err := calendar.ParseDate(rec.String(q.DateField))
			if err != nil || !calendar.IsTradingDay(d) {
				// Defends against the API returning non-trading-day rows;
				// a row whose date cannot be parsed cannot pass the filter.
				continue
			}
		}

		tagged := rec.Clone()
		tagged[q.CodeField] = canonical.String()
		out = append(out, tagged)
	}

	return out, nil
}
