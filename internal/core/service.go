package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/OrderClean/internal/cleaning"
	"github.com/JonMunkholm/OrderClean/internal/logging"
	"github.com/JonMunkholm/OrderClean/internal/orders"
	"github.com/JonMunkholm/OrderClean/internal/report"
	"github.com/JonMunkholm/OrderClean/internal/store"
)

// ErrNoStore is returned by History when no database is configured.
var ErrNoStore = errors.New("run store not configured")

// RunTimeout is the maximum duration of a single run, persistence included.
// Zero disables the limit.
var RunTimeout = 5 * time.Minute

// RunStore persists completed runs. *store.Store implements it.
type RunStore interface {
	SaveRun(ctx context.Context, run *store.Run) error
	RecentRuns(ctx context.Context, limit int) ([]store.RunRecord, error)
}

// Options configures a Service. Zero values select the defaults.
type Options struct {
	MaxConcurrent int
	MaxWait       time.Duration
	MaxRetained   int

	// Store is optional; without it runs only live in memory.
	Store RunStore

	// Clock overrides time.Now, mainly for tests.
	Clock func() time.Time
}

// Service runs cleaning jobs and keeps their results.
type Service struct {
	pipeline *cleaning.Pipeline
	limiter  *RunLimiter
	runs     *runRegistry
	store    RunStore
	now      func() time.Time
}

// NewService creates a Service.
func NewService(opts Options) *Service {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	return &Service{
		pipeline: cleaning.New(cleaning.WithClock(now)),
		limiter:  NewRunLimiter(opts.MaxConcurrent, opts.MaxWait),
		runs:     newRunRegistry(opts.MaxRetained),
		store:    opts.Store,
		now:      now,
	}
}

// Clean decodes CSV from r, cleans it and records the run.
// source names the input in logs and history. When a store is configured
// the run is persisted before it becomes visible through Get.
func (s *Service) Clean(ctx context.Context, source string, r io.Reader) (*Run, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	if RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, RunTimeout)
		defer cancel()
	}

	id := uuid.New()
	log := logging.WithFields(ctx, "run_id", id.String(), "source", source)
	if ip := ClientIPFromContext(ctx); ip != "" {
		log = log.With("client_ip", ip, "user_agent", UserAgentFromContext(ctx))
	}
	ctx = logging.WithLogger(ctx, log)
	start := s.now()

	counter := orders.WrapSource(r)
	tbl, err := orders.Decode(counter)
	if err != nil {
		log.Warn("decode failed", "error", err)
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	original := tbl.Clone()
	res := s.pipeline.Run(ctx, tbl)
	summary := report.Summarize(original, res.Table, &res.Log)

	run := &Run{
		ID:          id.String(),
		Source:      source,
		ProcessedAt: res.ProcessedAt,
		BytesRead:   counter.BytesRead,
		Cleaned:     res.Table,
		Log:         res.Log,
		Summary:     summary,
	}

	if s.store != nil {
		err := s.store.SaveRun(ctx, &store.Run{
			ID:           id,
			Source:       source,
			ProcessedAt:  run.ProcessedAt,
			OriginalRows: summary.OriginalRows,
			Changes:      run.Log.Entries(),
			Cleaned:      run.Cleaned,
		})
		if err != nil {
			log.Error("persist run failed", "error", err)
			return nil, fmt.Errorf("save run: %w", err)
		}
		run.Persisted = true
	}

	run.Duration = s.now().Sub(start)
	s.runs.add(run)

	log.Info("run completed",
		"bytes", run.BytesRead,
		"rows_in", summary.OriginalRows,
		"rows_out", summary.CleanedRows,
		"duration_ms", run.Duration.Milliseconds(),
		"persisted", run.Persisted,
	)
	return run, nil
}

// FilePaths names the files a file-based run reads and writes.
// Report and HTMLReport are skipped when empty.
type FilePaths struct {
	Input      string
	Output     string
	Report     string
	HTMLReport string
}

// CleanFile runs Clean over a file and writes the cleaned CSV and reports.
func (s *Service) CleanFile(ctx context.Context, paths FilePaths) (*Run, error) {
	f, err := os.Open(paths.Input)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", orders.ErrSourceNotFound, paths.Input)
		}
		return nil, fmt.Errorf("open %s: %w", paths.Input, err)
	}
	defer f.Close()

	run, err := s.Clean(ctx, paths.Input, f)
	if err != nil {
		return nil, err
	}

	if err := orders.Save(paths.Output, run.Cleaned); err != nil {
		return nil, err
	}
	if paths.Report != "" {
		if err := report.WriteFile(paths.Report, run.Summary); err != nil {
			return nil, err
		}
	}
	if paths.HTMLReport != "" {
		if err := report.WriteHTMLFile(ctx, paths.HTMLReport, ReportTitle(run), run.Summary); err != nil {
			return nil, err
		}
	}
	return run, nil
}

// ReportTitle is the heading used for a run's HTML report.
func ReportTitle(run *Run) string {
	return "Order Cleaning Report: " + run.Source
}

// Get returns a retained run by ID.
func (s *Service) Get(id string) (*Run, error) {
	run, ok := s.runs.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, nil
}

// List returns the retained runs, newest first.
func (s *Service) List() []RunInfo {
	return s.runs.list()
}

// History returns stored runs, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]store.RunRecord, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.RecentRuns(ctx, limit)
}

// LimiterStatus returns the run limiter state.
func (s *Service) LimiterStatus() LimiterStatus {
	return s.limiter.Status()
}

// Shutdown waits for in-flight runs to finish or ctx to end.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}
