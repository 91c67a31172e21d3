package core

import (
	"errors"
	"sync"
	"time"

	"github.com/JonMunkholm/OrderClean/internal/cleaning"
	"github.com/JonMunkholm/OrderClean/internal/orders"
	"github.com/JonMunkholm/OrderClean/internal/report"
)

// ErrRunNotFound is returned when a run ID is unknown or was evicted.
var ErrRunNotFound = errors.New("run not found")

// DefaultMaxRetainedRuns is how many completed runs are kept in memory.
const DefaultMaxRetainedRuns = 50

// Run is a completed cleaning run.
type Run struct {
	ID          string
	Source      string
	ProcessedAt time.Time
	Duration    time.Duration
	BytesRead   int64
	Persisted   bool

	Cleaned *orders.Table
	Log     cleaning.ChangeLog
	Summary report.Summary
}

// RunInfo is the listing view of a run.
type RunInfo struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	ProcessedAt  time.Time `json:"processed_at"`
	DurationMs   int64     `json:"duration_ms"`
	OriginalRows int       `json:"original_rows"`
	CleanedRows  int       `json:"cleaned_rows"`
	Changes      int       `json:"changes"`
	Persisted    bool      `json:"persisted"`
}

// Info returns the listing view of r.
func (r *Run) Info() RunInfo {
	return RunInfo{
		ID:           r.ID,
		Source:       r.Source,
		ProcessedAt:  r.ProcessedAt,
		DurationMs:   r.Duration.Milliseconds(),
		OriginalRows: r.Summary.OriginalRows,
		CleanedRows:  r.Summary.CleanedRows,
		Changes:      r.Log.Total(),
		Persisted:    r.Persisted,
	}
}

// runRegistry keeps the most recent runs, oldest first.
type runRegistry struct {
	mu    sync.RWMutex
	max   int
	byID  map[string]*Run
	order []string
}

func newRunRegistry(max int) *runRegistry {
	if max <= 0 {
		max = DefaultMaxRetainedRuns
	}
	return &runRegistry{
		max:  max,
		byID: make(map[string]*Run),
	}
}

// add records run, evicting the oldest runs beyond the limit.
func (r *runRegistry) add(run *Run) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[run.ID] = run
	r.order = append(r.order, run.ID)
	for len(r.order) > r.max {
		delete(r.byID, r.order[0])
		r.order = r.order[1:]
	}
}

func (r *runRegistry) get(id string) (*Run, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.byID[id]
	return run, ok
}

// list returns the retained runs, newest first.
func (r *runRegistry) list() []RunInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]RunInfo, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		result = append(result, r.byID[r.order[i]].Info())
	}
	return result
}
