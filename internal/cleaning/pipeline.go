package cleaning

import (
	"context"
	"log/slog"
	"time"

	"github.com/JonMunkholm/OrderClean/internal/logging"
	"github.com/JonMunkholm/OrderClean/internal/orders"
)

// Env is the environment a step runs in.
type Env struct {
	// Now is the processing time; dates after it are rejected.
	Now time.Time

	Logger *slog.Logger
}

func (e Env) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// StepFunc transforms the table and returns it with the number of affected
// rows or values. A step owns the table for the duration of the call.
type StepFunc func(*orders.Table, Env) (*orders.Table, int)

// Step is one named stage of the pipeline.
type Step struct {
	Name        StepName
	Description string
	Apply       StepFunc
}

// defaultSteps is the fixed execution order. Whitespace cleanup must run
// before the email, category and status steps, which match exact text.
var defaultSteps = []Step{
	{StepRemoveDuplicates, "Duplicate rows removed", removeDuplicates},
	{StepCleanWhitespace, "Whitespace cleaned in text fields", cleanWhitespace},
	{StepStandardizeEmails, "Invalid emails removed", standardizeEmails},
	{StepCleanPhoneNumbers, "Invalid phone numbers removed", cleanPhoneNumbers},
	{StepStandardizeDates, "Invalid dates removed", standardizeDates},
	{StepCleanPrices, "Invalid prices removed", cleanPrices},
	{StepCleanQuantities, "Invalid quantities removed", cleanQuantities},
	{StepStandardizeCategories, "Category variations consolidated", standardizeCategories},
	{StepStandardizeStatus, "Status variations consolidated", standardizeStatus},
}

// Pipeline runs the cleaning steps in order.
type Pipeline struct {
	steps []Step
	now   func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock sets the clock used for the processing time.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// New creates a pipeline with the standard steps.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: defaultSteps,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Steps returns the steps in execution order.
func (p *Pipeline) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Result is the outcome of a pipeline run.
type Result struct {
	Table       *orders.Table
	Log         ChangeLog
	ProcessedAt time.Time
}

// Run cleans t and returns the cleaned table with its change log.
// The pipeline takes ownership of t; callers that need the original must
// Clone it first. A step that changed nothing adds no log entry.
//
// Steps are not interruptible. ctx only carries the request-scoped logger.
func (p *Pipeline) Run(ctx context.Context, t *orders.Table) *Result {
	logger := logging.FromContext(ctx)
	env := Env{Now: p.now(), Logger: logger}
	res := &Result{ProcessedAt: env.Now}

	rows := t.Len()
	for _, step := range p.steps {
		var count int
		t, count = step.Apply(t, env)

		logger.Info("cleaning step finished",
			"step", string(step.Name),
			"count", count,
			"rows", t.Len(),
		)
		if count > 0 {
			res.Log.Append(Entry{Step: step.Name, Description: step.Description, Count: count})
		}
	}

	logger.Info("cleaning pipeline finished",
		"rows_in", rows,
		"rows_out", t.Len(),
		"steps_changed", res.Log.Len(),
	)

	res.Table = t
	return res
}
