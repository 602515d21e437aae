package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvxtal/internal/logging"
	"github.com/katalvlaran/lvxtal/phase"
	"github.com/katalvlaran/lvxtal/reflector"
	"github.com/katalvlaran/lvxtal/scattering"
)

// ErrInvalidArgument indicates a nil model or a non-positive limit.
var ErrInvalidArgument = errors.New("batch: invalid argument")

// Job is one phase to compute. Load is called on the worker goroutine, so
// parsing and building the phase run in parallel too.
type Job struct {
	Name string
	Load func() (*phase.Phase, error)
}

// PhaseJob wraps an already built phase.
func PhaseJob(p *phase.Phase) Job {
	return Job{Name: p.Name(), Load: func() (*phase.Phase, error) { return p, nil }}
}

// Result is the outcome of one Job.
type Result struct {
	Name       string
	Phase      *phase.Phase
	Reflectors []reflector.Reflector
	Took       time.Duration
	Err        error
	Canceled   bool // never started because the run was cancelled
}

// Report collects the results of one Run in job order.
type Report struct {
	ID      uuid.UUID
	Results []Result
	Failed  int // cancelled jobs are not counted
	Took    time.Duration
}

// Options configures a Runner.
type Options struct {
	Concurrency  int
	MaxIndex     int
	MinIntensity float64
	FailFast     bool
	Logger       logging.Logger
	Metrics      *Metrics
}

// Option represents a functional option for NewRunner.
type Option func(*Options)

// DefaultOptions returns one worker per CPU, maxIndex 3, threshold 0.01.
func DefaultOptions() Options {
	return Options{
		Concurrency:  runtime.NumCPU(),
		MaxIndex:     3,
		MinIntensity: 0.01,
		Logger:       logging.NewNopLogger(),
	}
}

// WithConcurrency bounds the number of jobs in flight.
func WithConcurrency(n int) Option { return func(o *Options) { o.Concurrency = n } }

// WithMaxIndex sets the Miller index bound passed to ComputeReflectors.
func WithMaxIndex(n int) Option { return func(o *Options) { o.MaxIndex = n } }

// WithMinIntensity sets the relative intensity threshold.
func WithMinIntensity(v float64) Option { return func(o *Options) { o.MinIntensity = v } }

// WithFailFast cancels the run on the first failing job.
func WithFailFast(on bool) Option { return func(o *Options) { o.FailFast = on } }

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics makes the runner update m.
func WithMetrics(m *Metrics) Option { return func(o *Options) { o.Metrics = m } }

// Runner computes reflectors for many phases with one scattering model.
type Runner struct {
	model scattering.Model
	opts  Options
	log   logging.Logger
}

// NewRunner validates the options and returns a Runner.
func NewRunner(model scattering.Model, opts ...Option) (*Runner, error) {
	if model == nil {
		return nil, fmt.Errorf("NewRunner: nil model: %w", ErrInvalidArgument)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Concurrency <= 0 {
		return nil, fmt.Errorf("NewRunner: concurrency %d: %w", cfg.Concurrency, ErrInvalidArgument)
	}
	if cfg.MaxIndex <= 0 {
		return nil, fmt.Errorf("NewRunner: maxIndex %d: %w", cfg.MaxIndex, ErrInvalidArgument)
	}

	return &Runner{model: model, opts: cfg, log: cfg.Logger.Named("batch")}, nil
}

// Run computes every job and returns the results in job order.
// Stage 1: start the group with its limit and a run id.
// Stage 2: per job, load, compute and record.
// Stage 3: wait; report cancellation or the fail-fast error.
// The Report is returned even when err is non-nil.
func (r *Runner) Run(ctx context.Context, jobs []Job) (*Report, error) {
	// Stage 1: set up
	rep := &Report{ID: uuid.New(), Results: make([]Result, len(jobs))}
	log := r.log.With(logging.String("run_id", rep.ID.String()))
	if m := r.opts.Metrics; m != nil {
		m.Runs.Inc()
	}
	log.Info("batch started", logging.Int("jobs", len(jobs)), logging.Int("concurrency", r.opts.Concurrency))
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.Concurrency)

	// Stage 2: dispatch
	for i, job := range jobs {
		g.Go(func() error {
			res := r.runOne(gctx, job)
			rep.Results[i] = res
			r.opts.Metrics.observe(res)
			switch {
			case res.Canceled:
				return nil
			case res.Err != nil:
				log.Warn("phase failed", logging.String("phase", res.Name), logging.Err(res.Err))
				if r.opts.FailFast {
					return res.Err
				}
			default:
				log.Debug("phase computed", logging.String("phase", res.Name),
					logging.Int("reflectors", len(res.Reflectors)), logging.Duration("took", res.Took))
			}
			return nil
		})
	}

	// Stage 3: collect
	err := g.Wait()
	rep.Took = time.Since(start)
	for _, res := range rep.Results {
		if res.Err != nil && !res.Canceled {
			rep.Failed++
		}
	}
	if err == nil {
		err = ctx.Err()
	}
	log.Info("batch finished", logging.Int("jobs", len(jobs)), logging.Int("failed", rep.Failed),
		logging.Duration("took", rep.Took))

	return rep, err
}

func (r *Runner) runOne(ctx context.Context, job Job) Result {
	res := Result{Name: job.Name}
	if err := ctx.Err(); err != nil {
		res.Err, res.Canceled = err, true
		return res
	}
	start := time.Now()
	if job.Load == nil {
		res.Err = fmt.Errorf("%s: nil loader: %w", job.Name, ErrInvalidArgument)
		res.Took = time.Since(start)
		return res
	}
	p, err := job.Load()
	if err != nil {
		res.Err = err
		res.Took = time.Since(start)
		return res
	}
	res.Phase = p
	if res.Name == "" {
		res.Name = p.Name()
	}
	if err = p.ComputeReflectors(r.model, r.opts.MaxIndex, r.opts.MinIntensity); err != nil {
		res.Err = fmt.Errorf("%s: %w", res.Name, err)
	} else {
		res.Reflectors = p.Reflectors()
	}
	res.Took = time.Since(start)

	return res
}
