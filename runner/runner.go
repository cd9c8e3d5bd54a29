package runner

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/config"
	"github.com/katalvlaran/prizecycle/construct"
	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/localsearch"
	"github.com/katalvlaran/prizecycle/move"
	"github.com/katalvlaran/prizecycle/tour"
)

// Job is one scheduled descent.
type Job struct {
	Method    localsearch.Method
	Run       int
	Seed      int64 // derived from the runner seed and Run only
	StartNode int
}

// Result is the outcome of one Job.
type Result struct {
	ID        uuid.UUID
	Method    localsearch.Method
	Run       int
	Seed      int64
	StartNode int
	Initial   int64 // objective of the initial tour
	Final     int64 // objective of the descent result
	Tour      []int
	Stats     localsearch.Stats
	Elapsed   time.Duration
}

// Runner runs descents on one instance. A Runner may be used by several
// goroutines; every Run call schedules its own jobs.
type Runner struct {
	in   *instance.Instance
	opts options

	catOnce sync.Once
	cat     *candidates.Catalog
}

// New returns a Runner for in. Panics on a nil instance.
func New(in *instance.Instance, opts ...Option) *Runner {
	if in == nil {
		panic("runner: New(nil)")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{in: in, opts: o, cat: o.catalog}
}

// FromConfig returns a Runner configured by cfg. extra options are applied
// after the configured ones.
func FromConfig(in *instance.Instance, cfg *config.Config, extra ...Option) (*Runner, error) {
	start, err := cfg.Strategy()
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	opts := []Option{
		WithSeed(cfg.Seed),
		WithWorkers(cfg.Workers),
		WithStart(start),
		WithRegretWeights(cfg.Regret.Weight, cfg.Regret.BestWeight),
		WithCandidateCount(cfg.CandidateK),
		WithTimeLimit(cfg.TimeLimit),
	}

	return New(in, append(opts, extra...)...), nil
}

// Jobs lists the jobs of Run(ctx, methods, runs) in scheduling order:
// method-major, run ascending.
func (r *Runner) Jobs(methods []localsearch.Method, runs int) []Job {
	jobs := make([]Job, 0, len(methods)*runs)
	for _, m := range methods {
		for run := 0; run < runs; run++ {
			jobs = append(jobs, Job{
				Method:    m,
				Run:       run,
				Seed:      localsearch.DeriveSeed(r.opts.seed, uint64(run)),
				StartNode: run % r.in.N(),
			})
		}
	}

	return jobs
}

// Run executes runs descents of every method and returns the results in
// Jobs order.
//
// Errors:
//   - ErrNoJobs if methods is empty or runs < 1.
//   - ErrTimeLimit with the results finished so far when the time limit
//     stopped scheduling.
//   - the context error with the results finished so far when ctx ends.
//   - the first job error otherwise; remaining jobs are not started.
func (r *Runner) Run(ctx context.Context, methods []localsearch.Method, runs int) ([]Result, error) {
	if len(methods) == 0 || runs < 1 {
		return nil, ErrNoJobs
	}

	jobs := r.Jobs(methods, runs)
	batch := uuid.New()
	log := r.opts.logger.With(zap.Stringer("batch", batch))
	log.Info("run started",
		zap.Int("points", r.in.N()),
		zap.Int("jobs", len(jobs)),
		zap.Int("workers", r.workers()),
		zap.String("start", string(r.opts.start)),
	)

	runCtx := ctx
	if r.opts.timeLimit > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeoutCause(ctx, r.opts.timeLimit, ErrTimeLimit)
		defer cancel()
	}

	var (
		began   = time.Now()
		results = make([]Result, len(jobs))
		g, gctx = errgroup.WithContext(runCtx)
	)
	g.SetLimit(r.workers())
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if runCtx.Err() != nil {
				return context.Cause(runCtx)
			}
			if gctx.Err() != nil {
				return nil
			}
			res, err := r.runJob(job, log)
			if err != nil {
				if r.opts.metrics != nil {
					r.opts.metrics.failed(string(job.Method))
				}
				return fmt.Errorf("runner: %s run %d: %w", job.Method, job.Run, err)
			}
			results[i] = res

			return nil
		})
	}
	err := g.Wait()

	done := make([]Result, 0, len(results))
	for _, res := range results {
		if res.ID != uuid.Nil {
			done = append(done, res)
		}
	}
	if err == nil && len(done) < len(jobs) {
		// Scheduling stopped before any job observed the cancellation.
		err = context.Cause(runCtx)
	}
	log.Info("run finished",
		zap.Int("completed", len(done)),
		zap.Duration("elapsed", time.Since(began)),
		zap.Error(err),
	)

	return done, err
}

// runJob builds the initial tour of job and descends from it.
func (r *Runner) runJob(job Job, log *zap.Logger) (Result, error) {
	began := time.Now()

	rng := localsearch.NewRNG(job.Seed)
	init, err := r.initial(job.StartNode, rng)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		ID:        uuid.New(),
		Method:    job.Method,
		Run:       job.Run,
		Seed:      job.Seed,
		StartNode: job.StartNode,
		Initial:   move.Objective(r.in, init),
	}
	out, err := localsearch.Descend(job.Method, r.in, init, localsearch.DeriveRNG(rng, uint64(job.Run)),
		localsearch.WithLogger(log.Named("localsearch")),
		localsearch.WithCandidates(r.catalog()),
		localsearch.WithStats(&res.Stats),
	)
	if err != nil {
		return Result{}, err
	}
	res.Final = move.Objective(r.in, out)
	res.Tour = out.Nodes()
	res.Elapsed = time.Since(began)

	if r.opts.metrics != nil {
		r.opts.metrics.observe(res)
	}
	log.Debug("descent finished",
		zap.Stringer("id", res.ID),
		zap.String("method", string(res.Method)),
		zap.Int("run", res.Run),
		zap.Int64("initial", res.Initial),
		zap.Int64("final", res.Final),
		zap.Int("applied", res.Stats.Applied),
		zap.Duration("elapsed", res.Elapsed),
	)

	return res, nil
}

func (r *Runner) initial(start int, rng *rand.Rand) (*tour.Solution, error) {
	if r.opts.start == construct.StrategyRandom {
		return construct.Random(r.in, start, rng)
	}

	return construct.WeightedRegret(r.in, start, r.opts.wRegret, r.opts.wBest)
}

func (r *Runner) catalog() *candidates.Catalog {
	r.catOnce.Do(func() {
		if r.cat == nil {
			r.cat = candidates.Build(r.in, r.opts.candK)
		}
	})

	return r.cat
}

func (r *Runner) workers() int {
	if r.opts.workers > 0 {
		return r.opts.workers
	}

	return runtime.GOMAXPROCS(0)
}
