package runner

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/construct"
)

// Option customizes a Runner. Option constructors panic on meaningless input.
type Option func(*options)

type options struct {
	logger    *zap.Logger
	metrics   *Metrics
	catalog   *candidates.Catalog
	workers   int
	seed      int64
	start     construct.Strategy
	wRegret   float64
	wBest     float64
	candK     int
	timeLimit time.Duration
}

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		seed:    1,
		start:   construct.StrategyRegret,
		wRegret: construct.DefaultRegretWeight,
		wBest:   construct.DefaultBestWeight,
		candK:   candidates.DefaultK,
	}
}

// WithLogger attaches a logger. Descents log through a child named
// "localsearch". Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithMetrics records every finished descent in m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("runner: WithMetrics(nil)")
	}
	return func(o *options) { o.metrics = m }
}

// WithCandidates supplies the catalog used by the candidate methods instead
// of building one on first use. Panics on nil.
func WithCandidates(cat *candidates.Catalog) Option {
	if cat == nil {
		panic("runner: WithCandidates(nil)")
	}
	return func(o *options) { o.catalog = cat }
}

// WithWorkers bounds concurrent descents. 0 selects GOMAXPROCS.
// Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("runner: WithWorkers(%d)", n))
	}
	return func(o *options) { o.workers = n }
}

// WithSeed sets the parent seed of every job stream. Default 1.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithStart selects the construction of initial tours. Default regret.
// Panics on an unknown strategy.
func WithStart(s construct.Strategy) Option {
	if _, err := construct.ParseStrategy(string(s)); err != nil {
		panic(fmt.Sprintf("runner: WithStart: %v", err))
	}
	return func(o *options) { o.start = s }
}

// WithRegretWeights sets the weights of the regret construction.
// Panics on negative weights.
func WithRegretWeights(wRegret, wBest float64) Option {
	if wRegret < 0 || wBest < 0 {
		panic(fmt.Sprintf("runner: WithRegretWeights(%v, %v)", wRegret, wBest))
	}
	return func(o *options) { o.wRegret, o.wBest = wRegret, wBest }
}

// WithCandidateCount sets the list length of the catalog built on first use.
// Panics if k < 1.
func WithCandidateCount(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("runner: WithCandidateCount(%d)", k))
	}
	return func(o *options) { o.candK = k }
}

// WithTimeLimit stops scheduling new descents after d. 0 disables the limit.
// Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("runner: WithTimeLimit(%v)", d))
	}
	return func(o *options) { o.timeLimit = d }
}
