package localsearch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/move"
	"github.com/katalvlaran/prizecycle/tour"
)

// Option customizes a descent. Options are applied in order; later ones win.
//
// Option constructors validate their arguments and panic on meaningless
// input. Descents themselves only panic on broken preconditions.
type Option func(*config)

// Observer is called with the current solution and the move about to be
// applied to it. The solution must not be modified.
type Observer func(sol *tour.Solution, m move.Move)

// Stats collects counters of one descent call. A Stats passed to WithStats is
// reset at the start of the call.
type Stats struct {
	Rounds    int   // scan rounds, including the final non-improving one
	Evaluated int64 // delta evaluations
	Applied   int   // improving moves applied

	// Move-catalog counters (SteepestLM variants only).
	Inserted int64 // entries inserted, initial scan included
	Dropped  int64 // entries found stale and dropped
	Skipped  int64 // entries passed over for orientation mismatch
}

type config struct {
	logger   *zap.Logger
	catalog  *candidates.Catalog
	candK    int
	stats    *Stats
	observer Observer
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger: zap.NewNop(),
		candK:  candidates.DefaultK,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.stats == nil {
		cfg.stats = &Stats{}
	} else {
		*cfg.stats = Stats{}
	}

	return cfg
}

// neighbors returns the catalog to use for in, building it when the caller
// did not supply one.
func (c *config) neighbors(in *instance.Instance) *candidates.Catalog {
	if c.catalog == nil {
		return candidates.Build(in, c.candK)
	}
	if c.catalog.N() != in.N() {
		panic(fmt.Sprintf("localsearch: catalog covers %d points, instance has %d", c.catalog.N(), in.N()))
	}

	return c.catalog
}

// apply notifies the observer, performs m and counts it.
func (c *config) apply(sol *tour.Solution, m move.Move) {
	if c.observer != nil {
		c.observer(sol, m)
	}
	move.Apply(sol, m)
	c.stats.Applied++
}

// WithLogger attaches a logger. Panics on nil; omit the option for silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("localsearch: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithCandidates supplies a prebuilt candidate catalog, so repeated descents
// on one instance share it. Panics on nil.
func WithCandidates(cat *candidates.Catalog) Option {
	if cat == nil {
		panic("localsearch: WithCandidates(nil)")
	}
	return func(c *config) { c.catalog = cat }
}

// WithCandidateCount sets the list length used when the catalog is built on
// demand. Default candidates.DefaultK. Panics if k < 1.
func WithCandidateCount(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("localsearch: WithCandidateCount(%d)", k))
	}
	return func(c *config) { c.candK = k }
}

// WithStats makes the descent fill s. Panics on nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("localsearch: WithStats(nil)")
	}
	return func(c *config) { c.stats = s }
}

// WithObserver registers fn to see every move before it is applied.
// Panics on nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("localsearch: WithObserver(nil)")
	}
	return func(c *config) { c.observer = fn }
}
