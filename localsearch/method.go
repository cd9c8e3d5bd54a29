package localsearch

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/tour"
)

// Flavor selects the intra-route move family.
type Flavor uint8

const (
	// NodeExchange scans swaps of two selected nodes.
	NodeExchange Flavor = iota
	// EdgeExchange scans 2-opt segment reversals.
	EdgeExchange
)

// String returns "nodes" or "edges".
func (f Flavor) String() string {
	switch f {
	case NodeExchange:
		return "nodes"
	case EdgeExchange:
		return "edges"
	default:
		return fmt.Sprintf("flavor(%d)", uint8(f))
	}
}

// Method names one engine and flavor. It is the value used in configuration
// files and on the command line.
type Method string

const (
	MethodSteepestNodes      Method = "steepest-nodes"
	MethodSteepestEdges      Method = "steepest-edges"
	MethodSteepestCandidates Method = "steepest-candidates"
	MethodLM                 Method = "lm"
	MethodLMCandidates       Method = "lm-candidates"
	MethodGreedyNodes        Method = "greedy-nodes"
	MethodGreedyEdges        Method = "greedy-edges"
)

// Methods lists every known method in a stable order.
func Methods() []Method {
	return []Method{
		MethodSteepestNodes,
		MethodSteepestEdges,
		MethodSteepestCandidates,
		MethodLM,
		MethodLMCandidates,
		MethodGreedyNodes,
		MethodGreedyEdges,
	}
}

// ParseMethod maps a name to a Method.
func ParseMethod(s string) (Method, error) {
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownMethod)
}

// Randomized reports whether the method consumes random numbers.
func (m Method) Randomized() bool {
	return m == MethodGreedyNodes || m == MethodGreedyEdges
}

// Descend runs the engine named by method. rng is used only by randomized
// methods; nil selects the default deterministic stream.
func Descend(method Method, in *instance.Instance, init *tour.Solution, rng *rand.Rand, opts ...Option) (*tour.Solution, error) {
	switch method {
	case MethodSteepestNodes:
		return Steepest(in, init, NodeExchange, opts...), nil
	case MethodSteepestEdges:
		return Steepest(in, init, EdgeExchange, opts...), nil
	case MethodSteepestCandidates:
		return SteepestCandidates(in, init, opts...), nil
	case MethodLM:
		return SteepestLM(in, init, opts...), nil
	case MethodLMCandidates:
		return SteepestLMCandidates(in, init, opts...), nil
	case MethodGreedyNodes:
		return Greedy(in, init, NodeExchange, rng, opts...), nil
	case MethodGreedyEdges:
		return Greedy(in, init, EdgeExchange, rng, opts...), nil
	default:
		return nil, fmt.Errorf("%q: %w", string(method), ErrUnknownMethod)
	}
}
