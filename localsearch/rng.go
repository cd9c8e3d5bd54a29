// Random streams for the greedy descents and for experiment runners.
//
// A run of an experiment is identified by (experiment seed, run index). Its
// initial tour and its greedy move order both come from streams derived from
// that pair alone, so a run replays bit for bit whatever worker executes it
// and whichever runs were scheduled before it.
//
//   - Seed 0 stands for defaultRNGSeed; nothing reads the clock.
//   - A *rand.Rand belongs to one descent. Workers get their own via DeriveRNG.
package localsearch

import "math/rand"

// defaultRNGSeed replaces seed 0 and nil generators.
const defaultRNGSeed int64 = 1

// SplitMix64 increment and finalizer multipliers.
const (
	golden  uint64 = 0x9e3779b97f4a7c15
	mixMul1 uint64 = 0xbf58476d1ce4e5b9
	mixMul2 uint64 = 0x94d049bb133111eb
)

// NewRNG returns a deterministic generator. seed 0 selects defaultRNGSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed returns the seed of stream number stream under parent. It is
// pure: runners call it with (experiment seed, run index) to fix every job
// seed before any job starts.
func DeriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return int64(splitmix(uint64(parent) ^ (stream + golden)))
}

// DeriveRNG returns the generator of stream number stream under base. One
// value of base is consumed as the parent seed, so a run's construction and
// its descent never share a sequence. A nil base uses defaultRNGSeed.
//
// Call during setup, not in hot loops.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultRNGSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}

// splitmix is one SplitMix64 step: neighbouring inputs map to uncorrelated
// outputs.
func splitmix(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * mixMul1
	x = (x ^ (x >> 27)) * mixMul2

	return x ^ (x >> 31)
}
