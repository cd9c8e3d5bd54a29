package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/prizecycle/localsearch"
)

func TestNewRNG_ZeroSeedIsDefault(t *testing.T) {
	a := localsearch.NewRNG(0)
	b := localsearch.NewRNG(1)
	assert.Equal(t, a.Int63(), b.Int63())
}

func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base1 := rand.New(rand.NewSource(99))
	base2 := rand.New(rand.NewSource(99))

	// Same base state and stream id: same child.
	assert.Equal(t, localsearch.DeriveRNG(base1, 3).Int63(), localsearch.DeriveRNG(base2, 3).Int63())
	// Different ids from the same parent state: different children.
	x := localsearch.DeriveRNG(rand.New(rand.NewSource(5)), 0).Int63()
	y := localsearch.DeriveRNG(rand.New(rand.NewSource(5)), 1).Int63()
	assert.NotEqual(t, x, y)

	assert.Equal(t, localsearch.DeriveRNG(nil, 4).Int63(), localsearch.DeriveRNG(nil, 4).Int63())
}

func TestDeriveSeed_Pure(t *testing.T) {
	assert.Equal(t, localsearch.DeriveSeed(7, 2), localsearch.DeriveSeed(7, 2))
	assert.NotEqual(t, localsearch.DeriveSeed(7, 2), localsearch.DeriveSeed(7, 3))
	assert.Equal(t, localsearch.DeriveSeed(0, 2), localsearch.DeriveSeed(1, 2), "zero parent uses the default")
}

func TestDeriveRNG_UsesDeriveSeedOfConsumedParent(t *testing.T) {
	base := localsearch.NewRNG(21)
	parent := localsearch.NewRNG(21).Int63()

	got := localsearch.DeriveRNG(base, 6).Int63()
	want := localsearch.NewRNG(localsearch.DeriveSeed(parent, 6)).Int63()
	assert.Equal(t, want, got)

	assert.Equal(t,
		localsearch.NewRNG(localsearch.DeriveSeed(1, 6)).Int63(),
		localsearch.DeriveRNG(nil, 6).Int63(),
		"nil base derives from the default seed")
}
