// Package localsearch_test — benchmarks for the descent engines.
//
// Policy:
//   - Instances and initial tours are built outside the timer.
//   - Same instance for every engine, so results compare directly.
package localsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/prizecycle/candidates"
	"github.com/katalvlaran/prizecycle/localsearch"
)

const benchN = 200

func BenchmarkDescend(b *testing.B) {
	in := pointsInstance(b, benchN, seedDet)
	init := randomTour(in, seedDet)
	cat := candidates.Build(in, candidates.DefaultK)

	for _, m := range localsearch.Methods() {
		b.Run(string(m), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				rng := rand.New(rand.NewSource(int64(i)))
				if _, err := localsearch.Descend(m, in, init, rng, localsearch.WithCandidates(cat)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCandidatesBuild(b *testing.B) {
	in := pointsInstance(b, benchN, seedDet)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		candidates.Build(in, candidates.DefaultK)
	}
}
