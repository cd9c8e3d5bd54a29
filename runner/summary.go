package runner

import (
	"time"

	"github.com/katalvlaran/prizecycle/localsearch"
)

// Summary aggregates the results of one method.
type Summary struct {
	Method      localsearch.Method
	Runs        int
	Min         int64
	Max         int64
	Mean        float64
	MeanApplied float64
	MeanElapsed time.Duration
	Best        Result // lowest Final; ties go to the lower Run
}

// Summarize groups results by method, in order of first appearance.
//
// Complexity: O(len(results)).
func Summarize(results []Result) []Summary {
	var (
		order []localsearch.Method
		idx   = make(map[localsearch.Method]int)
		sums  []Summary
		total []int64
		moves []int64
		spent []time.Duration
	)
	for _, res := range results {
		i, ok := idx[res.Method]
		if !ok {
			i = len(order)
			idx[res.Method] = i
			order = append(order, res.Method)
			sums = append(sums, Summary{Method: res.Method, Min: res.Final, Max: res.Final, Best: res})
			total = append(total, 0)
			moves = append(moves, 0)
			spent = append(spent, 0)
		}

		s := &sums[i]
		s.Runs++
		total[i] += res.Final
		moves[i] += int64(res.Stats.Applied)
		spent[i] += res.Elapsed
		if res.Final < s.Min {
			s.Min = res.Final
		}
		if res.Final > s.Max {
			s.Max = res.Final
		}
		if res.Final < s.Best.Final || (res.Final == s.Best.Final && res.Run < s.Best.Run) {
			s.Best = res
		}
	}

	for i := range sums {
		n := sums[i].Runs
		sums[i].Mean = float64(total[i]) / float64(n)
		sums[i].MeanApplied = float64(moves[i]) / float64(n)
		sums[i].MeanElapsed = spent[i] / time.Duration(n)
	}

	return sums
}
