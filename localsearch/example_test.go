// Package localsearch_test provides runnable, deterministic examples.
//
// Contents:
//  1. ExampleSteepest       (edge exchange uncrosses a 4-point tour)
//  2. ExampleSteepestLM     (move-catalog descent with counters)
//  3. ExampleDescend        (method dispatch by name, seeded greedy)
package localsearch_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/prizecycle/instance"
	"github.com/katalvlaran/prizecycle/localsearch"
	"github.com/katalvlaran/prizecycle/move"
	"github.com/katalvlaran/prizecycle/tour"
)

// exampleSquare is the unit square with zero costs, visited in crossing order.
func exampleSquare() (*instance.Instance, *tour.Solution) {
	in, err := instance.FromPoints([]instance.Point{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10},
	})
	if err != nil {
		panic(err)
	}

	return in, tour.MustNew(4, []int{0, 1, 2, 3})
}

func ExampleSteepest() {
	in, init := exampleSquare()

	out := localsearch.Steepest(in, init, localsearch.EdgeExchange)
	fmt.Println(init, move.Objective(in, init))
	fmt.Println(out, move.Objective(in, out))
	// Output:
	// [0 1 2 3 | 0] 48
	// [0 2 1 3 | 0] 40
}

func ExampleSteepestLM() {
	in, init := exampleSquare()

	var st localsearch.Stats
	out := localsearch.SteepestLM(in, init, localsearch.WithStats(&st))
	fmt.Println(out, "applied:", st.Applied)
	// Output:
	// [0 2 1 3 | 0] applied: 1
}

func ExampleDescend() {
	in, err := instance.FromPoints([]instance.Point{
		{X: 0, Y: 0, Cost: 5}, {X: 4, Y: 0, Cost: 50}, {X: 4, Y: 3, Cost: 5},
		{X: 0, Y: 3, Cost: 5}, {X: 2, Y: 1, Cost: 1},
	})
	if err != nil {
		panic(err)
	}
	init := tour.MustNew(in.N(), []int{0, 1, 2})

	method, err := localsearch.ParseMethod("greedy-edges")
	if err != nil {
		panic(err)
	}
	out, err := localsearch.Descend(method, in, init, rand.New(rand.NewSource(7)))
	if err != nil {
		panic(err)
	}
	fmt.Println(move.Objective(in, init), "→", move.Objective(in, out))
	// Output:
	// 72 → 19
}
