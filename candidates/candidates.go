// Package candidates — k-nearest candidate lists used to prune move generation.
//
// For every point i the catalog keeps the k points j ≠ i with the smallest
// combined score distance[i][j] + cost[j], ascending. An edge {a,b} is a
// candidate edge when b is in a's list or a is in b's list.
//
// Design:
//   - Lists are built once per (instance, k) and are read-only afterwards,
//     so a catalog can be shared by concurrent descents.
//   - Partner sets (the union of a node's own list and the lists that name
//     it) are stored both as roaring bitmaps for IsCandidateEdge and as
//     sorted slices for deterministic iteration. A lookup is a container
//     binary search, O(log c) for c partners.
//   - Ties on the combined score are broken by the lower point index.
//
// Complexity: Build is O(n² log n) time and O(n·k) space.
package candidates

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/prizecycle/instance"
)

// DefaultK is the candidate list length used when callers do not choose one.
const DefaultK = 10

// Catalog holds the nearest lists and derived partner sets of one instance.
type Catalog struct {
	k        int
	nearest  [][]int
	partners [][]int
	sets     []*roaring.Bitmap
}

// scored pairs a point with its combined score for sorting.
type scored struct {
	score int64
	node  int
}

// Build computes the catalog for in with lists of length min(k, n-1).
// It panics when k < 1.
func Build(in *instance.Instance, k int) *Catalog {
	if k < 1 {
		panic(fmt.Sprintf("candidates: k=%d, want ≥ 1", k))
	}
	n := in.N()
	if k > n-1 {
		k = n - 1
	}

	c := &Catalog{
		k:        k,
		nearest:  make([][]int, n),
		partners: make([][]int, n),
		sets:     make([]*roaring.Bitmap, n),
	}
	var (
		i, j int
		buf  = make([]scored, 0, n)
	)
	for i = 0; i < n; i++ {
		c.sets[i] = roaring.New()
	}
	for i = 0; i < n; i++ {
		buf = buf[:0]
		for j = 0; j < n; j++ {
			if j != i {
				buf = append(buf, scored{score: in.Dist(i, j) + in.Cost(j), node: j})
			}
		}
		slices.SortFunc(buf, func(a, b scored) int {
			if a.score != b.score {
				if a.score < b.score {
					return -1
				}
				return 1
			}
			return a.node - b.node
		})

		list := make([]int, k)
		for j = 0; j < k; j++ {
			list[j] = buf[j].node
			c.sets[i].Add(uint32(buf[j].node))
			c.sets[buf[j].node].Add(uint32(i))
		}
		c.nearest[i] = list
	}
	for i = 0; i < n; i++ {
		arr := c.sets[i].ToArray()
		p := make([]int, len(arr))
		for j = range arr {
			p[j] = int(arr[j])
		}
		c.partners[i] = p
	}

	return c
}

// K returns the effective list length after clamping.
func (c *Catalog) K() int { return c.k }

// N returns the number of points covered.
func (c *Catalog) N() int { return len(c.nearest) }

// Nearest returns point i's list, ascending by combined score. Read-only.
func (c *Catalog) Nearest(i int) []int { return c.nearest[i] }

// Partners returns every j such that {i,j} is a candidate edge, ascending by
// index. Read-only.
func (c *Catalog) Partners(i int) []int { return c.partners[i] }

// IsCandidateEdge reports whether b is in a's list or a is in b's list.
func (c *Catalog) IsCandidateEdge(a, b int) bool {
	return c.sets[a].Contains(uint32(b))
}
