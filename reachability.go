package sixdegrees

import (
	"context"
	"fmt"
	"slices"
)

// DefaultDepth is the separation measured by SixthDegreeSet and SixthDegreeStats
const DefaultDepth = 6

// DegreeStats is the per-vertex distribution of exact-depth reachability
type DegreeStats struct {
	Depth int `json:"depth"`
	// TotalPathCount sums every (vertex, vertex at Depth) discovery.
	// A mutual pair is discovered from both ends and counted twice.
	TotalPathCount int `json:"total_path_count"`
	// PerVertexCounts follows Graph.Vertices order
	PerVertexCounts []int `json:"per_vertex_counts"`
	Mean            float64 `json:"mean"`
	// ProportionOfPairs is TotalPathCount / (V(V-1)/2)
	ProportionOfPairs float64 `json:"proportion_of_pairs"`
	Variance          float64 `json:"variance"`
	StdDeviation      float64 `json:"std_deviation"`
	// Frequencies[k] is the number of vertices with exactly k vertices at Depth
	Frequencies []int `json:"frequencies"`
}

// SixthDegreeSet returns the ids of all vertices whose shortest distance
// from start is exactly 6, in ascending order.
func SixthDegreeSet(g *Graph, start uint32) ([]uint32, error) {
	return ExactDepthSet(g, start, DefaultDepth)
}

// ExactDepthSet returns the ids of all vertices whose shortest distance
// from start is exactly depth, in ascending order. start is never included.
func ExactDepthSet(g *Graph, start uint32, depth int) ([]uint32, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	src, err := g.lookup(start)
	if err != nil {
		return nil, err
	}
	var found []int32
	newFrontier(g.VertexCount()).walk(g, src, int32(depth), func(pos, d int32) {
		if d == int32(depth) {
			found = append(found, pos)
		}
	})
	slices.Sort(found)
	return g.idsOf(found), nil
}

// SixthDegreeStats computes DegreeStats for depth 6.
// See ExactDepthStats for the error contract.
func SixthDegreeStats(ctx context.Context, g *Graph, concurrency int) (*DegreeStats, error) {
	return ExactDepthStats(ctx, g, DefaultDepth, concurrency)
}

// ExactDepthStats counts, for every vertex, the vertices at exactly depth
// and aggregates the counts.
//
// The returned stats are non-nil unless depth is invalid or ctx is done.
// On a graph with zero vertices every field is zero and the error wraps
// ErrUndefinedStatistic; with a single vertex ProportionOfPairs is zero and
// the error wraps ErrUndefinedStatistic while the other fields are valid.
func ExactDepthStats(ctx context.Context, g *Graph, depth, concurrency int) (*DegreeStats, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	n := g.VertexCount()
	stats := &DegreeStats{
		Depth:           depth,
		PerVertexCounts: make([]int, n),
		Frequencies:     []int{},
	}
	limit := int32(depth)
	err := parallelFor(ctx, n, concurrency, func() func(int) {
		f := newFrontier(n)
		return func(i int) {
			count := 0
			f.walk(g, int32(i), limit, func(_, d int32) {
				if d == limit {
					count++
				}
			})
			stats.PerVertexCounts[i] = count
		}
	})
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(stats.PerVertexCounts)
	if err != nil {
		return stats, err
	}
	stats.TotalPathCount = summary.Total
	stats.Mean = summary.Mean
	stats.Variance = summary.Variance
	stats.StdDeviation = summary.StdDeviation
	stats.Frequencies = Frequencies(stats.PerVertexCounts)
	stats.ProportionOfPairs, err = ProportionOfPairs(summary.Total, n)
	return stats, err
}
