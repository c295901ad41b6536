package sixdegrees

import (
	"context"
)

// DistanceSummary aggregates shortest path distances over all ordered
// pairs of distinct, mutually reachable vertices
type DistanceSummary struct {
	// Average is TotalDistance / ReachablePairs, 0 when no pair is reachable
	Average        float64 `json:"average"`
	TotalDistance  int64   `json:"total_distance"`
	ReachablePairs int64   `json:"reachable_pairs"`
	// Diameter is the largest finite distance seen (per component maximum)
	Diameter int `json:"diameter"`
}

// DistancesFrom returns the shortest distance from start to every vertex
// reachable from it. start itself and vertices of other components are absent.
func DistancesFrom(g *Graph, start uint32) (map[uint32]int, error) {
	src, err := g.lookup(start)
	if err != nil {
		return nil, err
	}
	distances := map[uint32]int{}
	newFrontier(g.VertexCount()).walk(g, src, 0, func(pos, d int32) {
		distances[g.ids[pos]] = int(d)
	})
	delete(distances, start)
	return distances, nil
}

// AverageDistance returns the mean shortest path distance over all ordered
// reachable pairs. Each unordered pair is counted from both ends, which
// doubles sums and counts alike. Returns 0 when no pair is reachable.
func AverageDistance(ctx context.Context, g *Graph, concurrency int) (float64, error) {
	summary, err := ProfileDistances(ctx, g, concurrency)
	if err != nil {
		return 0, err
	}
	return summary.Average, nil
}

// ProfileDistances runs an unbounded bfs from every vertex and folds the
// distances into a DistanceSummary
func ProfileDistances(ctx context.Context, g *Graph, concurrency int) (*DistanceSummary, error) {
	n := g.VertexCount()
	type partial struct {
		sum, pairs int64
		farthest   int32
	}
	partials := make([]partial, n)
	err := parallelFor(ctx, n, concurrency, func() func(int) {
		f := newFrontier(n)
		return func(i int) {
			p := partial{}
			f.walk(g, int32(i), 0, func(_, d int32) {
				if d == 0 {
					return
				}
				p.sum += int64(d)
				p.pairs++
				if d > p.farthest {
					p.farthest = d
				}
			})
			partials[i] = p
		}
	})
	if err != nil {
		return nil, err
	}

	summary := &DistanceSummary{}
	for _, p := range partials {
		summary.TotalDistance += p.sum
		summary.ReachablePairs += p.pairs
		if int(p.farthest) > summary.Diameter {
			summary.Diameter = int(p.farthest)
		}
	}
	if summary.ReachablePairs > 0 {
		summary.Average = float64(summary.TotalDistance) / float64(summary.ReachablePairs)
	}
	return summary, nil
}
