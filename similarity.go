package sixdegrees

import (
	"context"
)

// Pair is a vertex pair and the Jaccard coefficient of their neighborhoods.
// Found is false when no pair improved on the initial sentinel, in which
// case A and B are zero.
type Pair struct {
	A           uint32  `json:"a"`
	B           uint32  `json:"b"`
	Coefficient float64 `json:"coefficient"`
	Found       bool    `json:"found"`
}

// ExtremePairsResult holds the outcome of the exhaustive pairwise scan
type ExtremePairsResult struct {
	// MostSimilar has the largest coefficient (sentinel 0,0,0.0)
	MostSimilar Pair `json:"most_similar"`
	// MostDissimilar has the smallest coefficient greater than zero
	// (sentinel 0,0,1.0). Pairs without a common neighbor are never picked.
	MostDissimilar Pair `json:"most_dissimilar"`
	// ComparedPairs is the number of pairs whose coefficient was defined
	ComparedPairs int64 `json:"compared_pairs"`
}

func newExtremePairsResult() *ExtremePairsResult {
	return &ExtremePairsResult{
		MostSimilar:    Pair{Coefficient: 0},
		MostDissimilar: Pair{Coefficient: 1},
	}
}

// offer applies the scan rules to a candidate pair. Comparisons are strict
// so the first pair seen wins ties.
func (r *ExtremePairsResult) offer(p Pair) {
	if p.Coefficient > r.MostSimilar.Coefficient {
		r.MostSimilar = p
	}
	if p.Coefficient < r.MostDissimilar.Coefficient && p.Coefficient > 0 {
		r.MostDissimilar = p
	}
}

// merge folds a later partial result into r, keeping first-seen tie breaking
func (r *ExtremePairsResult) merge(other *ExtremePairsResult) {
	if other.MostSimilar.Found && other.MostSimilar.Coefficient > r.MostSimilar.Coefficient {
		r.MostSimilar = other.MostSimilar
	}
	if other.MostDissimilar.Found && other.MostDissimilar.Coefficient < r.MostDissimilar.Coefficient {
		r.MostDissimilar = other.MostDissimilar
	}
	r.ComparedPairs += other.ComparedPairs
}

// Jaccard returns |A ∩ B| / |A ∪ B|. The slices are read as sets, so
// repeated ids count once. Both sets empty returns ErrEmptyNeighborhoods.
func Jaccard(a, b []uint32) (float64, error) {
	setA := make(map[uint32]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[uint32]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}
	if len(setA) == 0 && len(setB) == 0 {
		return 0, ErrEmptyNeighborhoods
	}
	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union), nil
}

// jaccardSorted is Jaccard over sorted arena positions using a merge walk.
// ok is false when both sets are empty.
func jaccardSorted(a, b []int32) (coefficient float64, ok bool) {
	if len(a) == 0 && len(b) == 0 {
		return 0, false
	}
	intersection := 0
	for i, j := 0, 0; i < len(a) && j < len(b); {
		switch {
		case a[i] == b[j]:
			intersection++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union), true
}

// ExtremePairs compares the neighborhoods of every unordered pair of
// distinct vertices exactly once, iterating positions i < j over
// Graph.Vertices order, and returns the most and least similar pair.
//
// Rows (fixed i) are independent and may run on concurrency goroutines;
// per-row winners are merged in row order so the result matches a
// sequential scan exactly.
func ExtremePairs(ctx context.Context, g *Graph, concurrency int) (*ExtremePairsResult, error) {
	n := g.VertexCount()
	rows := make([]*ExtremePairsResult, n)
	err := parallelFor(ctx, n, concurrency, func() func(int) {
		return func(i int) {
			rows[i] = g.scanRow(int32(i))
		}
	})
	if err != nil {
		return nil, err
	}

	result := newExtremePairsResult()
	for _, row := range rows {
		result.merge(row)
	}
	return result, nil
}

func (g *Graph) scanRow(i int32) *ExtremePairsResult {
	row := newExtremePairsResult()
	for j := i + 1; j < int32(len(g.ids)); j++ {
		c, ok := jaccardSorted(g.adj[i], g.adj[j])
		if !ok {
			continue
		}
		row.ComparedPairs++
		row.offer(Pair{A: g.ids[i], B: g.ids[j], Coefficient: c, Found: true})
	}
	return row
}
