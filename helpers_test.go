package sixdegrees

import (
	"math/rand"
)

// pathEdges connects vertex i to i+1 for i in [1,n)
func pathEdges(n int) []Edge {
	edges := make([]Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, Edge{From: uint32(i), To: uint32(i + 1)})
	}
	return edges
}

// randomEdges returns a reproducible sparse graph with some duplicate
// edges and self loops
func randomEdges(vertices, count int, seed int64) []Edge {
	rng := rand.New(rand.NewSource(seed))
	edges := make([]Edge, 0, count)
	for i := 0; i < count; i++ {
		edges = append(edges, Edge{
			From: uint32(rng.Intn(vertices)),
			To:   uint32(rng.Intn(vertices)),
		})
	}
	return edges
}
