package sixdegrees

import (
	"fmt"
	"slices"

	"github.com/tidwall/btree"
)

// Edge is a single (from, to) pair read from an edge list.
// Direction is discarded once the edge is inserted into a Graph.
type Edge struct {
	From uint32 `json:"from"`
	To   uint32 `json:"to"`
}

// Graph is an immutable undirected adjacency built once from an edge list.
//
// Vertices are stored in an arena indexed by a dense int32 position,
// assigned in ascending vertex id order. Each position owns a sorted,
// duplicate free slice of neighbor positions.
type Graph struct {
	ids   []uint32         // position -> vertex id (ascending)
	index map[uint32]int32 // vertex id -> position
	adj   [][]int32        // position -> sorted neighbor positions
	edges int
}

// Build creates a graph from edges, inserting both directions of every edge.
// A self loop (a,a) makes a its own neighbor once. An empty edge list yields
// an empty graph.
func Build(edges []Edge) *Graph {
	order := btree.NewBTreeG[uint32](func(a, b uint32) bool { return a < b })
	for _, e := range edges {
		order.Set(e.From)
		order.Set(e.To)
	}

	g := &Graph{
		ids:   make([]uint32, 0, order.Len()),
		index: make(map[uint32]int32, order.Len()),
	}
	order.Scan(func(id uint32) bool {
		g.index[id] = int32(len(g.ids))
		g.ids = append(g.ids, id)
		return true
	})

	g.adj = make([][]int32, len(g.ids))
	for _, e := range edges {
		a, b := g.index[e.From], g.index[e.To]
		g.adj[a] = append(g.adj[a], b)
		g.adj[b] = append(g.adj[b], a)
	}
	for i, nbrs := range g.adj {
		slices.Sort(nbrs)
		nbrs = slices.Clip(slices.Compact(nbrs))
		g.adj[i] = nbrs
		for _, n := range nbrs {
			// count each undirected adjacency once, self loops included
			if n >= int32(i) {
				g.edges++
			}
		}
	}
	return g
}

// VertexCount returns the number of distinct vertices
func (g *Graph) VertexCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of distinct undirected adjacencies
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Vertices returns all vertex ids in ascending order.
// This is the iteration order used by every scan over the graph.
func (g *Graph) Vertices() []uint32 {
	return slices.Clone(g.ids)
}

// HasVertex reports whether id appeared in the edge list
func (g *Graph) HasVertex(id uint32) bool {
	_, ok := g.index[id]
	return ok
}

// Neighbors returns the neighbor ids of a vertex in ascending order
func (g *Graph) Neighbors(id uint32) ([]uint32, error) {
	pos, err := g.lookup(id)
	if err != nil {
		return nil, err
	}
	return g.idsOf(g.adj[pos]), nil
}

// Degree returns the size of the neighbor set of a vertex
func (g *Graph) Degree(id uint32) (int, error) {
	pos, err := g.lookup(id)
	if err != nil {
		return 0, err
	}
	return len(g.adj[pos]), nil
}

func (g *Graph) lookup(id uint32) (int32, error) {
	pos, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	return pos, nil
}

// idsOf maps arena positions back to vertex ids, preserving order
func (g *Graph) idsOf(positions []int32) []uint32 {
	out := make([]uint32, len(positions))
	for i, p := range positions {
		out[i] = g.ids[p]
	}
	return out
}
