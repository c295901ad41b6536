package sixdegrees

import "github.com/projectdiscovery/utils/errkit"

var (
	// ErrVertexNotFound is returned when a vertex id is not part of the graph
	ErrVertexNotFound = errkit.New("vertex not found in graph")
	// ErrInvalidDepth is returned for bfs depths smaller than 1
	ErrInvalidDepth = errkit.New("bfs depth must be at least 1")
	// ErrUndefinedStatistic marks statistics that cannot be computed for the
	// given graph size (zero vertices, a single vertex)
	ErrUndefinedStatistic = errkit.New("statistic is undefined for this graph")
	// ErrEmptyNeighborhoods is returned by Jaccard when both sets are empty
	ErrEmptyNeighborhoods = errkit.New("jaccard similarity of two empty sets is undefined")
	// ErrEmptyHistogram is returned when exporting an empty frequency vector
	ErrEmptyHistogram = errkit.New("no frequencies to export")
	// ErrNoEdges is returned when the input did not contain a single edge
	ErrNoEdges = errkit.New("no edges found in input")
)
