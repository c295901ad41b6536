package sixdegrees

// frontier is the per-goroutine bfs state: depth per arena position
// (-1 when unvisited) and the queue of visited positions.
// Every visited position is enqueued exactly once, so the queue doubles
// as the list of entries to clear before the next traversal.
type frontier struct {
	depth []int32
	queue []int32
}

func newFrontier(size int) *frontier {
	f := &frontier{
		depth: make([]int32, size),
		queue: make([]int32, 0, 64),
	}
	for i := range f.depth {
		f.depth[i] = -1
	}
	return f
}

func (f *frontier) reset() {
	for _, v := range f.queue {
		f.depth[v] = -1
	}
	f.queue = f.queue[:0]
}

// walk runs a breadth first search from src and calls visit for every
// dequeued position with its shortest distance from src (src itself is
// visited at depth 0). When limit > 0, positions at depth == limit are
// visited but not expanded. Neighbors are marked visited when enqueued.
func (f *frontier) walk(g *Graph, src int32, limit int32, visit func(pos, depth int32)) {
	f.reset()
	f.depth[src] = 0
	f.queue = append(f.queue, src)

	for head := 0; head < len(f.queue); head++ {
		cur := f.queue[head]
		d := f.depth[cur]
		visit(cur, d)
		if limit > 0 && d == limit {
			continue
		}
		for _, n := range g.adj[cur] {
			if f.depth[n] < 0 {
				f.depth[n] = d + 1
				f.queue = append(f.queue, n)
			}
		}
	}
}
