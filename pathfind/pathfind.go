// Package pathfind implements breadth-first shortest-path search over the
// diagnosis graph, selecting by hop count and pricing by edge weight.
package pathfind

import "github.com/katalvlaran/diagraph/core"

// walker holds the mutable state of one search: a FIFO frontier of
// partial paths and the set of already-expanded tail vertices.
type walker struct {
	graph   *core.Graph
	queue   [][]string
	visited map[string]bool
}

// ShortestPath returns a fewest-hops path from start to end, both
// endpoints inclusive. Returns nil when either name is unknown or no
// route exists; returns [start] when start == end.
//
// A vertex is marked visited only when dequeued as a path tail, so
// competing equal-length partial paths coexist in the frontier until one
// of them reaches end first. Neighbor expansion follows core.Neighbors
// order; callers get a deterministic path, but not a canonical one when
// several shortest paths exist.
func ShortestPath(g *core.Graph, start, end string) []string {
	if g == nil || !g.HasVertex(start) || !g.HasVertex(end) {
		return nil
	}

	w := &walker{
		graph:   g,
		queue:   [][]string{{start}},
		visited: make(map[string]bool, g.VertexCount()),
	}

	return w.search(end)
}

// search processes the frontier until end is reached or it drains.
func (w *walker) search(end string) []string {
	for len(w.queue) > 0 {
		path := w.dequeue()
		tail := path[len(path)-1]
		if tail == end {
			return path
		}
		if w.visited[tail] {
			continue
		}
		w.visited[tail] = true
		w.extend(path, tail)
	}

	return nil
}

// dequeue pops the oldest partial path off the frontier.
func (w *walker) dequeue() []string {
	path := w.queue[0]
	w.queue = w.queue[1:]

	return path
}

// extend enqueues one lengthened copy of path per neighbor of tail.
func (w *walker) extend(path []string, tail string) {
	neighbors, err := w.graph.Neighbors(tail)
	if err != nil {
		return // tail came off a stored path; it cannot be absent
	}
	for _, nbr := range neighbors {
		next := make([]string, len(path), len(path)+1)
		copy(next, path)
		w.queue = append(w.queue, append(next, nbr))
	}
}

// Weight sums the edge weights over every consecutive pair of path.
// Empty and single-vertex paths weigh 0.0; a non-adjacent pair inside
// the path contributes WeightOf's 0.0 sentinel.
func Weight(g *core.Graph, path []string) float64 {
	if g == nil {
		return 0
	}
	var total float64
	for i := 0; i+1 < len(path); i++ {
		total += g.WeightOf(path[i], path[i+1])
	}

	return total
}
