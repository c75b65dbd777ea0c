// Package pathfind provides hop-count shortest-path search and path-weight
// summation over the diagnosis graph.
//
// What
//
//   - ShortestPath runs breadth-first search from one symptom to another,
//     treating the graph as unweighted for path selection: fewest edges wins,
//     edge weights play no part in choosing the route.
//   - Weight folds edge weights back in after selection, summing WeightOf
//     over every consecutive pair of the chosen path.
//
// Why
//
//   - The scoring heuristic needs the diseases that lie between reported
//     symptoms, and the weighted length of the corridor connecting them.
//     Hop-count search finds the corridor; Weight prices it.
//
// Determinism
//
//	The frontier is a FIFO queue of partial paths. A vertex is marked
//	visited when dequeued as the tail of some path, not when first enqueued,
//	so several competing equal-length partial paths can coexist in the
//	frontier; the first to reach the target wins. Ties between equal-hop
//	routes follow core.Neighbors order (first-edge-added), making results
//	reproducible for a fixed build order. Only some shortest path is
//	guaranteed, never a canonical one.
//
// Complexity (V = vertices, E = edges, L = result path length)
//
//   - Time:   O(V + E) queue processing, O(V*L) path copying worst case
//   - Memory: O(V*L) for the frontier of partial paths
//
// Usage
//
//	path := pathfind.ShortestPath(g, "Headache", "Fever")
//	if len(path) == 0 {
//	    // unknown endpoint or no route between them
//	}
//	total := pathfind.Weight(g, path)
//
// Errors
//
//	None. Unknown endpoints and unreachable pairs are expected outcomes in
//	normal operation, reported as a nil path; Weight returns 0.0 for empty
//	and single-vertex paths. Construction-time problems surface much
//	earlier, from core and builder.
package pathfind
