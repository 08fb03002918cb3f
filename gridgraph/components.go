package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells under
// 4-directional connectivity. Returns a slice of components; each component
// is a slice of node indices (row-major) in BFS discovery order, and the
// components themselves are ordered by their lowest index.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for seen flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.nodes))
	var comps [][]int

	for i0 := range gg.nodes {
		if gg.nodes[i0].Obstacle || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, e := range gg.edges[queue[qi]] {
				if gg.nodes[e.To].Obstacle || seen[e.To] {
					continue
				}
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Links counts undirected links between pairs of orthogonally adjacent
// passable cells. On a perfect maze Links() == passable cells - 1.
func (gg *GridGraph) Links() int {
	links := 0
	for i := range gg.nodes {
		if gg.nodes[i].Obstacle {
			continue
		}
		for _, e := range gg.edges[i] {
			if e.To > i && !gg.nodes[e.To].Obstacle {
				links++
			}
		}
	}
	return links
}
