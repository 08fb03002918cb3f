package gridgraph

import (
	"container/list"
)

// MinBreach finds a route from one cell to another that crosses the fewest
// obstacles. Entering an obstacle cell costs 1, entering a passable cell
// costs 0; an obstacle at `from` itself counts as well. Returns the cell
// sequence (including both endpoints) and the number of obstacles on it.
// A cost of 0 means the cells are already connected.
//
// Behavior:
//  1. Validate both positions.
//  2. 0–1 BFS from `from`:
//     • Moving into a passable cell → cost 0 (push front)
//     • Moving into an obstacle     → cost 1 (push back)
//  3. Stop when `to` is popped.
//  4. Reconstruct path via predecessors.
//
// Complexity: O(W·H) time, O(W·H) memory.
func (gg *GridGraph) MinBreach(from, to Position) (path []Position, cost int, err error) {
	src, err := gg.Index(from)
	if err != nil {
		return nil, 0, err
	}
	dst, err := gg.Index(to)
	if err != nil {
		return nil, 0, err
	}

	dist := make([]int, len(gg.nodes))
	prev := make([]int, len(gg.nodes))
	for i := range dist {
		dist[i] = Infinity
		prev[i] = NoPred
	}

	dq := list.New()
	dist[src] = gg.breachCost(src)
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		for _, edge := range gg.edges[u] {
			v := edge.To
			step := gg.breachCost(v)
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// The lattice is always connected, so dst has been reached.
	for at := dst; at != NoPred; at = prev[at] {
		path = append(path, gg.Position(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}

func (gg *GridGraph) breachCost(i int) int {
	if gg.nodes[i].Obstacle {
		return 1
	}
	return 0
}
