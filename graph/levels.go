// levels.go — BFS-based traversal helpers: level assignment consumed
// by tree propagation, and diameter telemetry consumed by report.Row.
// Adapted from the teacher's slice-queue BFS (bfs.go): same FIFO-by-
// slicing idiom, index-addressed instead of string-ID-addressed since
// a frozen Graph's nodes are already densely numbered.
package graph

// Levels assigns each node a propagation level by multi-source BFS
// over the undirected view of the edge set, seeded from every node of
// total degree <= 1 (the leaf frontier of the underlying tree): a leaf
// is level 0, and every other node's level is its BFS distance from
// that frontier. This is the level assignment a two-pass forward/
// backward sum-product sweep needs to be exact on a tree: nodes at the
// same level have no edge between them, and every edge connects
// adjacent levels, so processing level order 0..max and back produces
// each node's message only after everything it depends on is ready.
//
// Levels returns ErrLevelsDidNotConverge if the BFS leaves any node
// unreached (no degree<=1 frontier exists to seed from, or it doesn't
// reach everywhere), which can only happen when the graph contains a
// cycle. Not every cycle is caught: a cyclic graph whose degree<=1
// frontier reaches every node still gets levels and no error. Loopy,
// not Tree, is the right algorithm for cyclic graphs.
func (g *Graph) Levels() ([]int, error) {
	n := g.TotalNumVertices
	levels := make([]int, n)
	for i := range levels {
		levels[i] = -1
	}

	degree := make([]int, n)
	adj := make([][]int, n)
	for _, e := range g.Edges {
		degree[e.SrcIndex]++
		degree[e.DestIndex]++
		adj[e.SrcIndex] = append(adj[e.SrcIndex], e.DestIndex)
		adj[e.DestIndex] = append(adj[e.DestIndex], e.SrcIndex)
	}

	var queue []int
	for i := 0; i < n; i++ {
		if degree[i] <= 1 {
			levels[i] = 0
			queue = append(queue, i)
		}
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, nbr := range adj[v] {
			if levels[nbr] == -1 {
				levels[nbr] = levels[v] + 1
				queue = append(queue, nbr)
			}
		}
	}

	for i := 0; i < n; i++ {
		if levels[i] == -1 {
			return nil, ErrLevelsDidNotConverge
		}
	}
	return levels, nil
}

// Diameter estimates the graph's diameter by running an unweighted BFS
// (over the undirected view of the edge set) from every node and
// taking the maximum eccentricity observed, matching the iterated-BFS
// technique the original driver used for its network report.
func (g *Graph) Diameter() int {
	n := g.TotalNumVertices
	if n == 0 {
		return 0
	}

	adj := make([][]int, n)
	for _, e := range g.Edges {
		adj[e.SrcIndex] = append(adj[e.SrcIndex], e.DestIndex)
		adj[e.DestIndex] = append(adj[e.DestIndex], e.SrcIndex)
	}

	best := 0
	dist := make([]int, n)
	for start := 0; start < n; start++ {
		for i := range dist {
			dist[i] = -1
		}
		dist[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, nbr := range adj[v] {
				if dist[nbr] == -1 {
					dist[nbr] = dist[v] + 1
					if dist[nbr] > best {
						best = dist[nbr]
					}
					queue = append(queue, nbr)
				}
			}
		}
	}
	return best
}
