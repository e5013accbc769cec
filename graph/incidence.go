// incidence.go — CSR incidence array construction, mirroring the
// original's set_up_src_nodes_to_edges / set_up_dest_nodes_to_edges.
package graph

// BuildSrcIncidence populates SrcNodesToEdges: a CSR array whose first
// TotalNumVertices entries are per-node offsets into the remaining
// CurrentNumEdges entries, which list (in ascending edge-index order)
// every edge whose SrcIndex is that node. Requires every declared
// vertex to have been added first.
func (g *Graph) BuildSrcIncidence() error {
	if g.CurrentNumVertices != g.TotalNumVertices {
		return ErrVerticesIncomplete
	}
	n, e := g.TotalNumVertices, g.CurrentNumEdges
	arr := make([]int, n+e)
	pos := n
	for i := 0; i < n; i++ {
		arr[i] = pos
		for _, edge := range g.Edges {
			if edge.SrcIndex == i {
				arr[pos] = edge.Index
				pos++
			}
		}
	}
	g.SrcNodesToEdges = arr
	return nil
}

// BuildDestIncidence is BuildSrcIncidence's mirror image, indexing
// edges by DestIndex instead of SrcIndex.
func (g *Graph) BuildDestIncidence() error {
	if g.CurrentNumVertices != g.TotalNumVertices {
		return ErrVerticesIncomplete
	}
	n, e := g.TotalNumVertices, g.CurrentNumEdges
	arr := make([]int, n+e)
	pos := n
	for i := 0; i < n; i++ {
		arr[i] = pos
		for _, edge := range g.Edges {
			if edge.DestIndex == i {
				arr[pos] = edge.Index
				pos++
			}
		}
	}
	g.DestNodesToEdges = arr
	return nil
}

func (g *Graph) rangeIn(arr []int, i int) (start, end int) {
	start = arr[i]
	if i+1 == g.TotalNumVertices {
		end = g.TotalNumVertices + g.CurrentNumEdges
	} else {
		end = arr[i+1]
	}
	return
}

// SrcEdges returns the indices of every edge whose SrcIndex is i.
// BuildSrcIncidence must have been called first.
func (g *Graph) SrcEdges(i int) []int {
	start, end := g.rangeIn(g.SrcNodesToEdges, i)
	return g.SrcNodesToEdges[start:end]
}

// DestEdges returns the indices of every edge whose DestIndex is i.
// BuildDestIncidence must have been called first.
func (g *Graph) DestEdges(i int) []int {
	start, end := g.rangeIn(g.DestNodesToEdges, i)
	return g.DestNodesToEdges[start:end]
}
