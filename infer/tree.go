// tree.go — level-ordered two-pass sum-product propagation for
// tree-shaped (acyclic) networks, ported from original_source's
// send_from_leaf_nodes/propagate/propagate_node, restructured around
// graph.Levels's batch level lists instead of the C source's pair of
// FIFO queues.
package infer

import (
	"fmt"

	"github.com/arlenvance/beliefprop/graph"
)

// incidentEdge records one edge touching a node, the level of the
// node at its other end, and which endpoint this node is — Send
// applies when this node is the edge's source, SendBackward when it
// is the destination.
type incidentEdge struct {
	edge       *graph.Edge
	otherLevel int
	isSrc      bool
}

// Tree runs one forward (ascending level order) and one backward
// (descending level order) sweep over g, then marginalizes every
// node's belief in place, combining its prior/evidence state with
// every message now resting on its incident edges.
//
// Forward: each node combines messages already sitting on edges to
// lower-level neighbors with its own local state, then pushes the
// result out to higher-level neighbors — collecting information from
// the leaf frontier inward. Since a node's lower-level neighbors and
// its higher-level send targets never overlap, this combine is safe
// without excluding anything.
//
// Backward undoes the one-sidedness of that: processing in descending
// order, each node sends a distinct message to every lower-level
// neighbor, each one combining its own local state with every OTHER
// incident edge's current message (including the higher-level ones
// freshly computed earlier this same pass) but excluding the message
// on the very edge it is about to send — a node must never echo a
// neighbor's own contribution back at it. This is the one place this
// package departs from original_source/src/graph/graph.c's
// propagate_node, which floods one shared combined buffer to every
// outgoing edge; that shortcut only avoids double-counting because of
// the C source's single unified visit order (a node sends exactly once,
// to whichever neighbors aren't yet visited). Splitting the sweep into
// two level-ordered passes breaks that invariant, so the backward pass
// recomputes a proper leave-one-out belief per outgoing edge instead.
func Tree(g *graph.Graph) (TreeResult, error) {
	if g.TotalNumVertices == 0 {
		return TreeResult{}, ErrEmptyGraph
	}

	levels, err := g.Levels()
	if err != nil {
		return TreeResult{}, fmt.Errorf("%w: %v", ErrCycleDetected, err)
	}

	maxLevel := 0
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
	}
	byLevel := make([][]int, maxLevel+1)
	for i, l := range levels {
		byLevel[l] = append(byLevel[l], i)
	}

	incident := buildIncidence(g, levels)

	g.ResetVisited()
	for lvl := 0; lvl <= maxLevel; lvl++ {
		for _, v := range byLevel[lvl] {
			sweepForward(g, incident, v, levels[v])
			g.Visited[v] = true
		}
	}

	g.ResetVisited()
	for lvl := maxLevel; lvl >= 0; lvl-- {
		for _, v := range byLevel[lvl] {
			sweepBackward(g, incident, v, levels[v])
			g.Visited[v] = true
		}
	}

	for i, node := range g.Nodes {
		factors := [][]float64{node.States}
		for _, inc := range incident[i] {
			factors = append(factors, inc.edge.Message)
		}
		node.States = Marginalize(Combine(factors...))
	}

	return TreeResult{Levels: levels}, nil
}

func buildIncidence(g *graph.Graph, levels []int) [][]incidentEdge {
	out := make([][]incidentEdge, g.TotalNumVertices)
	for _, e := range g.Edges {
		out[e.SrcIndex] = append(out[e.SrcIndex], incidentEdge{edge: e, otherLevel: levels[e.DestIndex], isSrc: true})
		out[e.DestIndex] = append(out[e.DestIndex], incidentEdge{edge: e, otherLevel: levels[e.SrcIndex], isSrc: false})
	}
	return out
}

// sweepForward combines v's local state with messages already sitting
// on edges to lower-level neighbors, then pushes the single resulting
// belief out to every higher-level neighbor. The lower/higher split
// keeps combine and send targets disjoint, so no leave-one-out is
// needed here.
func sweepForward(g *graph.Graph, incident [][]incidentEdge, v, level int) {
	node := g.Nodes[v]
	factors := [][]float64{node.States}
	for _, inc := range incident[v] {
		if inc.otherLevel < level {
			factors = append(factors, inc.edge.Message)
		}
	}
	belief := Marginalize(Combine(factors...))

	for _, inc := range incident[v] {
		if inc.otherLevel <= level {
			continue
		}
		send(inc, belief)
	}
}

// sweepBackward sends a distinct message to every lower-level
// neighbor, each one combining v's local state with every OTHER
// incident edge's current message but leaving out the edge the message
// is about to travel on, so a neighbor never receives its own
// contribution reflected back.
func sweepBackward(g *graph.Graph, incident [][]incidentEdge, v, level int) {
	node := g.Nodes[v]
	for _, target := range incident[v] {
		if target.otherLevel >= level {
			continue
		}
		factors := [][]float64{node.States}
		for _, inc := range incident[v] {
			if inc.edge == target.edge {
				continue
			}
			factors = append(factors, inc.edge.Message)
		}
		belief := Marginalize(Combine(factors...))
		send(target, belief)
	}
}

func send(inc incidentEdge, belief []float64) {
	if inc.isSrc {
		inc.edge.Message = Send(inc.edge, belief)
	} else {
		inc.edge.Message = SendBackward(inc.edge, belief)
	}
}
