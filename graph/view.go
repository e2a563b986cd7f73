package graph

import "tictac/game"

// Pair is an undirected edge between two visible nodes. I and J are their
// positions in the visible subset, with I < J.
type Pair struct {
	A, B *game.Node
	I, J int
}

// View restricts the neighbor index to a visible subset. It changes whenever
// the visible set does and is rebuilt every frame.
type View struct {
	Nodes []*game.Node
	// Neighbors[i] holds the positions within Nodes of the visible neighbors of Nodes[i]
	Neighbors [][]int
	positions map[*game.Node]int
}

// View computes the visible-neighbor index of visible.
func (g *Graph) View(visible []*game.Node) *View {
	v := &View{
		Nodes:     visible,
		Neighbors: make([][]int, len(visible)),
		positions: make(map[*game.Node]int, len(visible)),
	}
	for i, n := range visible {
		if _, ok := v.positions[n]; !ok {
			v.positions[n] = i
		}
	}
	for i, n := range visible {
		gi := g.Index(n)
		if gi == -1 {
			continue
		}
		for _, j := range g.neighborIndices[gi] {
			if p, ok := v.positions[g.vertices[j]]; ok {
				v.Neighbors[i] = append(v.Neighbors[i], p)
			}
		}
	}
	return v
}

// Position returns the position of n in the visible subset, or -1.
func (v *View) Position(n *game.Node) int {
	if i, ok := v.positions[n]; ok {
		return i
	}
	return -1
}

// Pairs returns every visible edge once, ordered by the position of its first node.
func (v *View) Pairs() []Pair {
	pairs := []Pair{}
	for i, neighbors := range v.Neighbors {
		for _, j := range neighbors {
			if i < j {
				pairs = append(pairs, Pair{A: v.Nodes[i], B: v.Nodes[j], I: i, J: j})
			}
		}
	}
	return pairs
}

// NeighborPairs returns every edge between two visible nodes exactly once.
func (g *Graph) NeighborPairs(visible []*game.Node) []Pair {
	return g.View(visible).Pairs()
}
