package graph

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"tictac/game"
	"tictac/utils"
)

// Visibility is the part of the visualization state that decides which
// nodes take part in a frame.
type Visibility interface {
	RenderedCount() int
	IsolateSelected() bool
	SelectedPoints() []*game.Node
}

// Graph holds the node collection in discovery order and a static index of
// each node's neighbors by position. It is immutable once built; only node
// coordinates, velocities and evaluations change afterwards.
type Graph struct {
	vertices        []*game.Node
	positions       map[string]int // id → position in vertices
	neighborIndices [][]int
}

// New indexes vertices. Neighbors outside the collection are left out of the index.
func New(vertices []*game.Node) *Graph {
	g := &Graph{
		vertices:        vertices,
		positions:       make(map[string]int, len(vertices)),
		neighborIndices: make([][]int, len(vertices)),
	}
	for i, v := range vertices {
		g.positions[v.ID] = i
	}
	for i, v := range vertices {
		indices := make([]int, 0, len(v.Neighbors))
		for _, n := range v.Neighbors {
			if j := g.Index(n); j != -1 {
				indices = append(indices, j)
			}
		}
		g.neighborIndices[i] = indices
	}
	return g
}

// Vertices returns the collection. Callers must not modify it.
func (g *Graph) Vertices() []*game.Node {
	return g.vertices
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.vertices)
}

// Node returns the node with the given canonical id, or nil.
func (g *Graph) Node(id string) *game.Node {
	i, ok := g.positions[id]
	if !ok {
		return nil
	}
	return g.vertices[i]
}

// Index returns the position of n in the collection, or -1.
func (g *Graph) Index(n *game.Node) int {
	if n == nil {
		return -1
	}
	i, ok := g.positions[n.ID]
	if !ok || g.vertices[i] != n {
		return -1
	}
	return i
}

// NeighborIndices returns the positions of the neighbors of the i-th node.
func (g *Graph) NeighborIndices(i int) []int {
	return g.neighborIndices[i]
}

// VisibleVertices returns the selection when isolating a non-empty selection,
// otherwise the first RenderedCount nodes.
func (g *Graph) VisibleVertices(state Visibility) []*game.Node {
	if selected := state.SelectedPoints(); state.IsolateSelected() && len(selected) > 0 {
		return selected
	}
	count := min(max(state.RenderedCount(), 0), len(g.vertices))
	visible := make([]*game.Node, count)
	copy(visible, g.vertices[:count])
	return visible
}

// Ancestors returns vertex and every node reachable by following parents.
func (g *Graph) Ancestors(vertex *game.Node) []*game.Node {
	return traverse(vertex, (*game.Node).Parents)
}

// Descendants returns vertex and every node reachable by following children.
func (g *Graph) Descendants(vertex *game.Node) []*game.Node {
	return traverse(vertex, (*game.Node).Children)
}

// LeafDescendants returns the descendants of vertex that have no children.
func (g *Graph) LeafDescendants(vertex *game.Node) []*game.Node {
	return utils.Filter(g.Descendants(vertex), (*game.Node).IsLeaf)
}

// traverse walks next transitively from start, returning each node once
func traverse(start *game.Node, next func(*game.Node) []*game.Node) []*game.Node {
	visited := make(map[*game.Node]struct{})
	order := []*game.Node{}

	stack := arraystack.New()
	stack.Push(start)
	for !stack.Empty() {
		value, _ := stack.Pop()
		node := value.(*game.Node)
		if _, ok := visited[node]; ok {
			continue
		}
		visited[node] = struct{}{}
		order = append(order, node)

		for _, n := range next(node) {
			if _, ok := visited[n]; !ok {
				stack.Push(n)
			}
		}
	}
	return order
}
