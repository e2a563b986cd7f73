package game

import "gonum.org/v1/gonum/spatial/r3"

// Evaluation holds the two scores of a state. Both are unset until the
// evaluation pass writes them.
type Evaluation struct {
	Probabilistic float64 // Expected outcome under uniform random play, in [-1, 1]
	Minimax       float64 // Perfect-play outcome: -1, 0 or 1
	Set           bool
}

// Node is one canonical state of the game graph.
type Node struct {
	ID          string // Canonical board
	Depth       int    // Plies from the empty board
	Coordinates r3.Vec
	Velocity    r3.Vec
	// Neighbors holds parents (depth - 1) and children (depth + 1) alike.
	// Direction is derived from depth on demand.
	Neighbors  []*Node
	Evaluation Evaluation
}

// NewNode returns an unlinked node at rest.
func NewNode(coordinates r3.Vec, id string, depth int) *Node {
	return &Node{
		Coordinates: coordinates,
		ID:          id,
		Depth:       depth,
	}
}

// Board returns the canonical board of n.
func (n *Node) Board() Board {
	return Board(n.ID)
}

// Winner returns the winner on n's board, or None.
func (n *Node) Winner() Player {
	return CheckWinner(n.Board())
}

// Parents returns the neighbors one ply shallower than n.
func (n *Node) Parents() []*Node {
	parents := []*Node{}
	for _, v := range n.Neighbors {
		if v.Depth < n.Depth {
			parents = append(parents, v)
		}
	}
	return parents
}

// Children returns the neighbors one ply deeper than n.
func (n *Node) Children() []*Node {
	children := []*Node{}
	for _, v := range n.Neighbors {
		if v.Depth > n.Depth {
			children = append(children, v)
		}
	}
	return children
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	for _, v := range n.Neighbors {
		if v.Depth > n.Depth {
			return false
		}
	}
	return true
}

// Link connects n1 and n2 at both endpoints. Linking an already connected pair
// is a no-op.
func Link(n1, n2 *Node) {
	for _, v := range n1.Neighbors {
		if v == n2 {
			return
		}
	}
	n1.Neighbors = append(n1.Neighbors, n2)
	n2.Neighbors = append(n2.Neighbors, n1)
}
