package searcher

import (
	"math"

	"tictac/game"
)

type memoKey struct {
	id      string
	isXTurn bool
}

// Minimax computes perfect-play outcomes by backward induction. Values are
// memoized per (state, side to move) in a table owned by the Minimax value,
// so evaluation order does not matter and repeated calls are free.
type Minimax struct {
	memo map[memoKey]float64
}

func NewMinimax() *Minimax {
	return &Minimax{memo: make(map[memoKey]float64)}
}

// Evaluate returns the outcome of node with perfect play: XWin, OWin or Tie.
// isXTurn says whether X moves into node's children; it must match depth
// parity (X moves on even depth) for the result to be meaningful.
func (m *Minimax) Evaluate(node *game.Node, isXTurn bool) float64 {
	key := memoKey{id: node.ID, isXTurn: isXTurn}
	if value, ok := m.memo[key]; ok {
		return value
	}
	value := m.evaluate(node, isXTurn)
	m.memo[key] = value
	return value
}

func (m *Minimax) evaluate(node *game.Node, isXTurn bool) float64 {
	if winner := node.Winner(); winner != game.None {
		return outcome(winner)
	}
	children := node.Children()
	if len(children) == 0 {
		return Tie
	}

	if isXTurn {
		best := math.Inf(-1)
		for _, child := range children {
			best = math.Max(best, m.Evaluate(child, false))
		}
		return best
	}
	best := math.Inf(1)
	for _, child := range children {
		best = math.Min(best, m.Evaluate(child, true))
	}
	return best
}

// Value evaluates node with the side to move derived from its depth.
func (m *Minimax) Value(node *game.Node) float64 {
	return m.Evaluate(node, node.Depth%2 == 0)
}

// Len returns the number of memoized values.
func (m *Minimax) Len() int {
	return len(m.memo)
}
