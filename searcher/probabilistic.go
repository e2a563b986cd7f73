package searcher

import (
	"fmt"

	"tictac/game"
	"tictac/graph"
)

// Probabilistic estimates the outcome of node under uniform random play from
// the frequency of X wins, O wins and ties among its leaf descendants:
// (xWins - oWins + 0.5*ties) / leaves. A decided node scores its winner.
func Probabilistic(g *graph.Graph, node *game.Node) float64 {
	if winner := node.Winner(); winner != game.None {
		return outcome(winner)
	}

	xWins, oWins, ties := 0, 0, 0
	for _, leaf := range g.LeafDescendants(node) {
		switch leaf.Winner() {
		case game.X:
			xWins++
		case game.O:
			oWins++
		default:
			ties++
		}
	}

	total := xWins + oWins + ties
	if total == 0 { // A childless node is its own leaf
		panic(fmt.Sprintf("cannot evaluate %s: no leaf descendants", node.ID))
	}
	return (float64(xWins-oWins) + TieWeight*float64(ties)) / float64(total)
}
