package graph

import (
	"tictac/game"
	"tictac/utils"
)

// Pattern marks, position by position
const (
	Any   = '*' // any cell
	Taken = '!' // X or O
	NotX  = 'x' // empty or O
	NotO  = 'o' // empty or X
	Blank = '-' // empty
)

// MatchBoard reports whether board fits pattern. X and O match exactly; see
// the pattern marks for the rest. Patterns of a different length never match.
func MatchBoard(pattern, board string) bool {
	if len(pattern) != len(board) {
		return false
	}
	for i := 0; i < len(board); i++ {
		p, c := pattern[i], game.Player(board[i])
		switch {
		case p == Any:
		case p == byte(game.X) && c != game.X:
			return false
		case p == byte(game.O) && c != game.O:
			return false
		case p == Blank && c != game.None:
			return false
		case p == Taken && c == game.None:
			return false
		case p == NotX && c == game.X:
			return false
		case p == NotO && c == game.O:
			return false
		}
	}
	return true
}

// NodesByPattern returns the nodes whose board fits pattern, in collection order.
func (g *Graph) NodesByPattern(pattern string) []*game.Node {
	return g.NodesByAnyPattern([]string{pattern})
}

// NodesByAnyPattern returns the nodes whose board fits at least one of patterns.
func (g *Graph) NodesByAnyPattern(patterns []string) []*game.Node {
	nodes := []*game.Node{}
	for _, n := range g.vertices {
		for _, p := range patterns {
			if MatchBoard(p, n.ID) {
				nodes = append(nodes, n)
				break
			}
		}
	}
	return nodes
}

// NodesByDepth returns the nodes with minDepth <= depth <= maxDepth.
func (g *Graph) NodesByDepth(minDepth, maxDepth int) []*game.Node {
	return utils.Filter(g.vertices, func(n *game.Node) bool {
		return n.Depth >= minDepth && n.Depth <= maxDepth
	})
}
