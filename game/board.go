package game

import (
	"fmt"
	"strings"
)

// Board is a row-major 3x3 position over {X, O, -}.
// Board is immutable - operations on Board always return a new copy
type Board string

// Empty is the starting position.
const Empty Board = "---------"

// NewBoard validates s and returns it as a Board.
func NewBoard(s string) (Board, error) {
	if len(s) != Cells {
		return "", fmt.Errorf("board %q: expected %d cells, got %d", s, Cells, len(s))
	}
	for i := 0; i < len(s); i++ {
		switch Player(s[i]) {
		case X, O, None:
		default:
			return "", fmt.Errorf("board %q: invalid cell %q at %d", s, s[i], i)
		}
	}
	return Board(s), nil
}

// Depth counts the marks on the board, i.e. the number of plies played.
func (b Board) Depth() int {
	return Cells - strings.Count(string(b), string(None))
}

// Player returns the side to move. X moves on even depth.
func (b Board) Player() Player {
	if b.Depth()%2 == 0 {
		return X
	}
	return O
}

// LegalMoves returns the empty cells in ascending order.
func (b Board) LegalMoves() []int {
	moves := make([]int, 0, Cells)
	for i := 0; i < len(b); i++ {
		if Player(b[i]) == None {
			moves = append(moves, i)
		}
	}
	return moves
}

// Play places the side to move on cell i.
func (b Board) Play(i int) Board {
	return b.PlayAs(i, b.Player())
}

// PlayAs places p on cell i.
func (b Board) PlayAs(i int, p Player) Board {
	if Player(b[i]) != None {
		panic(fmt.Sprintf("cannot play cell %d of %s: not empty", i, b))
	}
	return b[:i] + Board(p.String()) + b[i+1:]
}

// Winner returns the player holding a complete line, or None.
func (b Board) Winner() Player {
	return CheckWinner(b)
}

// IsTerminal reports whether the game is over: full board or decided.
func (b Board) IsTerminal() bool {
	return b.Depth() == Cells || b.Winner() != None
}

// Canonical returns the symmetry class representative of b.
func (b Board) Canonical() Board {
	return Canonicalize(b)
}

// CheckWinner tests the eight winning lines in order and returns the owner of
// the first complete one. Positions with two lines are not reachable and are
// not treated specially.
func CheckWinner(b Board) Player {
	for _, line := range lines {
		p := Player(b[line[0]])
		if p != None && p == Player(b[line[1]]) && p == Player(b[line[2]]) {
			return p
		}
	}
	return None
}
