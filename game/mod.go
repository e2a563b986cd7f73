package game

// Size is the side length of the board.
const Size = 3

// Cells is the number of cells on the board.
const Cells = Size * Size

// Player marks a cell. None marks an empty cell or an undecided game.
type Player byte

const (
	None Player = '-'
	X    Player = 'X'
	O    Player = 'O'
)

// Next returns the opponent of p.
func (p Player) Next() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	panic("unexpected player")
}

func (p Player) String() string {
	return string(rune(p))
}

// lines lists the winning triples: rows, columns, then diagonals
var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}
