package searcher

import "tictac/game"

// Outcome values, from X's perspective

const XWin = 1.0   // Outcome won by X
const OWin = -XWin // Outcome won by O
const Tie = 0.0    // Outcome of a full board without a line

const TieWeight = 0.5 // Weight of a tie in the probabilistic score

// outcome scores a decided position
func outcome(winner game.Player) float64 {
	switch winner {
	case game.X:
		return XWin
	case game.O:
		return OWin
	}
	return Tie
}
