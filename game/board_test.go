package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckWinner(t *testing.T) {
	cases := []struct {
		board    Board
		expected Player
	}{
		{"XXX------", X},
		{"---------", None},
		{"XOXOXOXOX", X}, // Main diagonal 0-4-8
		{"O--O--O--", O},
		{"--O-O-O--", O},
		{"XOXXOOOXX", None},
	}
	for _, c := range cases {
		t.Run(string(c.board), func(t *testing.T) {
			require.Equal(t, c.expected, CheckWinner(c.board), "Should find the winner of the first complete line")
		})
	}
}

func TestCanonicalize(t *testing.T) {
	boards := []Board{"---------", "X--------", "-X-------", "XO-------", "X-O-X-O--", "XOXOXOXOX", "OX--X---O"}

	t.Run("idempotent", func(t *testing.T) {
		for _, b := range boards {
			canonical := Canonicalize(b)
			require.Equal(t, canonical, Canonicalize(canonical), "Canonicalizing twice should not change the result for %s", b)
		}
	})

	t.Run("invariant under every symmetry", func(t *testing.T) {
		for _, b := range boards {
			for _, image := range Symmetries(string(b)) {
				require.Equal(t, Canonicalize(b), Canonicalize(Board(image)),
					"Board %s and its image %s should share a canonical form", b, image)
			}
		}
	})

	t.Run("lexicographically smallest image", func(t *testing.T) {
		// Corner openings all reduce to the bottom-right corner since '-' < 'X'
		require.Equal(t, Board("--------X"), Canonicalize("X--------"))
		require.Equal(t, Board("--------X"), Canonicalize("------X--"))
		require.Equal(t, Board("-------X-"), Canonicalize("-X-------"))
	})
}

func TestSymmetries(t *testing.T) {
	t.Run("eight images of an asymmetric board", func(t *testing.T) {
		require.Len(t, Symmetries("XO-------"), 8, "An asymmetric board should have all 8 images")
	})

	t.Run("one image of the empty board", func(t *testing.T) {
		require.Equal(t, []string{"---------"}, Symmetries("---------"))
	})

	t.Run("four images of a corner opening", func(t *testing.T) {
		require.ElementsMatch(t, []string{"X--------", "--X------", "------X--", "--------X"}, Symmetries("X--------"))
	})

	t.Run("wrong length is its own only image", func(t *testing.T) {
		require.Equal(t, []string{"X-"}, Symmetries("X-"))
	})
}

func TestBoard(t *testing.T) {
	t.Run("side to move alternates by depth", func(t *testing.T) {
		require.Equal(t, X, Empty.Player())
		require.Equal(t, O, Board("X--------").Player())
		require.Equal(t, X, Board("XO-------").Player())
	})

	t.Run("playing fills the cell for the side to move", func(t *testing.T) {
		b := Empty.Play(4)
		require.Equal(t, Board("----X----"), b)
		require.Equal(t, Board("O---X----"), b.Play(0))
		require.Equal(t, 2, b.Play(0).Depth())
	})

	t.Run("playing an occupied cell panics", func(t *testing.T) {
		require.Panics(t, func() { Board("X--------").Play(0) })
	})

	t.Run("legal moves are the empty cells", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3, 5, 6, 7}, Board("X---O---X").LegalMoves())
	})

	t.Run("terminal when decided or full", func(t *testing.T) {
		require.True(t, Board("XXXOO----").IsTerminal())
		require.True(t, Board("XOXXOOOXX").IsTerminal())
		require.False(t, Board("XO-------").IsTerminal())
	})

	t.Run("validating input", func(t *testing.T) {
		b, err := NewBoard("X-O------")
		require.NoError(t, err)
		require.Equal(t, Board("X-O------"), b)

		_, err = NewBoard("X-O")
		require.Error(t, err, "Short boards should be rejected")
		_, err = NewBoard("X-O-----?")
		require.Error(t, err, "Unknown marks should be rejected")
	})
}
