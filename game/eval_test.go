package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// midgame returns a 7x7 board after two moves each, with player1 at (2,1)
// and player2 at (4,5).
func midgame() *Board {
	b := NewBoard(p1, p2, 7, 7)
	b.ApplyMove(Move{0, 0})
	b.ApplyMove(Move{6, 6})
	b.ApplyMove(Move{2, 1})
	b.ApplyMove(Move{4, 5})
	return b
}

func TestHeuristics(t *testing.T) {
	b := midgame()
	own := float64(len(b.LegalMoves(p1)))
	opp := float64(len(b.LegalMoves(p2)))
	blanks := float64(len(b.BlankSpaces()))
	progress := 4.0 / 49.0

	tests := []struct {
		name     string
		evaluate Evaluate
		expected float64
	}{
		{"null", Null, 0},
		{"open", Open, own},
		{"improved", Improved, own - opp},
		{"simple", Simple, own - opp},
		{"weighted", Weighted, own*2 - opp},
		{"moves to board", MovesToBoard, own*progress*2 - opp},
		{"weighted with board", WeightedWithBoard, own*3 - opp*2 + blanks},
		{"defensive to offensive (first half)", DefensiveToOffensive, own*2 - opp},
		{"offensive to defensive (first half)", OffensiveToDefensive, own - opp*2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, tt.evaluate(b, p1), 1e-9)
		})
	}
}

func TestHeuristicsSecondHalf(t *testing.T) {
	// 3x3 board, five moves played: progress 5/9 > 0.5
	b := NewBoard(p1, p2, 3, 3)
	for _, m := range []Move{{0, 0}, {2, 2}, {1, 2}, {0, 1}, {2, 1}} {
		b.ApplyMove(m)
	}
	own := float64(len(b.LegalMoves(p1)))
	opp := float64(len(b.LegalMoves(p2)))

	require.InDelta(t, own-opp*2, DefensiveToOffensive(b, p1), 1e-9, "Offensive in second half")
	require.InDelta(t, own*2-opp, OffensiveToDefensive(b, p1), 1e-9, "Defensive in second half")
}

func TestBlockingOpponent(t *testing.T) {
	b := NewBoard(p1, p2, 7, 7)
	b.ApplyMove(Move{3, 3})
	b.ApplyMove(Move{3, 5})
	own := b.LegalMoves(p1)
	opp := b.LegalMoves(p2)

	shared := 0
	for _, m := range own {
		if ContainsMove(opp, m) {
			shared++
		}
	}
	require.Positive(t, shared, "Players two columns apart should share target cells")

	expected := float64(len(own) - len(opp)*2 + shared)
	require.Equal(t, expected, BlockingOpponent(b, p1))
}

func TestTerminal(t *testing.T) {
	// Same finished game as TestBoardWinnerLoser
	b := NewBoard(p1, p2, 3, 2)
	b.ApplyMove(Move{0, 0})
	b.ApplyMove(Move{0, 1})
	b.ApplyMove(Move{1, 2})

	for _, name := range HeuristicNames() {
		t.Run(name, func(t *testing.T) {
			evaluate, err := LookupHeuristic(name)
			require.NoError(t, err)

			require.Equal(t, math.Inf(1), evaluate(b, p1), "Winner should score +Inf")
			require.Equal(t, math.Inf(-1), evaluate(b, p2), "Loser should score -Inf")
		})
	}

	t.Run("non-terminal delegates", func(t *testing.T) {
		m := midgame()
		require.Equal(t, Improved(m, p1), Terminal(Improved)(m, p1))
	})
}

func TestLookupHeuristic(t *testing.T) {
	_, err := LookupHeuristic("does_not_exist")
	require.Error(t, err)

	names := HeuristicNames()
	require.IsIncreasing(t, names)
	require.Contains(t, names, "custom")
}
