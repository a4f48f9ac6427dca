package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	p1 Player = "player1"
	p2 Player = "player2"
)

func TestNewBoard(t *testing.T) {
	t.Run("empty board with first player to move", func(t *testing.T) {
		b := NewBoard(p1, p2, 7, 7)

		require.Equal(t, p1, b.ActivePlayer(), "First player should move first")
		require.Equal(t, p2, b.InactivePlayer())
		require.Equal(t, 0, b.MoveCount())
		require.Len(t, b.BlankSpaces(), 49, "Every cell should be blank")
		require.Equal(t, NoMove, b.Location(p1), "Players should not be placed yet")
	})

	t.Run("panics on invalid size", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(p1, p2, 0, 7) })
	})

	t.Run("panics on identical players", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(p1, p1, 7, 7) })
	})
}

func TestBoardLegalMoves(t *testing.T) {
	t.Run("any blank cell before first move", func(t *testing.T) {
		b := NewBoard(p1, p2, 3, 3)
		b.ApplyMove(Move{1, 1})

		moves := b.LegalMoves(p2)

		require.Len(t, moves, 8, "Second player may take any remaining blank cell")
		require.NotContains(t, moves, Move{1, 1})
	})

	t.Run("knight jumps after first move", func(t *testing.T) {
		b := NewBoard(p1, p2, 7, 7)
		b.ApplyMove(Move{0, 0})
		b.ApplyMove(Move{6, 6})

		require.Equal(t, []Move{{1, 2}, {2, 1}}, b.LegalMoves(p1), "Corner should only allow two jumps")
	})

	t.Run("blocked cells are excluded", func(t *testing.T) {
		b := NewBoard(p1, p2, 7, 7)
		b.ApplyMove(Move{0, 0})
		b.ApplyMove(Move{1, 2})

		require.Equal(t, []Move{{2, 1}}, b.LegalMoves(p1), "Opponent's cell should be blocked")
	})

	t.Run("panics for unknown player", func(t *testing.T) {
		b := NewBoard(p1, p2, 7, 7)
		require.Panics(t, func() { b.LegalMoves("nobody") })
	})
}

func TestBoardForecastMove(t *testing.T) {
	b := NewBoard(p1, p2, 7, 7)

	next := b.ForecastMove(Move{3, 3})

	require.Equal(t, p2, next.ActivePlayer(), "Side to move should flip")
	require.Equal(t, 1, next.MoveCount(), "Move count should advance")
	require.Equal(t, p1, b.ActivePlayer(), "Original board should not change")
	require.Equal(t, 0, b.MoveCount(), "Original board should not change")
	require.True(t, b.IsBlank(Move{3, 3}), "Original board should not change")
	require.False(t, next.(*Board).IsBlank(Move{3, 3}))
}

func TestBoardApplyMove(t *testing.T) {
	t.Run("panics on occupied cell", func(t *testing.T) {
		b := NewBoard(p1, p2, 7, 7)
		b.ApplyMove(Move{3, 3})

		require.Panics(t, func() { b.ApplyMove(Move{3, 3}) })
	})

	t.Run("panics off board", func(t *testing.T) {
		b := NewBoard(p1, p2, 7, 7)
		require.Panics(t, func() { b.ApplyMove(Move{7, 0}) })
	})
}

func TestBoardWinnerLoser(t *testing.T) {
	// 2x3 board: after (0,0) and (0,1), player1's jumps (1,2) is open
	b := NewBoard(p1, p2, 3, 2)
	b.ApplyMove(Move{0, 0})
	b.ApplyMove(Move{0, 1})
	require.Equal(t, []Move{{1, 2}}, b.LegalMoves(p1))
	require.False(t, b.IsLoser(p1))
	require.False(t, b.IsWinner(p2))
	require.Equal(t, 0.0, b.Utility(p1), "Game in progress")

	b.ApplyMove(Move{1, 2})
	// player2 at (0,1) has jumps (1,3) off-board and (2,x) off-board: none left
	require.Empty(t, b.LegalMoves(p2))
	require.True(t, b.IsLoser(p2), "Active player without moves loses")
	require.True(t, b.IsWinner(p1), "Inactive player wins when opponent is stuck")
	require.False(t, b.IsWinner(p2))
	require.False(t, b.IsLoser(p1))
	require.Equal(t, posInf, b.Utility(p1))
	require.Equal(t, negInf, b.Utility(p2))
}

func TestBoardString(t *testing.T) {
	b := NewBoard(p1, p2, 3, 2)
	b.ApplyMove(Move{0, 0})
	b.ApplyMove(Move{0, 1})
	b.ApplyMove(Move{1, 2})

	expected := "| - | 2 |   |\n" +
		"|   |   | 1 |\n"
	require.Equal(t, expected, b.String())
}

func TestMoveCompare(t *testing.T) {
	require.Equal(t, -1, Move{0, 5}.Compare(Move{1, 0}), "Row is compared first")
	require.Equal(t, 1, Move{1, 2}.Compare(Move{1, 1}), "Column breaks row ties")
	require.Equal(t, 0, Move{2, 2}.Compare(Move{2, 2}))
	require.Equal(t, -1, NoMove.Compare(Move{0, 0}), "Sentinel sorts before every cell")
}
