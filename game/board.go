package game

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 7
)

const blank = 0

// Knight jumps, in the order legal moves are enumerated.
var directions = [8]Move{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// Board is an Isolation game: two players alternately jump like a chess knight
// to a blank cell, and every cell a player has occupied stays blocked. The
// player to move without a legal jump loses.
type Board struct {
	width     int
	height    int
	players   [2]Player
	active    int     // Index of the player to move
	cells     []int   // 0 for blank, otherwise 1 + index of the player who occupied it
	positions [2]Move // NoMove until a player has made their first move
	moveCount int
}

// NewBoard returns an empty board where player1 moves first.
func NewBoard(player1, player2 Player, width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	if player1 == player2 {
		panic("players must be distinct")
	}
	return &Board{
		width:     width,
		height:    height,
		players:   [2]Player{player1, player2},
		cells:     make([]int, width*height),
		positions: [2]Move{NoMove, NoMove},
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:     b.width,
		height:    b.height,
		players:   b.players,
		active:    b.active,
		cells:     cells,
		positions: b.positions,
		moveCount: b.moveCount,
	}
}

func (b *Board) ActivePlayer() Player {
	return b.players[b.active]
}

func (b *Board) InactivePlayer() Player {
	return b.players[1-b.active]
}

func (b *Board) Opponent(player Player) Player {
	return b.players[1-b.index(player)]
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) MoveCount() int {
	return b.moveCount
}

// Location returns the cell player occupies, or NoMove before their first move.
func (b *Board) Location(player Player) Move {
	return b.positions[b.index(player)]
}

// IsBlank reports whether move is on the board and not yet occupied.
func (b *Board) IsBlank(move Move) bool {
	if move.Row < 0 || move.Row >= b.height || move.Col < 0 || move.Col >= b.width {
		return false
	}
	return b.cells[move.Row*b.width+move.Col] == blank
}

func (b *Board) BlankSpaces() []Move {
	moves := []Move{}
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if b.cells[row*b.width+col] == blank {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

// LegalMoves returns the jumps available to player. Before their first move a
// player may take any blank cell.
func (b *Board) LegalMoves(player Player) []Move {
	from := b.positions[b.index(player)]
	if from == NoMove {
		return b.BlankSpaces()
	}

	moves := []Move{}
	for _, d := range directions {
		to := Move{Row: from.Row + d.Row, Col: from.Col + d.Col}
		if b.IsBlank(to) {
			moves = append(moves, to)
		}
	}
	return moves
}

// ApplyMove moves the active player in place and passes the turn.
func (b *Board) ApplyMove(move Move) {
	if !b.IsBlank(move) {
		panic(fmt.Sprintf("cannot move %s to occupied or off-board cell %s", b.ActivePlayer(), move))
	}
	b.cells[move.Row*b.width+move.Col] = b.active + 1
	b.positions[b.active] = move
	b.active = 1 - b.active
	b.moveCount++
}

func (b *Board) ForecastMove(move Move) State {
	next := b.Copy()
	next.ApplyMove(move)
	return next
}

func (b *Board) IsWinner(player Player) bool {
	return player == b.InactivePlayer() && len(b.LegalMoves(b.ActivePlayer())) == 0
}

func (b *Board) IsLoser(player Player) bool {
	return player == b.ActivePlayer() && len(b.LegalMoves(b.ActivePlayer())) == 0
}

// Utility returns +Inf if player has won, -Inf if player has lost and 0 while
// the game is still in progress.
func (b *Board) Utility(player Player) float64 {
	switch {
	case b.IsWinner(player):
		return posInf
	case b.IsLoser(player):
		return negInf
	}
	return 0
}

// String renders the grid: "1"/"2" mark current positions, "-" marks blocked cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.height; row++ {
		sb.WriteString("|")
		for col := 0; col < b.width; col++ {
			cell := Move{Row: row, Col: col}
			switch {
			case cell == b.positions[0]:
				sb.WriteString(" 1 |")
			case cell == b.positions[1]:
				sb.WriteString(" 2 |")
			case b.cells[row*b.width+col] != blank:
				sb.WriteString(" - |")
			default:
				sb.WriteString("   |")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) index(player Player) int {
	switch player {
	case b.players[0]:
		return 0
	case b.players[1]:
		return 1
	}
	panic(fmt.Sprintf("%q is not a player of this game", player))
}
