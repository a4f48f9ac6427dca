package game

import "fmt"

// Move is a board cell the active player jumps to.
type Move struct {
	Row int
	Col int
}

// NoMove is played when no legal move is available (surrender).
var NoMove = Move{Row: -1, Col: -1}

// Compare orders moves by row, then column. It returns -1, 0 or +1.
func (m Move) Compare(other Move) int {
	switch {
	case m.Row < other.Row:
		return -1
	case m.Row > other.Row:
		return 1
	case m.Col < other.Col:
		return -1
	case m.Col > other.Col:
		return 1
	}
	return 0
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// ContainsMove reports whether move is one of moves.
func ContainsMove(moves []Move, move Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
