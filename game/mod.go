package game

// Player identifies one of the two seats of a game.
type Player string

// State should be immutable - ForecastMove always returns a new copy with the
// side to move flipped and the move count advanced by one.
type State interface {
	ActivePlayer() Player
	InactivePlayer() Player
	Opponent(player Player) Player
	LegalMoves(player Player) []Move
	ForecastMove(move Move) State
	IsWinner(player Player) bool
	IsLoser(player Player) bool
	MoveCount() int
	Width() int
	Height() int
	BlankSpaces() []Move
}

// Evaluate scores the game state from player's perspective. Higher is better
// for player.
type Evaluate func(state State, player Player) float64
