package engine

import (
	"isolation/experiments/metrics"
	"isolation/game"
)

// Termination is how a game ended. The winner is always the player who was
// not to move.
type Termination string

const (
	// The active player ran out of time for its move
	Timeout Termination = "timeout"
	// The active player returned a move that is not legal while it had legal moves
	Forfeit Termination = "forfeit"
	// The active player had no legal moves left
	IllegalMove Termination = "illegal move"
)

type Outcome struct {
	Winner      game.Player
	Loser       game.Player
	Termination Termination
	History     []game.Move // Moves played by the engine, openings excluded
	Board       *game.Board // Final position, the loser to move
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Engine interface {
	// Run plays the game until a player runs out of time or fails to return a legal move
	Run() Outcome
}
