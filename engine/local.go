package engine

import (
	"fmt"
	"time"

	"isolation/agent"
	"isolation/experiments/metrics"
	"isolation/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

// WithClock replaces time.Now for measuring move times.
func WithClock(now func() time.Time) Option {
	return func(e *LocalEngine) {
		if now != nil {
			e.now = now
		}
	}
}

// LocalEngine plays a game between in-process agents, giving each a fixed
// time limit per move.
type LocalEngine struct {
	board     *game.Board
	agents    map[game.Player]agent.Agent
	timeLimit time.Duration
	now       func() time.Time
}

var _ Engine = (*LocalEngine)(nil)

// NewLocalEngine continues the game from a copy of board, which may already
// hold opening moves.
func NewLocalEngine(board *game.Board, agents map[game.Player]agent.Agent, timeLimit time.Duration, options ...Option) *LocalEngine {
	for _, player := range []game.Player{board.ActivePlayer(), board.InactivePlayer()} {
		if agents[player] == nil {
			panic(fmt.Sprintf("no agent for player %s", player))
		}
	}
	if timeLimit <= 0 {
		panic("time limit must be positive")
	}

	e := &LocalEngine{
		board:     board.Copy(),
		agents:    agents,
		timeLimit: timeLimit,
		now:       time.Now,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Play runs a single game on a LocalEngine.
func Play(board *game.Board, agents map[game.Player]agent.Agent, timeLimit time.Duration, options ...Option) Outcome {
	return NewLocalEngine(board, agents, timeLimit, options...).Run()
}

// Run executes the entire game loop until the player to move loses.
func (e *LocalEngine) Run() Outcome {
	startTime := e.now()
	startingPlayer := e.board.ActivePlayer()
	history := []game.Move{}
	moveMetrics := []metrics.MoveMetric{}

	log.Debug().Msgf("player %s is starting", startingPlayer)

	for step := 1; ; step++ {
		active := e.board.ActivePlayer()
		legalMoves := e.board.LegalMoves(active)

		moveStart := e.now()
		timeLeft := func() time.Duration {
			return e.timeLimit - e.now().Sub(moveStart)
		}

		// Agents get copies so they cannot tamper with the game
		move, metric := e.agents[active].FindMove(e.board.Copy(), append([]game.Move(nil), legalMoves...), timeLeft)
		remaining := timeLeft()

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       active,
			Move:         move,
			SearchMetric: metric,
		})

		var termination Termination
		switch {
		case remaining < 0:
			termination = Timeout
		case !game.ContainsMove(legalMoves, move) && len(legalMoves) > 0:
			termination = Forfeit
		case !game.ContainsMove(legalMoves, move):
			termination = IllegalMove
		}
		if termination != "" {
			return e.finish(termination, startingPlayer, startTime, history, moveMetrics)
		}

		log.Debug().Msgf("step %d: player %s moves to %s with %s left", step, active, move, remaining)

		history = append(history, move)
		e.board.ApplyMove(move)
	}
}

func (e *LocalEngine) finish(termination Termination, startingPlayer game.Player, startTime time.Time,
	history []game.Move, moveMetrics []metrics.MoveMetric) Outcome {
	winner := e.board.InactivePlayer()
	loser := e.board.ActivePlayer()
	endTime := e.now()

	log.Info().Msgf("player %s wins by %s after %d moves", winner, termination, e.board.MoveCount())

	return Outcome{
		Winner:      winner,
		Loser:       loser,
		Termination: termination,
		History:     history,
		Board:       e.board,
		GameMetric: metrics.GameMetric{
			StartingPlayer: startingPlayer,
			Winner:         winner,
			Termination:    string(termination),
			StartTime:      startTime,
			EndTime:        endTime,
			Duration:       endTime.Sub(startTime),
			TotalMoves:     e.board.MoveCount(),
		},
		MoveMetrics: moveMetrics,
	}
}
