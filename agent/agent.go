package agent

import (
	"isolation/game"
	"isolation/searcher"
)

type Agent interface {
	// FindMove returns a move for the active player of state and performance
	// metrics (if collected) from the search. It must return one of legalMoves,
	// or game.NoMove when there are none.
	FindMove(state game.State, legalMoves []game.Move, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetric)
}

var _ Agent = (*searcher.Searcher)(nil)

// Random plays a uniformly random legal move.
type Random struct {
	rand searcher.Rand
}

func NewRandom(r searcher.Rand) *Random {
	if r == nil {
		r = searcher.NewRand()
	}
	return &Random{rand: r}
}

func (a *Random) FindMove(state game.State, legalMoves []game.Move, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetric) {
	if len(legalMoves) == 0 {
		return game.NoMove, searcher.SearchMetric{}
	}
	return legalMoves[a.rand.Intn(len(legalMoves))], searcher.SearchMetric{}
}
