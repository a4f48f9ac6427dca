package searcher

import "isolation/game"

// Minimax searches depth plies below state. The maximizer keeps the greatest
// (score, move) pair and the minimizer the smallest, so equal scores are
// decided by move order. Without legal moves the worst score for the side to
// move is returned with game.NoMove.
func (s *Search) Minimax(state game.State, depth int, maximizing bool) (Result, error) {
	if err := s.enter(); err != nil {
		return Result{}, err
	}

	if depth == 0 {
		return s.leaf(state), nil
	}

	best := Result{Score: posInf, Move: game.NoMove}
	if maximizing {
		best.Score = negInf
	}

	for _, move := range state.LegalMoves(state.ActivePlayer()) {
		child, err := s.Minimax(state.ForecastMove(move), depth-1, !maximizing)
		if err != nil {
			return Result{}, err
		}

		candidate := Result{Score: child.Score, Move: move}
		cmp := candidate.Compare(best)
		if (maximizing && cmp > 0) || (!maximizing && cmp < 0) {
			best = candidate
		}
	}

	return best, nil
}
