package searcher

import "isolation/game"

// AlphaBeta is Minimax with pruning. The best score found so far becomes the
// bound handed to the remaining children, and enumeration stops as soon as
// the bound passed in by the parent is reached.
//
// Only strict improvements replace the best move, so when no child beats the
// incoming bound the result carries game.NoMove.
func (s *Search) AlphaBeta(state game.State, depth int, alpha, beta float64, maximizing bool) (Result, error) {
	if err := s.enter(); err != nil {
		return Result{}, err
	}

	if depth == 0 {
		return s.leaf(state), nil
	}

	moves := state.LegalMoves(state.ActivePlayer())

	if maximizing {
		best := Result{Score: alpha, Move: game.NoMove}
		for _, move := range moves {
			child, err := s.AlphaBeta(state.ForecastMove(move), depth-1, best.Score, beta, false)
			if err != nil {
				return Result{}, err
			}
			if child.Score > best.Score {
				best = Result{Score: child.Score, Move: move}
			}
			if best.Score >= beta { // Beta cutoff
				s.metrics.AddCutoff()
				return best, nil
			}
		}
		return best, nil
	}

	best := Result{Score: beta, Move: game.NoMove}
	for _, move := range moves {
		child, err := s.AlphaBeta(state.ForecastMove(move), depth-1, alpha, best.Score, true)
		if err != nil {
			return Result{}, err
		}
		if child.Score < best.Score {
			best = Result{Score: child.Score, Move: move}
		}
		if best.Score <= alpha { // Alpha cutoff
			s.metrics.AddCutoff()
			return best, nil
		}
	}
	return best, nil
}
