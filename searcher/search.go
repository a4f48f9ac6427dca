package searcher

import "isolation/game"

// Search holds what stays fixed during one move decision: whose moves are
// being chosen, how leaves are scored and when to stop. Depth, bounds and the
// maximizing flag are passed by value to every recursive call.
type Search struct {
	player   game.Player
	evaluate game.Evaluate
	deadline *Deadline
	metrics  Collector
}

// NewSearch returns a search maximizing for player. A nil collector disables
// node counting.
func NewSearch(player game.Player, evaluate game.Evaluate, deadline *Deadline, metrics Collector) *Search {
	if evaluate == nil {
		panic("evaluation function is required")
	}
	if metrics == nil {
		metrics = NewNoMetricsCollector()
	}
	return &Search{
		player:   player,
		evaluate: evaluate,
		deadline: deadline,
		metrics:  metrics,
	}
}

// enter is called at the start of every recursive call
func (s *Search) enter() error {
	if s.deadline.Expired() {
		return ErrSearchCancelled
	}
	s.metrics.AddNode()
	return nil
}

// leaf scores state from the searching player's perspective, regardless of
// whose turn it is
func (s *Search) leaf(state game.State) Result {
	return Result{Score: s.evaluate(state, s.player), Move: game.NoMove}
}
