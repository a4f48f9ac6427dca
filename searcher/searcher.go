package searcher

import (
	"errors"
	"fmt"
	"time"

	"isolation/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks moves by minimax or alpha-beta search, either to a fixed
// depth or by iterative deepening until the time runs out.
type Searcher struct {
	depth       int
	evaluate    game.Evaluate
	iterative   bool
	method      Method
	threshold   time.Duration
	rand        Rand
	withMetrics bool
}

// WithSearchDepth sets the depth of fixed-depth searches.
func WithSearchDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithIterative(iterative bool) Option {
	return func(s *Searcher) {
		s.iterative = iterative
	}
}

func WithMethod(method Method) Option {
	return func(s *Searcher) {
		s.method = method
	}
}

// WithTimeoutThreshold sets the time that must remain for a search to go on.
func WithTimeoutThreshold(threshold time.Duration) Option {
	return func(s *Searcher) {
		if threshold >= 0 {
			s.threshold = threshold
		}
	}
}

// WithRand sets the source of the random fallback move.
func WithRand(r Rand) Option {
	return func(s *Searcher) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithMetrics collects node counts and completed depths for every move.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.withMetrics = true
	}
}

func NewSearcher(options ...Option) *Searcher {
	s := &Searcher{ // Default values
		depth:     DefaultSearchDepth,
		evaluate:  game.CustomScore,
		iterative: true,
		method:    DefaultMethod,
		threshold: DefaultTimeoutThreshold,
	}
	for _, option := range options {
		option(s)
	}
	if _, err := ParseMethod(string(s.method)); err != nil {
		panic(err.Error())
	}
	if s.rand == nil {
		s.rand = NewRand()
	}
	return s
}

func (s *Searcher) Method() Method {
	return s.method
}

func (s *Searcher) String() string {
	if s.iterative {
		return fmt.Sprintf("%s(iterative)", s.method)
	}
	return fmt.Sprintf("%s(depth=%d)", s.method, s.depth)
}

// SelectMove returns the best move found for the player to move in state
// before timeLeft drops to the timeout threshold. It returns game.NoMove when
// legalMoves is empty and otherwise always one of legalMoves.
func (s *Searcher) SelectMove(state game.State, legalMoves []game.Move, timeLeft TimeLeft) game.Move {
	move, _ := s.FindMove(state, legalMoves, timeLeft)
	return move
}

// FindMove is SelectMove that also reports search metrics, which are zero
// unless the searcher was created WithMetrics.
func (s *Searcher) FindMove(state game.State, legalMoves []game.Move, timeLeft TimeLeft) (game.Move, SearchMetric) {
	if len(legalMoves) == 0 {
		return game.NoMove, SearchMetric{Method: s.method}
	}

	metrics := NewNoMetricsCollector()
	if s.withMetrics {
		metrics = NewMetricsCollector()
	}
	metrics.Start(s.method)

	search := NewSearch(state.ActivePlayer(), s.evaluate, NewDeadline(timeLeft, s.threshold), metrics)

	// Any legal move beats surrendering if no search completes
	fallback := Result{Score: negInf, Move: legalMoves[s.rand.Intn(len(legalMoves))]}

	var best Result
	var err error
	if s.iterative {
		best, err = s.deepen(search, state, fallback)
	} else {
		best, err = s.searchOnce(search, state, fallback)
	}

	if errors.Is(err, ErrSearchCancelled) {
		metrics.Cancel()
		log.Debug().Msgf("%s search cancelled, playing %s", s.method, best.Move)
	}

	return best.Move, metrics.Complete()
}

// deepen searches depth 1, 2, 3, ... until cancelled, keeping the greatest
// result of the completed depths. The returned result is valid even when the
// error is ErrSearchCancelled.
func (s *Searcher) deepen(search *Search, state game.State, best Result) (Result, error) {
	for depth := 1; ; depth++ {
		result, err := s.searchDepth(search, state, depth)
		if err != nil {
			return best, err
		}
		if result.Compare(best) > 0 {
			best = result
		}
		search.metrics.CompleteDepth(depth)
		log.Debug().Msgf("%s completed depth %d: best %s with score %v", s.method, depth, best.Move, best.Score)
	}
}

func (s *Searcher) searchOnce(search *Search, state game.State, best Result) (Result, error) {
	result, err := s.searchDepth(search, state, s.depth)
	if err != nil {
		return best, err
	}
	search.metrics.CompleteDepth(s.depth)
	if result.Compare(best) > 0 {
		best = result
	}
	return best, nil
}

func (s *Searcher) searchDepth(search *Search, state game.State, depth int) (Result, error) {
	if s.method == MethodMinimax {
		return search.Minimax(state, depth, true)
	}
	return search.AlphaBeta(state, depth, negInf, posInf, true)
}
