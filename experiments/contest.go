package experiments

import (
	"context"
	"fmt"
	"time"

	"isolation/agent"
	"isolation/engine"
	"isolation/experiments/metrics"
	"isolation/game"
	"isolation/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultNumMatches = 5 // Per seat order and opponent
	DefaultTimeLimit  = 300 * time.Millisecond
	// Random moves played for both seats before the agents take over
	OpeningMoves = 2
)

// Contestant is a named agent taking part in a contest. Names double as the
// players' board identities, so they must be unique within a match.
type Contestant struct {
	ID     int
	Config agent.Config
	Agent  agent.Agent
}

func NewContestant(id int, config agent.Config, options ...searcher.Option) (Contestant, error) {
	a, err := agent.New(config, options...)
	if err != nil {
		return Contestant{}, err
	}
	return Contestant{ID: id, Config: config, Agent: a}, nil
}

func (c Contestant) Name() string {
	return c.Config.Name
}

type Option func(c *Contest)

func WithBoardSize(width, height int) Option {
	return func(c *Contest) {
		if width > 0 && height > 0 {
			c.width = width
			c.height = height
		}
	}
}

func WithTimeLimit(limit time.Duration) Option {
	return func(c *Contest) {
		if limit > 0 {
			c.timeLimit = limit
		}
	}
}

func WithNumMatches(n int) Option {
	return func(c *Contest) {
		if n > 0 {
			c.numMatches = n
		}
	}
}

// WithParallelism sets how many matches may run at once. Agents are shared
// between concurrent matches, and parallel matches compete for CPU time
// within each move's time limit.
func WithParallelism(n int) Option {
	return func(c *Contest) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// WithRand sets the source of the opening moves. It must be safe for
// concurrent use when parallelism is above 1.
func WithRand(r searcher.Rand) Option {
	return func(c *Contest) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithRecorder keeps game and move records of every game played.
func WithRecorder(r *metrics.Recorder) Option {
	return func(c *Contest) {
		c.recorder = r
	}
}

type Contest struct {
	width       int
	height      int
	timeLimit   time.Duration
	numMatches  int
	parallelism int
	rand        searcher.Rand
	recorder    *metrics.Recorder
}

func NewContest(options ...Option) *Contest {
	c := &Contest{ // Default values
		width:       game.DefaultWidth,
		height:      game.DefaultHeight,
		timeLimit:   DefaultTimeLimit,
		numMatches:  DefaultNumMatches,
		parallelism: 1,
	}
	for _, option := range options {
		option(c)
	}
	if c.rand == nil {
		c.rand = searcher.NewRand()
	}
	return c
}

// MatchResult counts the outcome of the two games of a match from the point
// of view of the contestants in their match seats.
type MatchResult struct {
	Players  [2]string
	Wins     [2]int
	Timeouts [2]int // Games lost on time
	Forfeits [2]int // Games lost by an illegal move while legal moves remained
}

func (r MatchResult) seat(name string) int {
	if r.Players[0] == name {
		return 0
	}
	return 1
}

// PlayMatch plays two games between c1 and c2, once with each of them moving
// first. Both games open with the same random move and response.
func (c *Contest) PlayMatch(match int, c1, c2 Contestant) MatchResult {
	if c1.Name() == c2.Name() {
		panic(fmt.Sprintf("contestant %s cannot play itself", c1.Name()))
	}
	players := [2]Contestant{c1, c2}
	games := [2]*game.Board{
		game.NewBoard(game.Player(c1.Name()), game.Player(c2.Name()), c.width, c.height),
		game.NewBoard(game.Player(c2.Name()), game.Player(c1.Name()), c.width, c.height),
	}
	for i := 0; i < OpeningMoves; i++ {
		legal := games[0].LegalMoves(games[0].ActivePlayer())
		move := legal[c.rand.Intn(len(legal))]
		games[0].ApplyMove(move)
		games[1].ApplyMove(move)
	}

	agents := map[game.Player]agent.Agent{
		game.Player(c1.Name()): c1.Agent,
		game.Player(c2.Name()): c2.Agent,
	}
	result := MatchResult{Players: [2]string{c1.Name(), c2.Name()}}

	for i, board := range games {
		outcome := engine.Play(board, agents, c.timeLimit)

		winner := result.seat(string(outcome.Winner))
		loser := 1 - winner
		result.Wins[winner]++
		switch outcome.Termination {
		case engine.Timeout:
			result.Timeouts[loser]++
		case engine.Forfeit:
			result.Forfeits[loser]++
		}

		if c.recorder != nil {
			first, second := players[0], players[1]
			if i == 1 {
				first, second = second, first
			}
			c.recorder.Add(match, first.ID, second.ID, outcome.GameMetric, outcome.MoveMetrics)
		}
	}

	if result.Timeouts[0]+result.Timeouts[1] > 0 {
		log.Warn().Msgf("match %d: timeout, exceeded time limit of %s (%s: %d, %s: %d)", match, c.timeLimit,
			result.Players[0], result.Timeouts[0], result.Players[1], result.Timeouts[1])
	}
	return result
}

type OpponentResult struct {
	Opponent string
	Wins     int // Games won by the agent under test
	Losses   int
	Timeouts int // Games the agent under test lost on time
	Forfeits int
}

type RoundResult struct {
	Agent     string
	Opponents []OpponentResult
	Wins      int
	Total     int
}

// WinRate returns the percentage of games won by the agent under test.
func (r RoundResult) WinRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Wins) / float64(r.Total)
}

type matchJob struct {
	opponent int
	match    int
	players  [2]Contestant
}

// PlayRound plays the agent under test against every opponent, numMatches
// matches for each seat order, and tallies the wins.
func (c *Contest) PlayRound(ctx context.Context, underTest Contestant, opponents []Contestant) (RoundResult, error) {
	jobs := []matchJob{}
	for i, opponent := range opponents {
		for _, players := range [][2]Contestant{{underTest, opponent}, {opponent, underTest}} {
			for m := 0; m < c.numMatches; m++ {
				jobs = append(jobs, matchJob{opponent: i, match: len(jobs) + 1, players: players})
			}
		}
	}

	log.Info().Msgf("evaluating %s against %d opponents in %d matches...", underTest.Name(), len(opponents), len(jobs))

	results := make([]MatchResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = c.PlayMatch(job.match, job.players[0], job.players[1])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return RoundResult{}, fmt.Errorf("round of %s interrupted: %w", underTest.Name(), err)
	}
	if err := ctx.Err(); err != nil {
		return RoundResult{}, fmt.Errorf("round of %s interrupted: %w", underTest.Name(), err)
	}

	round := RoundResult{Agent: underTest.Name(), Opponents: make([]OpponentResult, len(opponents))}
	for i, opponent := range opponents {
		round.Opponents[i].Opponent = opponent.Name()
	}
	for i, job := range jobs {
		result := results[i]
		seat := result.seat(underTest.Name())
		tally := &round.Opponents[job.opponent]
		tally.Wins += result.Wins[seat]
		tally.Losses += result.Wins[1-seat]
		tally.Timeouts += result.Timeouts[seat]
		tally.Forfeits += result.Forfeits[seat]
	}
	for i, tally := range round.Opponents {
		log.Info().Msgf("match %d: %s vs %s result: %d to %d", i+1, underTest.Name(), tally.Opponent, tally.Wins, tally.Losses)
		round.Wins += tally.Wins
		round.Total += tally.Wins + tally.Losses
	}

	log.Info().Msgf("%s won %.2f%% of %d games", underTest.Name(), round.WinRate(), round.Total)
	return round, nil
}
