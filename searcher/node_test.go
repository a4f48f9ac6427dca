package searcher

import (
	"math"
	"time"

	"isolation/game"

	"golang.org/x/exp/rand"
)

const (
	maxPlayer game.Player = "max"
	minPlayer game.Player = "min"
)

// node is a synthetic game tree position. Child i is reached by the move
// (0, i) unless moves are given explicitly.
type node struct {
	score    float64
	children []*node
	moves    []game.Move
}

func leaves(scores ...float64) []*node {
	nodes := make([]*node, len(scores))
	for i, score := range scores {
		nodes[i] = &node{score: score}
	}
	return nodes
}

func (n *node) moveTo(i int) game.Move {
	if n.moves != nil {
		return n.moves[i]
	}
	return game.Move{Row: 0, Col: i}
}

// mockState walks a node tree, alternating the two players.
type mockState struct {
	node   *node
	active game.Player
	count  int
}

func newMockState(root *node) mockState {
	return mockState{node: root, active: maxPlayer}
}

func (m mockState) ActivePlayer() game.Player {
	return m.active
}

func (m mockState) InactivePlayer() game.Player {
	return m.Opponent(m.active)
}

func (m mockState) Opponent(player game.Player) game.Player {
	if player == maxPlayer {
		return minPlayer
	}
	return maxPlayer
}

func (m mockState) LegalMoves(player game.Player) []game.Move {
	moves := make([]game.Move, len(m.node.children))
	for i := range m.node.children {
		moves[i] = m.node.moveTo(i)
	}
	return moves
}

func (m mockState) ForecastMove(move game.Move) game.State {
	for i, child := range m.node.children {
		if m.node.moveTo(i) == move {
			return mockState{node: child, active: m.InactivePlayer(), count: m.count + 1}
		}
	}
	panic("illegal move " + move.String())
}

func (m mockState) IsWinner(player game.Player) bool { return false }
func (m mockState) IsLoser(player game.Player) bool  { return false }
func (m mockState) MoveCount() int                   { return m.count }
func (m mockState) Width() int                       { return 1 }
func (m mockState) Height() int                      { return 1 }
func (m mockState) BlankSpaces() []game.Move         { return nil }

// nodeScore evaluates a mockState by its node's score
func nodeScore(s game.State, player game.Player) float64 {
	return s.(mockState).node.score
}

// textbookTree is a binary tree of depth 3 with leaves [3, 5, 2, 9, 0, 7, 1, 8].
// Inner nodes carry heuristic scores for shallower searches.
func textbookTree() *node {
	return &node{children: []*node{
		{score: 1, children: []*node{
			{score: 4, children: leaves(3, 5)},
			{score: 6, children: leaves(2, 9)},
		}},
		{score: 2, children: []*node{
			{score: 8, children: leaves(0, 7)},
			{score: 1, children: leaves(1, 8)},
		}},
	}}
}

// randomTree builds a tree of the given height with up to maxBranching
// children per node and integer leaf scores in [-10, 10].
func randomTree(r *rand.Rand, height, maxBranching int) *node {
	n := &node{score: float64(r.Intn(21) - 10)}
	if height == 0 {
		return n
	}
	branching := r.Intn(maxBranching + 1)
	for i := 0; i < branching; i++ {
		n.children = append(n.children, randomTree(r, height-1, maxBranching))
	}
	return n
}

// unlimited never expires
func unlimited() time.Duration {
	return time.Hour
}

// expired reports that no time is left
func expired() time.Duration {
	return 0
}

// countdown allows calls deadline checks before reporting expiry, and counts
// every check in checks.
func countdown(calls int, checks *int) TimeLeft {
	return func() time.Duration {
		*checks++
		if *checks > calls {
			return 0
		}
		return time.Second
	}
}

// fixedRand always picks the same index, clamped to n.
type fixedRand struct {
	index int
}

func (f fixedRand) Intn(n int) int {
	return int(math.Min(float64(f.index), float64(n-1)))
}

func newTestSearch(evaluate game.Evaluate, timeLeft TimeLeft) (*Search, Collector) {
	metrics := NewMetricsCollector()
	metrics.Start(MethodMinimax)
	return NewSearch(maxPlayer, evaluate, NewDeadline(timeLeft, 0), metrics), metrics
}
