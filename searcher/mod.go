package searcher

import (
	"errors"
	"fmt"
	"math"
	"time"

	"isolation/game"

	"golang.org/x/exp/rand"
)

// ErrSearchCancelled is returned by every search frame once the deadline has
// expired. Only the move selection driver recovers from it.
var ErrSearchCancelled = errors.New("search cancelled")

// TimeLeft reports the time remaining for the current move decision.
type TimeLeft func() time.Duration

// Rand picks the fallback move. *rand.Rand from golang.org/x/exp/rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a goroutine-safe generator seeded from the clock.
func NewRand() *rand.Rand {
	src := &rand.LockedSource{}
	src.Seed(uint64(time.Now().UnixNano()))
	return rand.New(src)
}

type Method string

const (
	MethodMinimax   Method = "minimax"
	MethodAlphaBeta Method = "alphabeta"
)

// ParseMethod validates a method name.
func ParseMethod(name string) (Method, error) {
	switch m := Method(name); m {
	case MethodMinimax, MethodAlphaBeta:
		return m, nil
	}
	return "", fmt.Errorf("unknown search method %q", name)
}

// Result is a scored move. Move is game.NoMove for leaves and for nodes
// without legal moves.
type Result struct {
	Score float64
	Move  game.Move
}

// Compare orders results by score, breaking ties by move (see game.Move.Compare).
// It returns -1, 0 or +1.
func (r Result) Compare(other Result) int {
	switch {
	case r.Score < other.Score:
		return -1
	case r.Score > other.Score:
		return 1
	}
	return r.Move.Compare(other.Move)
}

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)
