package agent

import (
	"errors"
	"fmt"
	"time"

	"isolation/game"
	"isolation/searcher"
)

type Kind string

const (
	KindSearch Kind = "search"
	KindRandom Kind = "random"
)

// Config describes how to build an agent. The zero values of Method, Depth,
// Heuristic and Threshold fall back to the searcher defaults.
type Config struct {
	Name      string          `yaml:"name"`
	Kind      Kind            `yaml:"kind"`
	Method    searcher.Method `yaml:"method"`
	Iterative bool            `yaml:"iterative"`
	Depth     int             `yaml:"depth"`
	Heuristic string          `yaml:"heuristic"`
	Threshold time.Duration   `yaml:"threshold"`
}

func (c Config) Validate() error {
	if c.Name == "" {
		return errors.New("agent name must not be empty")
	}
	switch c.Kind {
	case KindRandom:
		return nil
	case "", KindSearch:
	default:
		return fmt.Errorf("agent %s: unknown kind %q", c.Name, c.Kind)
	}
	if c.Method != "" {
		if _, err := searcher.ParseMethod(string(c.Method)); err != nil {
			return fmt.Errorf("agent %s: %w", c.Name, err)
		}
	}
	if c.Depth < 0 {
		return fmt.Errorf("agent %s: depth must not be negative, got %d", c.Name, c.Depth)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("agent %s: threshold must not be negative, got %s", c.Name, c.Threshold)
	}
	if c.Heuristic != "" {
		if _, err := game.LookupHeuristic(c.Heuristic); err != nil {
			return fmt.Errorf("agent %s: %w", c.Name, err)
		}
	}
	return nil
}

func (c Config) String() string {
	if c.Kind == KindRandom {
		return fmt.Sprintf("%s(random)", c.Name)
	}
	heuristic := c.Heuristic
	if heuristic == "" {
		heuristic = "custom"
	}
	method := c.Method
	if method == "" {
		method = searcher.DefaultMethod
	}
	if c.Iterative {
		return fmt.Sprintf("%s(%s iterative, %s)", c.Name, method, heuristic)
	}
	depth := c.Depth
	if depth == 0 {
		depth = searcher.DefaultSearchDepth
	}
	return fmt.Sprintf("%s(%s depth=%d, %s)", c.Name, method, depth, heuristic)
}

// New builds the agent described by c. Extra options are applied after the
// ones derived from c, so they win.
func New(c Config, options ...searcher.Option) (Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Kind == KindRandom {
		return NewRandom(nil), nil
	}

	opts := []searcher.Option{
		searcher.WithIterative(c.Iterative),
		searcher.WithSearchDepth(c.Depth),
		searcher.WithMetrics(),
	}
	if c.Method != "" {
		opts = append(opts, searcher.WithMethod(c.Method))
	}
	if c.Heuristic != "" {
		evaluate, _ := game.LookupHeuristic(c.Heuristic)
		opts = append(opts, searcher.WithEvaluationFn(evaluate))
	}
	if c.Threshold > 0 {
		opts = append(opts, searcher.WithTimeoutThreshold(c.Threshold))
	}
	return searcher.NewSearcher(append(opts, options...)...), nil
}
