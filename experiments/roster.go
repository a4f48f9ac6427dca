package experiments

import (
	"isolation/agent"
	"isolation/searcher"
)

const (
	MinimaxDepth   = 3
	AlphaBetaDepth = 5
)

var opponentHeuristics = []struct {
	name      string
	heuristic string
}{
	{"Null", "null"},
	{"Open", "open"},
	{"Improved", "improved"},
}

// StandardOpponents is the fixed-depth field every agent under test plays
// against: a random mover, then minimax and alpha-beta searchers for each of
// the null, open-move and improved heuristics.
func StandardOpponents() []agent.Config {
	configs := []agent.Config{{Name: "Random", Kind: agent.KindRandom}}
	for _, h := range opponentHeuristics {
		configs = append(configs, agent.Config{
			Name:      "MM_" + h.name,
			Kind:      agent.KindSearch,
			Method:    searcher.MethodMinimax,
			Depth:     MinimaxDepth,
			Heuristic: h.heuristic,
		})
	}
	for _, h := range opponentHeuristics {
		configs = append(configs, agent.Config{
			Name:      "AB_" + h.name,
			Kind:      agent.KindSearch,
			Method:    searcher.MethodAlphaBeta,
			Depth:     AlphaBetaDepth,
			Heuristic: h.heuristic,
		})
	}
	return configs
}

// AgentsUnderTest pairs the custom heuristic with a baseline using the
// improved heuristic, both as iterative alpha-beta searchers.
func AgentsUnderTest() []agent.Config {
	return []agent.Config{
		{Name: "Archenemy", Kind: agent.KindSearch, Method: searcher.MethodAlphaBeta, Iterative: true, Heuristic: "improved"},
		{Name: "Player", Kind: agent.KindSearch, Method: searcher.MethodAlphaBeta, Iterative: true, Heuristic: "custom"},
	}
}
