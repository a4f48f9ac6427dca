package game

import (
	"fmt"
	"math"
	"sort"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Terminal wraps evaluate so that won positions score +Inf and lost positions
// score -Inf for player, regardless of the heuristic.
func Terminal(evaluate Evaluate) Evaluate {
	return func(s State, player Player) float64 {
		if s.IsLoser(player) {
			return negInf
		}
		if s.IsWinner(player) {
			return posInf
		}
		return evaluate(s, player)
	}
}

// CustomScore is the default evaluation for search agents.
var CustomScore = Terminal(MovesToBoard)

// Null scores every position equally.
func Null(s State, player Player) float64 {
	return 0
}

// Open counts player's available moves.
func Open(s State, player Player) float64 {
	return float64(len(s.LegalMoves(player)))
}

// Improved is the difference between player's and the opponent's mobility.
func Improved(s State, player Player) float64 {
	own, opp := mobility(s, player)
	return float64(own - opp)
}

// Simple is an alias of Improved kept under its own name in the registry.
func Simple(s State, player Player) float64 {
	return Improved(s, player)
}

// Weighted doubles the weight of player's own moves.
func Weighted(s State, player Player) float64 {
	own, opp := mobility(s, player)
	return float64(own*2 - opp)
}

// MovesToBoard weighs player's own moves by how far the game has progressed,
// so mobility matters more as the board fills up.
func MovesToBoard(s State, player Player) float64 {
	own, opp := mobility(s, player)
	return float64(own)*progress(s)*2 - float64(opp)
}

// WeightedWithBoard also rewards the blank cells left on the board.
func WeightedWithBoard(s State, player Player) float64 {
	own, opp := mobility(s, player)
	blanks := len(s.BlankSpaces())
	return float64(own*3 - opp*2 + blanks)
}

// DefensiveToOffensive values own mobility in the first half of the game and
// restricting the opponent in the second half.
func DefensiveToOffensive(s State, player Player) float64 {
	own, opp := mobility(s, player)
	if progress(s) <= 0.5 {
		return float64(own*2 - opp)
	}
	return float64(own - opp*2)
}

// OffensiveToDefensive is DefensiveToOffensive with the phases swapped.
func OffensiveToDefensive(s State, player Player) float64 {
	own, opp := mobility(s, player)
	if progress(s) > 0.5 {
		return float64(own*2 - opp)
	}
	return float64(own - opp*2)
}

// BlockingOpponent chases the opponent by rewarding cells both players could
// jump to next.
func BlockingOpponent(s State, player Player) float64 {
	ownMoves := s.LegalMoves(player)
	oppMoves := s.LegalMoves(s.Opponent(player))

	shared := 0
	seen := make(map[Move]bool, len(ownMoves))
	for _, m := range ownMoves {
		seen[m] = true
	}
	counted := make(map[Move]bool, len(oppMoves))
	for _, m := range oppMoves {
		if seen[m] && !counted[m] {
			counted[m] = true
			shared++
		}
	}

	return float64(len(ownMoves) - len(oppMoves)*2 + shared)
}

// Heuristics holds every evaluation function by name, each wrapped by Terminal.
var Heuristics = map[string]Evaluate{
	"null":                   Terminal(Null),
	"open":                   Terminal(Open),
	"improved":               Terminal(Improved),
	"simple":                 Terminal(Simple),
	"weighted":               Terminal(Weighted),
	"moves_to_board":         Terminal(MovesToBoard),
	"weighted_with_board":    Terminal(WeightedWithBoard),
	"defensive_to_offensive": Terminal(DefensiveToOffensive),
	"offensive_to_defensive": Terminal(OffensiveToDefensive),
	"blocking_opponent":      Terminal(BlockingOpponent),
	"custom":                 CustomScore,
}

// LookupHeuristic returns the named evaluation function.
func LookupHeuristic(name string) (Evaluate, error) {
	evaluate, ok := Heuristics[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q (available: %v)", name, HeuristicNames())
	}
	return evaluate, nil
}

// HeuristicNames returns the registered heuristic names in sorted order.
func HeuristicNames() []string {
	names := make([]string, 0, len(Heuristics))
	for name := range Heuristics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// mobility counts the legal moves of player and of the opponent
func mobility(s State, player Player) (own, opp int) {
	own = len(s.LegalMoves(player))
	opp = len(s.LegalMoves(s.Opponent(player)))
	return own, opp
}

// progress is the number of moves played relative to the board size
func progress(s State) float64 {
	return float64(s.MoveCount()) / float64(s.Width()*s.Height())
}
