package metrics

import (
	"sync"
	"time"

	"isolation/agent"
	"isolation/game"
	"isolation/searcher"

	"github.com/google/uuid"
)

type AgentConfig struct {
	ID int
	agent.Config
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	Termination    string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     uuid.UUID
	Match  int
	Agent1 int // AgentConfig.ID of the first seat
	Agent2 int // AgentConfig.ID of the second seat
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameRecord.ID
	MoveMetric
}

// Recorder accumulates records from concurrently played games.
type Recorder struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Add stores a finished game under a fresh ID and returns it.
func (r *Recorder) Add(match, agent1, agent2 int, metric GameMetric, moves []MoveMetric) uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.games = append(r.games, GameRecord{ID: id, Match: match, Agent1: agent1, Agent2: agent2, GameMetric: metric})
	for _, m := range moves {
		r.moves = append(r.moves, MoveRecord{Game: id, MoveMetric: m})
	}
	return id
}

func (r *Recorder) Games() []GameRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]GameRecord(nil), r.games...)
}

func (r *Recorder) Moves() []MoveRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]MoveRecord(nil), r.moves...)
}
