package searcher

import "time"

// Deadline reports when a search must stop. The threshold is a safety margin
// that has to absorb the work done between two checks.
type Deadline struct {
	timeLeft  TimeLeft
	threshold time.Duration
}

func NewDeadline(timeLeft TimeLeft, threshold time.Duration) *Deadline {
	return &Deadline{timeLeft: timeLeft, threshold: threshold}
}

// Expired is true once the remaining time is at or below the threshold.
func (d *Deadline) Expired() bool {
	return d.timeLeft() <= d.threshold
}
