package score

import "time"

// Scorer records finished games. Live game state is never persisted, only
// the outcome of a run.
type Scorer interface {
	Init() error
	Deinit()

	// Save the result of a finished game
	Save(r Result)

	// Load past results, best first
	Load() []Result
}

type Result struct {
	Score      int
	Difficulty string
	PlayedAt   time.Time
}
