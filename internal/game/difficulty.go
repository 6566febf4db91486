package game

import "time"

type Difficulty struct {
	Name string

	// Score is the minimum score required to enter this tier.
	Score int

	// SpawnInterval and TravelDuration are independent tunables. At higher
	// tiers notes spawn faster than they travel, so they overlap on screen.
	SpawnInterval  time.Duration
	TravelDuration time.Duration

	// Octaves and Accidentals select the spawn pool for this tier.
	Octaves     int
	Accidentals bool
}

// ForScore returns the highest tier whose threshold is met. Tiers must be
// ordered by ascending Score. Difficulty only ever rises with score, there is
// no downward path.
func ForScore(tiers []Difficulty, score int) Difficulty {
	tier := tiers[0]
	for _, t := range tiers {
		if score >= t.Score {
			tier = t
		}
	}
	return tier
}
