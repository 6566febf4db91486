package session

import (
	"git.lost.host/meutraa/eotn/internal/game"
	"git.lost.host/meutraa/eotn/internal/score"
	"git.lost.host/meutraa/eotn/internal/sound"
)

func (s *Session) onCorrect() {
	s.score += s.increment
	s.notifyScore()
	s.play(sound.KeyCorrect)

	tier := game.ForScore(s.tiers, s.score)
	if tier.Name == s.tier.Name {
		return
	}
	s.tier = tier
	// The new interval takes over without an immediate spawn. Unlike
	// Start, a tier change must not burst a note on top of the one just
	// judged.
	s.startSpawnLoopLocked(tier.SpawnInterval, false)
}

func (s *Session) onIncorrect() {
	s.play(sound.KeyIncorrect)
	if s.lives > 0 {
		s.lives--
		if s.listener != nil {
			s.listener.OnLifeLost(s.lives)
		}
	}
	if s.lives == 0 {
		s.gameOverLocked()
	}
}

func (s *Session) gameOverLocked() {
	s.phase = GameOver
	s.stopSpawnLoopLocked()
	s.lane.Clear()
	s.play(sound.KeyGameOver)
	if s.results != nil {
		s.results.Save(score.Result{
			Score:      s.score,
			Difficulty: s.tier.Name,
			PlayedAt:   s.clock.Now(),
		})
	}
	if s.listener != nil {
		s.listener.OnGameOver(s.score)
	}
}
