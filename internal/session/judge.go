package session

import (
	"git.lost.host/meutraa/eotn/internal/game"
	"git.lost.host/meutraa/eotn/internal/sound"
	"git.lost.host/meutraa/eotn/internal/track"
)

// HandleKey resolves a key press against the note nearest the judgment line.
// The comparison is alias-aware: pressing Db matches a C# note and the other
// way round, they are the same key.
func (s *Session) HandleKey(p game.Pitch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Playing {
		return
	}

	h, note, ok := s.lane.JudgmentCandidate()
	if !ok {
		// Pressing while notes are on screen but none is close enough is
		// a miss against the head. Pressing at an empty staff costs
		// nothing.
		head, headNote, active := s.lane.First()
		if !active {
			return
		}
		s.reveal(headNote, game.NoteIncorrect)
		s.lane.Remove(head, game.NoteIncorrect)
		s.onIncorrect()
		return
	}

	if game.IsEnharmonicMatch(p, note.Pitch) {
		s.reveal(note, game.NoteCorrect)
		s.lane.Remove(h, game.NoteCorrect)
		s.play(sound.NoteKey(note.Pitch, note.Octave))
		s.onCorrect()
		return
	}

	s.reveal(note, game.NoteIncorrect)
	s.lane.Remove(h, game.NoteIncorrect)
	s.onIncorrect()
}

// HandleTimeout fires from the deadline scheduled at spawn. The lane's
// head-only rule is the sole race-breaker against a near-simultaneous key
// press: whichever reaches the lane first wins, the other is a no-op.
func (s *Session) HandleTimeout(h track.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Playing {
		return
	}

	head, note, ok := s.lane.First()
	if !ok || head != h {
		// Judged or removed earlier, never double-penalize
		return
	}
	if !s.lane.Timeout(h) {
		return
	}
	s.reveal(note, game.NoteExpired)
	s.play(sound.KeyMiss)
	s.onIncorrect()
}

// reveal shows the note's true pitch at the judgment line and flashes the
// line in the outcome's color.
func (s *Session) reveal(note *game.Note, st game.NoteState) {
	c := s.theme.JudgmentColor(st)
	s.renderer.HighlightJudgmentLine(c)
	s.renderer.ShowFloatingText(note.Pitch.String(), c, s.lane.RevealPos(note))
}
