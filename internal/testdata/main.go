package testdata

import (
	"git.lost.host/meutraa/eotn/internal/game"
)

type NoteSpec struct {
	Pitch  game.Pitch
	Octave int
}

// Sequence returns a note selector that replays the given notes in order and
// then repeats the last one. Used where spawn order must be deterministic.
func Sequence(notes ...NoteSpec) func(game.Difficulty) (game.Pitch, int) {
	i := 0
	return func(game.Difficulty) (game.Pitch, int) {
		n := notes[i]
		if i < len(notes)-1 {
			i++
		}
		return n.Pitch, n.Octave
	}
}
