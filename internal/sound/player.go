package sound

import (
	"fmt"

	"git.lost.host/meutraa/eotn/internal/game"
)

// Fixed effect keys. A key names an asset file, not a playback mechanism.
const (
	KeyCorrect   = "correct"
	KeyIncorrect = "incorrect"
	KeyMiss      = "miss"
	KeyGameOver  = "gameover"
	KeyStart     = "start"
)

// NoteKey is the asset key for a pitched note sample, e.g. "C#0".
func NoteKey(p game.Pitch, octave int) string {
	return fmt.Sprintf("%v%v", p, octave)
}

// Player plays short samples fire-and-forget. A missing asset degrades the
// experience, it never fails the game.
type Player interface {
	Init() error
	Deinit()
	Play(key string)
}
