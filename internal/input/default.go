package input

import (
	"github.com/eiannone/keyboard"

	"git.lost.host/meutraa/eotn/internal/game"
)

// Event is one translated key action.
type Event struct {
	Press  bool
	Pitch  game.Pitch
	Octave int

	Confirm bool // freeze the staff placement
	Start   bool // start or restart a game
	Quit    bool
}

// Keymap lays the virtual keyboard over two terminal rows per octave. Black
// keys carry sharp identities only; flats exist solely as aliases.
type Keymap struct {
	Naturals [game.OctaveCount]string // 7 runes each, C..B
	Sharps   [game.OctaveCount]string // 5 runes each, C# D# F# G# A#
}

func DefaultKeymap() Keymap {
	return Keymap{
		Naturals: [game.OctaveCount]string{"zxcvbnm", "qwertyu"},
		Sharps:   [game.OctaveCount]string{"sdghj", "23567"},
	}
}

func (k Keymap) Pitch(r rune) (game.Pitch, int, bool) {
	for octave := 0; octave < game.OctaveCount; octave++ {
		for i, c := range k.Naturals[octave] {
			if c == r {
				return game.Naturals[i], octave, true
			}
		}
		for i, c := range k.Sharps[octave] {
			if c == r {
				return game.Sharps[i], octave, true
			}
		}
	}
	return 0, 0, false
}

// Listen opens the keyboard and translates events until the returned close
// func runs. Unmapped runes are dropped.
func Listen(keymap Keymap, events chan<- Event) (func() error, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, err
	}
	go func() {
		for ev := range keys {
			if nil != ev.Err {
				continue
			}
			switch {
			case ev.Key == keyboard.KeyEsc:
				events <- Event{Quit: true}
				return
			case ev.Key == keyboard.KeySpace:
				events <- Event{Start: true}
			case ev.Key == keyboard.KeyEnter:
				events <- Event{Confirm: true}
			default:
				if p, octave, ok := keymap.Pitch(ev.Rune); ok {
					events <- Event{Press: true, Pitch: p, Octave: octave}
				}
			}
		}
	}()
	return keyboard.Close, nil
}
