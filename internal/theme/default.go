package theme

import (
	"image/color"

	"git.lost.host/meutraa/eotn/internal/game"
)

type DefaultTheme struct {
}

const (
	naturalSym    = "⬤"
	accidentalSym = "◆"
)

var (
	letterColors = map[game.Pitch]color.RGBA{
		game.C: {236, 30, 0, 255},    // red
		game.D: {236, 128, 0, 255},   // orange
		game.E: {236, 195, 0, 255},   // yellow
		game.F: {0, 236, 128, 255},   // green
		game.G: {0, 118, 236, 255},   // blue
		game.A: {106, 0, 236, 255},   // purple
		game.B: {236, 0, 106, 255},   // pink
	}
	correctColor   = color.RGBA{0, 236, 128, 255}
	incorrectColor = color.RGBA{236, 30, 0, 255}
	expiredColor   = color.RGBA{106, 106, 106, 255}
	activeColor    = color.RGBA{255, 255, 255, 255}
)

func (t *DefaultTheme) NoteSymbol(p game.Pitch) string {
	if p.IsNatural() {
		return naturalSym
	}
	return accidentalSym
}

// Accidentals share the color of the natural whose line they sit on.
func (t *DefaultTheme) NoteColor(p game.Pitch) color.RGBA {
	col, ok := letterColors[p.Natural()]
	if !ok {
		return activeColor
	}
	return col
}

func (t *DefaultTheme) JudgmentColor(st game.NoteState) color.RGBA {
	switch st {
	case game.NoteCorrect:
		return correctColor
	case game.NoteIncorrect:
		return incorrectColor
	case game.NoteExpired:
		return expiredColor
	}
	return activeColor
}
