package theme

import (
	"image/color"

	"git.lost.host/meutraa/eotn/internal/game"
)

type Theme interface {
	NoteSymbol(p game.Pitch) string
	NoteColor(p game.Pitch) color.RGBA
	JudgmentColor(st game.NoteState) color.RGBA
}
