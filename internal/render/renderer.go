package render

import (
	"image/color"
	"time"

	"git.lost.host/meutraa/eotn/internal/game"
	"git.lost.host/meutraa/eotn/internal/geom"
)

// Handle identifies a rendered note object.
type Handle uint64

// Renderer is the narrow surface the game core draws through. Positions are
// offsets in anchor space; how they become pixels or terminal cells is the
// implementation's business.
type Renderer interface {
	Init() error
	Deinit() error

	RenderNote(p game.Pitch, octave int, start geom.Vec3) Handle
	AnimateMove(h Handle, end geom.Vec3, duration time.Duration)
	RemoveNote(h Handle)

	HighlightJudgmentLine(c color.RGBA)
	ShowFloatingText(text string, c color.RGBA, at geom.Vec3)
}
