package render

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"git.lost.host/meutraa/eotn/internal/game"
	"git.lost.host/meutraa/eotn/internal/geom"
	"git.lost.host/meutraa/eotn/internal/theme"
	"golang.org/x/term"
)

const (
	// removeGrace keeps a resolved note on screen briefly for its exit.
	removeGrace = 250 * time.Millisecond

	textFrames      = 45
	highlightFrames = 12
)

type sprite struct {
	pitch     game.Pitch
	octave    int
	start     geom.Vec3
	end       geom.Vec3
	duration  time.Duration
	startedAt time.Time
	removed   bool
	removedAt time.Time
}

type floating struct {
	text   string
	color  color.RGBA
	at     geom.Vec3
	frames int
}

// DefaultRenderer draws the staff into the terminal with raw ANSI writes,
// one buffered flush per frame. It maps anchor-space offsets onto rows and
// columns; the game core never sees cells.
type DefaultRenderer struct {
	Theme theme.Theme
	Staff game.Staff

	// StartX..EndX is the horizontal extent of note travel; JudgmentX is
	// where the judgment line is drawn.
	StartX, EndX, JudgmentX float64

	FramePeriod time.Duration

	restoreState *term.State
	rows, cols   int

	buffer strings.Builder

	mu         sync.Mutex
	next       Handle
	sprites    map[Handle]*sprite
	texts      []*floating
	highlight  color.RGBA
	highlightN int
}

func (r *DefaultRenderer) Init() error {
	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return err
	}
	r.restoreState = state

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return fmt.Errorf("unable to get terminal size: %w", err)
	}
	r.rows, r.cols = rows, cols
	r.sprites = map[Handle]*sprite{}

	fmt.Printf("%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Printf("%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) RenderNote(p game.Pitch, octave int, start geom.Vec3) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.sprites[r.next] = &sprite{
		pitch:     p,
		octave:    octave,
		start:     start,
		end:       start,
		startedAt: time.Now(),
	}
	return r.next
}

func (r *DefaultRenderer) AnimateMove(h Handle, end geom.Vec3, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, ok := r.sprites[h]
	if !ok {
		return
	}
	sp.end = end
	sp.duration = duration
	sp.startedAt = time.Now()
}

func (r *DefaultRenderer) RemoveNote(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sp, ok := r.sprites[h]
	if !ok || sp.removed {
		return
	}
	sp.removed = true
	sp.removedAt = time.Now()
}

func (r *DefaultRenderer) HighlightJudgmentLine(c color.RGBA) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.highlight = c
	r.highlightN = highlightFrames
}

func (r *DefaultRenderer) ShowFloatingText(text string, c color.RGBA, at geom.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, &floating{text: text, color: c, at: at, frames: textFrames})
}

// RenderLoop drives frames at FramePeriod until the callback returns false.
// The callback writes HUD cells; world objects are drawn after it.
func (r *DefaultRenderer) RenderLoop(render func(now time.Time, duration time.Duration) bool) {
	startTime := time.Now()
	for {
		now := time.Now()
		deadline := now.Add(r.FramePeriod)

		r.buffer.WriteString("\033[2J")
		if !render(now, now.Sub(startTime)) {
			return
		}
		r.drawWorld(now)
		r.flush()

		time.Sleep(deadline.Sub(time.Now()))
	}
}

func (r *DefaultRenderer) column(x float64) int {
	span := r.StartX - r.EndX
	if span == 0 {
		return 2
	}
	w := r.cols - 6
	return 2 + int(float64(w)*((x-r.EndX)/span))
}

func (r *DefaultRenderer) row(y float64) int {
	steps := int(math.Round((y - r.Staff.BaseOffset) / r.Staff.HalfStepHeight))
	return r.rows - 4 - steps
}

func (r *DefaultRenderer) inField(row, col int) bool {
	return row > 0 && row < r.rows && col > 0 && col < r.cols
}

func (r *DefaultRenderer) drawWorld(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Staff lines sit on every other half step from the lowest line up.
	left, right := r.column(r.EndX), r.column(r.StartX)
	for step := 2; step <= 10; step += 2 {
		y := r.Staff.BaseOffset + float64(step)*r.Staff.HalfStepHeight
		row := r.row(y)
		for col := left; col <= right; col++ {
			if r.inField(row, col) {
				r.Fill(row, col, "─")
			}
		}
	}

	// Judgment line, flashing with the last outcome
	jcol := r.column(r.JudgmentX)
	jc := color.RGBA{106, 106, 106, 255}
	if r.highlightN > 0 {
		r.highlightN--
		jc = r.highlight
	}
	for row := r.row(r.Staff.BaseOffset + 12*r.Staff.HalfStepHeight); row <= r.row(r.Staff.BaseOffset); row++ {
		if r.inField(row, jcol) {
			r.FillColor(row, jcol, jc, "│")
		}
	}

	for h, sp := range r.sprites {
		if sp.removed && now.Sub(sp.removedAt) > removeGrace {
			delete(r.sprites, h)
			continue
		}
		t := 1.0
		if sp.duration > 0 {
			t = float64(now.Sub(sp.startedAt)) / float64(sp.duration)
		}
		pos := geom.Lerp(sp.start, sp.end, t)
		row, col := r.row(pos.Y), r.column(pos.X)
		if !r.inField(row, col) {
			continue
		}
		c := r.Theme.NoteColor(sp.pitch)
		if sp.removed {
			c = color.RGBA{106, 106, 106, 255}
		}
		r.FillColor(row, col, c, r.Theme.NoteSymbol(sp.pitch))
	}

	texts := make([]*floating, 0, len(r.texts))
	for _, ft := range r.texts {
		if ft.frames <= 0 {
			continue
		}
		ft.frames--
		row, col := r.row(ft.at.Y), r.column(ft.at.X)+2
		if r.inField(row, col) {
			r.FillColor(row, col, ft.color, ft.text)
		}
		texts = append(texts, ft)
	}
	r.texts = texts
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.FormatInt(int64(row), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(column), 10))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() {
	os.Stdout.WriteString(r.buffer.String())
	r.buffer.Reset()
}

func (r *DefaultRenderer) Size() (rows, cols int) {
	return r.rows, r.cols
}
