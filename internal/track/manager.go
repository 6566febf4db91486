package track

import (
	"errors"
	"time"

	"git.lost.host/meutraa/eotn/internal/clock"
	"git.lost.host/meutraa/eotn/internal/game"
	"git.lost.host/meutraa/eotn/internal/geom"
	"git.lost.host/meutraa/eotn/internal/render"
)

var (
	ErrInvalidPitch = errors.New("invalid pitch")
	ErrOctaveRange  = errors.New("octave out of range")
)

// Handle identifies a spawned note. Handles outlive their notes; every
// operation on a handle first checks the note is still present, so a stale
// timeout or double removal is a safe no-op.
type Handle uint64

// Geometry fixes the horizontal path notes travel, in anchor space.
type Geometry struct {
	StartX float64
	EndX   float64

	// JudgmentX is the line a note must reach to be judged.
	JudgmentX float64
	// CriticalDistance is the half-width of the judgment window around it.
	CriticalDistance float64
}

type entry struct {
	handle Handle
	note   *game.Note
	travel time.Duration
	sprite render.Handle
}

// Manager owns the ordered sequence of in-flight notes. Insertion order is
// spawn order is judgment priority; removal never reorders the remainder,
// and only the head is ever eligible for judgment or timeout.
//
// The manager does no locking of its own; the session serializes all calls.
type Manager struct {
	clock    clock.Clock
	staff    game.Staff
	geometry Geometry
	renderer render.Renderer

	next    Handle
	entries []*entry
}

func NewManager(c clock.Clock, staff game.Staff, g Geometry, r render.Renderer) *Manager {
	return &Manager{
		clock:    c,
		staff:    staff,
		geometry: g,
		renderer: r,
	}
}

// Spawn creates a note at the start offset on its staff line, schedules its
// linear motion toward the end offset, and appends it to the tail of the
// active sequence.
func (m *Manager) Spawn(p game.Pitch, octave int, travel time.Duration) (Handle, error) {
	if !p.Valid() {
		return 0, ErrInvalidPitch
	}
	if !game.ValidOctave(octave) {
		return 0, ErrOctaveRange
	}

	note := &game.Note{
		Pitch:  p,
		Octave: octave,
		Time:   m.clock.Now(),
		StaffY: m.staff.Position(p, octave),
	}
	start := geom.Vec3{X: m.geometry.StartX, Y: note.StaffY}
	end := geom.Vec3{X: m.geometry.EndX, Y: note.StaffY}

	sprite := m.renderer.RenderNote(p, octave, start)
	m.renderer.AnimateMove(sprite, end, travel)

	m.next++
	m.entries = append(m.entries, &entry{
		handle: m.next,
		note:   note,
		travel: travel,
		sprite: sprite,
	})
	return m.next, nil
}

// x is the current horizontal offset of a note along its linear path.
func (m *Manager) x(e *entry) float64 {
	elapsed := m.clock.Now().Sub(e.note.Time)
	t := float64(elapsed) / float64(e.travel)
	return geom.Lerp(
		geom.Vec3{X: m.geometry.StartX},
		geom.Vec3{X: m.geometry.EndX},
		t,
	).X
}

// JudgmentCandidate returns the head of the active sequence if and only if it
// is within the critical window of the judgment line. Notes never overtake
// each other in judgment priority, however visually close.
func (m *Manager) JudgmentCandidate() (Handle, *game.Note, bool) {
	if len(m.entries) == 0 {
		return 0, nil, false
	}
	head := m.entries[0]
	d := m.x(head) - m.geometry.JudgmentX
	if d < 0 {
		d = -d
	}
	if d > m.geometry.CriticalDistance {
		return 0, nil, false
	}
	return head.handle, head.note, true
}

// Timeout expires the note if it is still the head. A false return means the
// note was judged or removed earlier and must not be penalized again.
func (m *Manager) Timeout(h Handle) bool {
	if len(m.entries) == 0 || m.entries[0].handle != h {
		return false
	}
	m.removeAt(0, game.NoteExpired)
	return true
}

// Remove resolves the note and schedules its exit animation. Removing an
// absent handle is a no-op.
func (m *Manager) Remove(h Handle, st game.NoteState) {
	for i, e := range m.entries {
		if e.handle == h {
			m.removeAt(i, st)
			return
		}
	}
}

// Clear removes every active note, head first. Used on game over.
func (m *Manager) Clear() {
	for len(m.entries) > 0 {
		m.removeAt(0, game.NoteExpired)
	}
}

func (m *Manager) removeAt(i int, st game.NoteState) {
	e := m.entries[i]
	e.note.State = st
	m.renderer.RemoveNote(e.sprite)
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
}

func (m *Manager) HasActive() bool {
	return len(m.entries) > 0
}

// First returns the head of the active sequence regardless of its distance
// to the judgment line.
func (m *Manager) First() (Handle, *game.Note, bool) {
	if len(m.entries) == 0 {
		return 0, nil, false
	}
	return m.entries[0].handle, m.entries[0].note, true
}

func (m *Manager) FirstPitch() (game.Pitch, bool) {
	if len(m.entries) == 0 {
		return 0, false
	}
	return m.entries[0].note.Pitch, true
}

// RevealPos is where floating judgment text for a note belongs: on the
// note's staff line, at the judgment line.
func (m *Manager) RevealPos(n *game.Note) geom.Vec3 {
	return geom.Vec3{X: m.geometry.JudgmentX, Y: n.StaffY}
}

func (m *Manager) Len() int {
	return len(m.entries)
}
