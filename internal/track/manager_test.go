package track

import (
	"image/color"
	"testing"
	"time"

	"git.lost.host/meutraa/eotn/internal/clock"
	"git.lost.host/meutraa/eotn/internal/game"
	"git.lost.host/meutraa/eotn/internal/geom"
	"git.lost.host/meutraa/eotn/internal/render"
)

type nullRenderer struct {
	renders uint64
	removed int
}

func (r *nullRenderer) Init() error   { return nil }
func (r *nullRenderer) Deinit() error { return nil }
func (r *nullRenderer) RenderNote(p game.Pitch, octave int, start geom.Vec3) render.Handle {
	r.renders++
	return render.Handle(r.renders)
}
func (r *nullRenderer) AnimateMove(h render.Handle, end geom.Vec3, d time.Duration) {}
func (r *nullRenderer) RemoveNote(h render.Handle)                                  { r.removed++ }
func (r *nullRenderer) HighlightJudgmentLine(c color.RGBA)                          {}
func (r *nullRenderer) ShowFloatingText(text string, c color.RGBA, at geom.Vec3)    {}

var testStaff = game.Staff{HalfStepHeight: 0.02, BaseOffset: -0.04}

var testGeometry = Geometry{
	StartX:           0.5,
	EndX:             -0.5,
	JudgmentX:        -0.5,
	CriticalDistance: 0.08,
}

func newTestManager() (*Manager, *clock.Mock, *nullRenderer) {
	mock := clock.NewMock(time.Unix(1000, 0))
	r := &nullRenderer{}
	return NewManager(mock, testStaff, testGeometry, r), mock, r
}

func TestTimeoutHeadOnly(t *testing.T) {
	m, _, _ := newTestManager()
	h1, _ := m.Spawn(game.C, 0, time.Second*5)
	h2, _ := m.Spawn(game.D, 0, time.Second*5)
	h3, _ := m.Spawn(game.E, 0, time.Second*5)

	if m.Timeout(h2) {
		t.Fatal("timeout on a non-head note must be a no-op")
	}
	if m.Len() != 3 {
		t.Fatal("no-op timeout must not remove anything")
	}
	if !m.Timeout(h1) {
		t.Fatal("timeout on the head must report a miss")
	}
	if head, _, _ := m.First(); head != h2 {
		t.Fatal("second spawn should become the head")
	}
	if m.Timeout(h3) {
		t.Fatal("third spawn is still not the head")
	}
}

func TestTimeoutAfterRemoval(t *testing.T) {
	m, _, _ := newTestManager()
	h, _ := m.Spawn(game.C, 0, time.Second*5)
	m.Remove(h, game.NoteCorrect)
	if m.Timeout(h) {
		t.Fatal("a judged note must not time out again")
	}
}

func TestJudgmentWindow(t *testing.T) {
	m, mock, _ := newTestManager()
	if _, _, ok := m.JudgmentCandidate(); ok {
		t.Fatal("empty sequence has no candidate")
	}

	m.Spawn(game.C, 0, time.Second*5)
	if _, _, ok := m.JudgmentCandidate(); ok {
		t.Fatal("a freshly spawned note is far from the line")
	}

	// 92% of the way: 0.08 from the line, just inside the window
	mock.Advance(time.Millisecond * 4600)
	if _, note, ok := m.JudgmentCandidate(); !ok || note.Pitch != game.C {
		t.Fatal("note should be judgeable inside the critical window")
	}

	// Arrived: distance zero
	mock.Advance(time.Millisecond * 400)
	if _, _, ok := m.JudgmentCandidate(); !ok {
		t.Fatal("note at the line is judgeable")
	}
}

func TestOnlyHeadIsCandidate(t *testing.T) {
	m, mock, _ := newTestManager()
	h1, _ := m.Spawn(game.C, 0, time.Second*5)
	mock.Advance(time.Second * 2)
	m.Spawn(game.D, 0, time.Second*5)
	mock.Advance(time.Second * 3)

	// Head has arrived; the second note is mid-travel
	if _, note, ok := m.JudgmentCandidate(); !ok || note.Pitch != game.C {
		t.Fatal("head should be the candidate")
	}
	m.Remove(h1, game.NoteCorrect)
	if _, _, ok := m.JudgmentCandidate(); ok {
		t.Fatal("new head is still mid-travel, no candidate")
	}
}

func TestSpawnValidation(t *testing.T) {
	m, _, _ := newTestManager()
	if _, err := m.Spawn(game.C, 2, time.Second); err != ErrOctaveRange {
		t.Log("expected octave rejection, got", err)
		t.Fail()
	}
	if _, err := m.Spawn(game.C, -1, time.Second); err != ErrOctaveRange {
		t.Log("expected octave rejection, got", err)
		t.Fail()
	}
	if _, err := m.Spawn(game.Pitch(40), 0, time.Second); err != ErrInvalidPitch {
		t.Log("expected pitch rejection, got", err)
		t.Fail()
	}
	if m.HasActive() {
		t.Fatal("rejected spawns must not enter the sequence")
	}
}

func TestRemovePreservesOrder(t *testing.T) {
	m, _, _ := newTestManager()
	h1, _ := m.Spawn(game.C, 0, time.Second*5)
	h2, _ := m.Spawn(game.D, 0, time.Second*5)
	h3, _ := m.Spawn(game.E, 0, time.Second*5)

	m.Remove(h2, game.NoteIncorrect)
	if head, _, _ := m.First(); head != h1 {
		t.Fatal("removing mid-sequence must not change the head")
	}
	m.Remove(h1, game.NoteCorrect)
	if head, _, _ := m.First(); head != h3 {
		t.Fatal("spawn order must survive removals")
	}

	// Removing an absent handle is a safe no-op
	m.Remove(h2, game.NoteIncorrect)
	if m.Len() != 1 {
		t.Fatal("stale removal must not touch the sequence")
	}
}

func TestClear(t *testing.T) {
	m, _, r := newTestManager()
	m.Spawn(game.C, 0, time.Second*5)
	m.Spawn(game.D, 0, time.Second*5)
	m.Clear()
	if m.HasActive() {
		t.Fatal("clear should empty the sequence")
	}
	if r.removed != 2 {
		t.Log("every cleared note needs an exit animation, removed:", r.removed)
		t.Fail()
	}
	if _, ok := m.FirstPitch(); ok {
		t.Fatal("no first pitch after clear")
	}
}

func TestStaffPositionFixedAtSpawn(t *testing.T) {
	m, mock, _ := newTestManager()
	m.Spawn(game.GSharp, 1, time.Second*5)
	_, note, _ := m.First()
	want := testStaff.Position(game.GSharp, 1)
	if note.StaffY != want {
		t.Log("staff position", note.StaffY, "expected", want)
		t.Fail()
	}
	mock.Advance(time.Second)
	if note.StaffY != want {
		t.Fatal("staff position is immutable after spawn")
	}
}
