package game

import (
	"testing"
)

var staff = Staff{HalfStepHeight: 0.02, BaseOffset: -0.04}

func TestStaffPositionDeterministic(t *testing.T) {
	for p := C; p < pitchCount; p++ {
		for octave := 0; octave < OctaveCount; octave++ {
			a := staff.Position(p, octave)
			b := staff.Position(p, octave)
			if a != b {
				t.Log("position not stable", p, octave, a, b)
				t.Fail()
			}
		}
	}
}

func TestStaffOctaveDelta(t *testing.T) {
	for _, p := range Naturals {
		delta := staff.Position(p, 1) - staff.Position(p, 0)
		expected := 7 * staff.HalfStepHeight
		if delta != expected {
			t.Log("pitch   ", p)
			t.Log("delta   ", delta)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

// An accidental sits on its resolved natural's line.
var borrowTests = map[Pitch]Pitch{
	CSharp: C,
	DFlat:  D,
	ASharp: A,
	BFlat:  B,
}

func TestStaffBorrowedIndex(t *testing.T) {
	for accidental, natural := range borrowTests {
		if staff.Position(accidental, 0) != staff.Position(natural, 0) {
			t.Log("accidental", accidental, "should borrow", natural)
			t.Fail()
		}
	}
}

func TestStaffBasePlacement(t *testing.T) {
	// Natural index 0 sits two half steps below the lowest line.
	if staff.Position(C, 0) != staff.BaseOffset {
		t.Log("C0 should sit at the base offset", staff.Position(C, 0))
		t.Fail()
	}
}

var position float64

func BenchmarkStaffPosition(b *testing.B) {
	var out float64
	for n := 0; n < b.N; n++ {
		out = staff.Position(GSharp, 1)
	}
	position = out
}
