package game

import (
	"testing"
)

var aliasTests = map[Pitch]Pitch{
	CSharp: DFlat,
	DSharp: EFlat,
	FSharp: GFlat,
	GSharp: AFlat,
	ASharp: BFlat,
}

func TestEnharmonicMatchSymmetric(t *testing.T) {
	for s, f := range aliasTests {
		if !IsEnharmonicMatch(s, f) {
			t.Log("sharp should match flat", s, f)
			t.Fail()
		}
		if !IsEnharmonicMatch(f, s) {
			t.Log("flat should match sharp", f, s)
			t.Fail()
		}
	}
}

func TestEnharmonicMatchIdentity(t *testing.T) {
	for p := C; p < pitchCount; p++ {
		if !IsEnharmonicMatch(p, p) {
			t.Log("pitch should match itself", p)
			t.Fail()
		}
	}
}

func TestEnharmonicMatchRejectsOthers(t *testing.T) {
	for p := C; p < pitchCount; p++ {
		for q := C; q < pitchCount; q++ {
			if p == q {
				continue
			}
			if a, ok := aliasTests[p]; ok && a == q {
				continue
			}
			if a, ok := aliasTests[q]; ok && a == p {
				continue
			}
			if IsEnharmonicMatch(p, q) {
				t.Log("pitches should not match", p, q)
				t.Fail()
			}
		}
	}
}

// Sharps borrow the natural below, flats the natural above.
var naturalTests = map[Pitch]Pitch{
	C: C, D: D, E: E, F: F, G: G, A: A, B: B,
	CSharp: C, DSharp: D, FSharp: F, GSharp: G, ASharp: A,
	DFlat: D, EFlat: E, GFlat: G, AFlat: A, BFlat: B,
}

func TestNaturalResolution(t *testing.T) {
	for p, expected := range naturalTests {
		if out := p.Natural(); out != expected {
			t.Log("pitch   ", p)
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestNaturalIndexOrder(t *testing.T) {
	for i, p := range Naturals {
		if p.NaturalIndex() != i {
			t.Log("natural ", p, "index", p.NaturalIndex(), "expected", i)
			t.Fail()
		}
	}
}

func TestAccidentalClassification(t *testing.T) {
	sharps, flats, naturals := 0, 0, 0
	for p := C; p < pitchCount; p++ {
		switch {
		case p.IsSharp():
			sharps++
		case p.IsFlat():
			flats++
		case p.IsNatural():
			naturals++
		}
	}
	if sharps != 5 || flats != 5 || naturals != 7 {
		t.Log("sharps", sharps, "flats", flats, "naturals", naturals)
		t.Fail()
	}
}
