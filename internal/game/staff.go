package game

// Staff maps a pitch and octave to a vertical offset in anchor space.
type Staff struct {
	// HalfStepHeight is half the spacing between adjacent staff lines.
	HalfStepHeight float64
	// BaseOffset places natural index 0 two half steps below the lowest line.
	BaseOffset float64
}

// Position is pure: accidentals borrow their resolved natural's index, and
// each octave shifts the index by the seven naturals it spans.
func (s Staff) Position(p Pitch, octave int) float64 {
	index := p.NaturalIndex() + 7*octave
	return s.BaseOffset + float64(index)*s.HalfStepHeight
}
