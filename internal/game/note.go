package game

import (
	"time"
)

type NoteState uint8

const (
	// NoteActive notes move toward the judgment line and may be judged.
	NoteActive NoteState = iota
	NoteCorrect
	NoteIncorrect
	NoteExpired
)

// OctaveCount bounds the octave range a note may spawn in.
const OctaveCount = 2

func ValidOctave(octave int) bool {
	return octave >= 0 && octave < OctaveCount
}

type Note struct {
	Pitch  Pitch
	Octave int
	Time   time.Time // The time the note spawned

	// StaffY is fixed at spawn, notes never change line.
	StaffY float64

	State NoteState
}
