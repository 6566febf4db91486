package game

// Pitch is one of the 17 note identities the game understands: seven
// naturals, five sharps, and the five flat aliases of those sharps. A sharp
// and its flat alias are distinct identities that occupy the same key.
type Pitch uint8

const (
	C Pitch = iota
	CSharp
	DFlat
	D
	DSharp
	EFlat
	E
	F
	FSharp
	GFlat
	G
	GSharp
	AFlat
	A
	ASharp
	BFlat
	B
	pitchCount
)

// Naturals in canonical staff order, index 0..6.
var Naturals = [...]Pitch{C, D, E, F, G, A, B}

// Sharps exposed by the keyboard for black keys.
var Sharps = [...]Pitch{CSharp, DSharp, FSharp, GSharp, ASharp}

var names = [...]string{
	C: "C", CSharp: "C#", DFlat: "Db",
	D: "D", DSharp: "D#", EFlat: "Eb",
	E: "E", F: "F", FSharp: "F#", GFlat: "Gb",
	G: "G", GSharp: "G#", AFlat: "Ab",
	A: "A", ASharp: "A#", BFlat: "Bb",
	B: "B",
}

// aliases holds both directions, so lookup is symmetric by construction.
var aliases = map[Pitch]Pitch{
	CSharp: DFlat, DFlat: CSharp,
	DSharp: EFlat, EFlat: DSharp,
	FSharp: GFlat, GFlat: FSharp,
	GSharp: AFlat, AFlat: GSharp,
	ASharp: BFlat, BFlat: ASharp,
}

func (p Pitch) String() string {
	if !p.Valid() {
		return "?"
	}
	return names[p]
}

func (p Pitch) Valid() bool {
	return p < pitchCount
}

func (p Pitch) IsSharp() bool {
	switch p {
	case CSharp, DSharp, FSharp, GSharp, ASharp:
		return true
	}
	return false
}

func (p Pitch) IsFlat() bool {
	switch p {
	case DFlat, EFlat, GFlat, AFlat, BFlat:
		return true
	}
	return false
}

func (p Pitch) IsNatural() bool {
	return p.Valid() && !p.IsSharp() && !p.IsFlat()
}

// Alias returns the enharmonic alias of an accidental pitch.
// Naturals have no alias.
func (p Pitch) Alias() (Pitch, bool) {
	a, ok := aliases[p]
	return a, ok
}

// Natural resolves the natural whose staff index this pitch borrows.
// A sharp borrows from the natural below it, a flat from the natural above.
func (p Pitch) Natural() Pitch {
	switch p {
	case CSharp:
		return C
	case DSharp:
		return D
	case FSharp:
		return F
	case GSharp:
		return G
	case ASharp:
		return A
	case DFlat:
		return D
	case EFlat:
		return E
	case GFlat:
		return G
	case AFlat:
		return A
	case BFlat:
		return B
	}
	return p
}

// NaturalIndex is the canonical staff index of the resolved natural, C=0..B=6.
func (p Pitch) NaturalIndex() int {
	switch p.Natural() {
	case C:
		return 0
	case D:
		return 1
	case E:
		return 2
	case F:
		return 3
	case G:
		return 4
	case A:
		return 5
	case B:
		return 6
	}
	return 0
}

// IsEnharmonicMatch reports whether two identities occupy the same key.
func IsEnharmonicMatch(p, q Pitch) bool {
	if p == q {
		return true
	}
	a, ok := aliases[p]
	return ok && a == q
}
