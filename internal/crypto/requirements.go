package crypto

// MinLetters is the number of letters every password keeps, one of which
// fills position 0.
const MinLetters = 2

// Requirements describes the composition of a password.
type Requirements struct {
	Length        int
	Numbers       int
	Specials      int
	AllowRepeats  bool
	FirstIsLetter bool
}

// DefaultRequirements returns 16 characters with one digit, one special
// character, no repeats and a leading letter.
func DefaultRequirements() Requirements {
	return Requirements{
		Length:        16,
		Numbers:       1,
		Specials:      1,
		AllowRepeats:  false,
		FirstIsLetter: true,
	}
}

// Letters returns the number of letter characters implied by r.
func (r Requirements) Letters() int {
	return r.Length - r.Numbers - r.Specials
}

// Satisfiable reports whether Generate can honor the length and count
// constraints of r. It does not consider alphabet sizes.
func (r Requirements) Satisfiable() bool {
	if r.Length < MinLetters || r.Numbers < 0 || r.Specials < 0 {
		return false
	}
	// Compared one count at a time so huge values cannot wrap the sum.
	room := r.Length - MinLetters
	return r.Numbers <= room && r.Specials <= room-r.Numbers
}

// Validate returns a copy of r whose counts are clamped so that
// Numbers + Specials + MinLetters <= Length.
//
// The special character budget scales with length: one per 16 characters,
// and never less than one. Numbers get whatever remains after the specials
// and the reserved letters. Counts are only ever reduced.
func (r Requirements) Validate() Requirements {
	out := r
	if out.Length < MinLetters {
		out.Length = MinLetters
	}

	specialCap := max(1, out.Length/16)
	out.Specials = max(0, min(r.Specials, specialCap, out.Length-MinLetters))

	numericCap := out.Length - out.Specials - MinLetters
	out.Numbers = max(0, min(r.Numbers, numericCap))

	return out
}
