package crypto

import "strings"

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Specials  = `-./\:'+&,@$!_#%~`

	letters = Lowercase + Uppercase
)

// Class identifies which alphabet a character belongs to.
type Class int

const (
	ClassUnknown Class = iota
	ClassLowercase
	ClassUppercase
	ClassDigit
	ClassSpecial
)

// ClassOf reports the character class of c.
func ClassOf(c byte) Class {
	switch {
	case c >= 'a' && c <= 'z':
		return ClassLowercase
	case c >= 'A' && c <= 'Z':
		return ClassUppercase
	case c >= '0' && c <= '9':
		return ClassDigit
	case strings.IndexByte(Specials, c) >= 0:
		return ClassSpecial
	}
	return ClassUnknown
}

// IsLetter reports whether c is an upper or lowercase letter.
func (c Class) IsLetter() bool {
	return c == ClassLowercase || c == ClassUppercase
}

func (c Class) String() string {
	switch c {
	case ClassLowercase:
		return "lowercase"
	case ClassUppercase:
		return "uppercase"
	case ClassDigit:
		return "digit"
	case ClassSpecial:
		return "special"
	}
	return "unknown"
}
