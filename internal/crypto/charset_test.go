package crypto

import "testing"

func TestClassOf(t *testing.T) {
	tests := []struct {
		alphabet string
		want     Class
	}{
		{Lowercase, ClassLowercase},
		{Uppercase, ClassUppercase},
		{Digits, ClassDigit},
		{Specials, ClassSpecial},
		{" \t\"*?é", ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			for i := 0; i < len(tt.alphabet); i++ {
				if got := ClassOf(tt.alphabet[i]); got != tt.want {
					t.Errorf("ClassOf(%q) = %v, want %v", tt.alphabet[i], got, tt.want)
				}
			}
		})
	}
}

func TestAlphabetsAreDistinct(t *testing.T) {
	seen := make(map[byte]bool)
	for _, alphabet := range []string{Lowercase, Uppercase, Digits, Specials} {
		for i := 0; i < len(alphabet); i++ {
			if seen[alphabet[i]] {
				t.Errorf("character %q appears in more than one alphabet", alphabet[i])
			}
			seen[alphabet[i]] = true
		}
	}
	if len(seen) != 78 {
		t.Errorf("expected 78 distinct characters, got %d", len(seen))
	}
}
