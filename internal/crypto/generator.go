package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	ErrInvalidSpec          = errors.New("requirements cannot be satisfied")
	ErrInsufficientAlphabet = errors.New("not enough distinct characters for requirements")
)

// Generate creates a password satisfying req, drawing all randomness from
// rng. Pass crypto/rand.Reader in production.
//
// req is used as given; call Validate first to clamp counts into a
// satisfiable range.
func Generate(req Requirements, rng io.Reader) (string, error) {
	if err := req.Check(); err != nil {
		return "", err
	}

	letterDraw, err := draw(rng, letters, req.Letters(), req.AllowRepeats)
	if err != nil {
		return "", err
	}
	digitDraw, err := draw(rng, Digits, req.Numbers, req.AllowRepeats)
	if err != nil {
		return "", err
	}
	specialDraw, err := draw(rng, Specials, req.Specials, req.AllowRepeats)
	if err != nil {
		return "", err
	}

	result := make([]byte, 0, req.Length)

	// Pull one letter out of the letter draw to lead the password.
	start := 0
	if req.FirstIsLetter {
		i, err := randIndex(rng, len(letterDraw))
		if err != nil {
			return "", err
		}
		result = append(result, letterDraw[i])
		letterDraw = append(letterDraw[:i], letterDraw[i+1:]...)
		start = 1
	}

	result = append(result, letterDraw...)
	result = append(result, digitDraw...)
	result = append(result, specialDraw...)

	if err := secureShuffle(rng, result[start:]); err != nil {
		return "", err
	}

	return string(result), nil
}

// Check reports ErrInvalidSpec or ErrInsufficientAlphabet when Generate
// cannot honor r. It consumes no randomness.
func (r Requirements) Check() error {
	if !r.Satisfiable() {
		return fmt.Errorf("%w: length %d with %d numbers, %d specials and %d reserved letters",
			ErrInvalidSpec, r.Length, r.Numbers, r.Specials, MinLetters)
	}
	if r.AllowRepeats {
		return nil
	}

	for _, c := range []struct {
		name     string
		want     int
		alphabet string
	}{
		{"letters", r.Letters(), letters},
		{"numbers", r.Numbers, Digits},
		{"specials", r.Specials, Specials},
	} {
		if c.want > len(c.alphabet) {
			return fmt.Errorf("%w: %d %s requested, %d available without repeats",
				ErrInsufficientAlphabet, c.want, c.name, len(c.alphabet))
		}
	}
	return nil
}

// draw picks n characters from alphabet. Without repeats, chosen characters
// are removed from a working copy of the alphabet so none is picked twice.
func draw(rng io.Reader, alphabet string, n int, repeats bool) ([]byte, error) {
	out := make([]byte, n)
	if repeats {
		for i := range out {
			j, err := randIndex(rng, len(alphabet))
			if err != nil {
				return nil, err
			}
			out[i] = alphabet[j]
		}
		return out, nil
	}

	pool := []byte(alphabet)
	for i := range out {
		j, err := randIndex(rng, len(pool))
		if err != nil {
			return nil, err
		}
		out[i] = pool[j]
		pool[j] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out, nil
}

// randIndex returns a uniform random int in [0, n).
func randIndex(rng io.Reader, n int) (int, error) {
	v, err := rand.Int(rng, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading randomness: %w", err)
	}
	return int(v.Int64()), nil
}

// secureShuffle performs a Fisher-Yates shuffle driven by rng.
func secureShuffle(rng io.Reader, data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIndex(rng, i+1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
