// Package charset builds the byte alphabet that the mask compiler and
// password generator draw candidate characters from.
package charset

import "github.com/XenorInspire/worgenx/internal/werrors"

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numbers   = "0123456789"
	// special is the 29-byte punctuation set shipped by upstream WorgenX's
	// dict module. Some published forks carry a 32-byte variant; this
	// implementation keeps the 29-byte set because it is what the hash
	// test vectors were generated against.
	special = `!"#$%&'()*+,-./:;<=>?@[\]_{|}`
)

// Classes selects which character classes are enabled for an alphabet.
type Classes struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Special   bool
}

// Any reports whether at least one class is enabled.
func (c Classes) Any() bool {
	return c.Uppercase || c.Lowercase || c.Numbers || c.Special
}

// Alphabet is the ordered, deduplication-free set of bytes a generated
// word or password may draw from.
type Alphabet []byte

// Build assembles the alphabet for the given classes, always in the
// order uppercase, lowercase, numbers, special. Returns
// werrors.ErrNoConfiguration if no class is enabled.
func Build(c Classes) (Alphabet, error) {
	if !c.Any() {
		return nil, werrors.ErrNoConfiguration
	}

	var a Alphabet
	if c.Uppercase {
		a = append(a, uppercase...)
	}

	if c.Lowercase {
		a = append(a, lowercase...)
	}

	if c.Numbers {
		a = append(a, numbers...)
	}

	if c.Special {
		a = append(a, special...)
	}

	return a, nil
}
