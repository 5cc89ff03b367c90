// Package genpassword generates random passwords drawn from a
// character-class alphabet using an OS-seeded random source, and
// encodes the result in the documented JSON shape.
package genpassword

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/SymbolNotFound/gorng"

	"github.com/XenorInspire/worgenx/internal/charset"
	"github.com/XenorInspire/worgenx/internal/werrors"
)

// Config describes one batch of random passwords to generate.
type Config struct {
	Classes charset.Classes
	Length  uint32
	Count   uint64
}

// Generate draws cfg.Count independent passwords of cfg.Length bytes
// each from the alphabet built from cfg.Classes.
//
// Each call seeds its own math/rand/v2 source from 128 bits of
// crypto/rand output: the source need not be reproducible across runs,
// only unpredictable, so this avoids both a shared mutable RNG (lock
// contention across goroutines) and a hand-rolled PRNG.
func Generate(cfg Config) ([]string, error) {
	alphabet, err := charset.Build(cfg.Classes)
	if err != nil {
		return nil, err
	}

	if cfg.Length == 0 {
		return nil, &werrors.InvalidNumericalValueError{Flag: "size", Value: "0"}
	}

	rng, err := newRand()
	if err != nil {
		return nil, err
	}

	passwords := make([]string, cfg.Count)

	for i := range passwords {
		buf := make([]byte, cfg.Length)
		fill(buf, alphabet, rng)
		passwords[i] = string(buf)
	}

	return passwords, nil
}

// newRand seeds a math/rand/v2.Rand from an OS-backed gorng.ShaRing
// source.
func newRand() (*rand.Rand, error) {
	var seedBytes [16]byte
	if _, err := cryptorand.Read(seedBytes[:]); err != nil {
		return nil, fmt.Errorf("seed RNG from OS entropy: %w", err)
	}

	seed := binary.BigEndian.Uint64(seedBytes[:8])
	more := binary.BigEndian.Uint64(seedBytes[8:])

	return rand.New(gorng.NewSourceSeeded(seed, more)), nil
}

func fill(buf []byte, alphabet charset.Alphabet, rng *rand.Rand) {
	for i := range buf {
		buf[i] = alphabet[rng.IntN(len(alphabet))]
	}
}
