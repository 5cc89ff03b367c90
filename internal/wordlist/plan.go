// Package wordlist implements the mask-driven exhaustive wordlist
// generator: work partitioning across worker goroutines, the per-worker
// enumeration loop, the shared buffered output sink, and a progress
// monitor that samples a shared counter.
package wordlist

import (
	"math"
	"math/bits"

	"github.com/XenorInspire/worgenx/internal/charset"
	"github.com/XenorInspire/worgenx/internal/hashdigest"
	"github.com/XenorInspire/worgenx/internal/mask"
	"github.com/XenorInspire/worgenx/internal/werrors"
)

// BufferSize is the number of records a Worker accumulates in memory
// before flushing them through the Sink.
const BufferSize = 100_000

// Plan describes one wordlist generation run: the alphabet slots draw
// from, the compiled mask template, and an optional hash algorithm
// applied to each candidate before it is written out.
type Plan struct {
	Alphabet charset.Alphabet
	Template mask.Template
	Hash     hashdigest.Algorithm
}

// NewPlan validates and assembles a Plan, rejecting configurations whose
// total candidate count would overflow uint64.
func NewPlan(alphabet charset.Alphabet, tpl mask.Template, hash hashdigest.Algorithm) (Plan, error) {
	if len(alphabet) == 0 {
		return Plan{}, werrors.ErrEmptyAlphabet
	}

	if tpl.SlotCount() == 0 {
		return Plan{}, werrors.ErrInvalidMask
	}

	if _, err := Total(len(alphabet), tpl.SlotCount()); err != nil {
		return Plan{}, err
	}

	return Plan{Alphabet: alphabet, Template: tpl, Hash: hash}, nil
}

// Total returns alphabetSize^slotCount, the number of candidates the
// plan will enumerate, or an error if that value would overflow uint64.
func Total(alphabetSize, slotCount int) (uint64, error) {
	if slotCount == 0 {
		return 1, nil
	}

	// alphabetSize^slotCount overflows uint64 once slotCount *
	// log2(alphabetSize) exceeds 64 bits; check before multiplying.
	bitsNeeded := float64(slotCount) * math.Log2(float64(alphabetSize))
	if bitsNeeded > 63.999 {
		return 0, &werrors.InvalidNumericalValueError{
			Flag:  "mask",
			Value: "combination space too large",
			Max:   math.MaxUint64,
		}
	}

	total := uint64(1)
	for i := 0; i < slotCount; i++ {
		hi, lo := bits.Mul64(total, uint64(alphabetSize))
		if hi != 0 {
			return 0, &werrors.InvalidNumericalValueError{
				Flag:  "mask",
				Value: "combination space too large",
				Max:   math.MaxUint64,
			}
		}

		total = lo
	}

	return total, nil
}
