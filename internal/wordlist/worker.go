package wordlist

import (
	"sync/atomic"

	"github.com/XenorInspire/worgenx/internal/hashdigest"
	"github.com/XenorInspire/worgenx/internal/mask"
)

// Worker enumerates one Segment of a Plan's candidate space, optionally
// hashing each candidate, and flushes completed records through a
// shared Sink in batches of BufferSize.
type Worker struct {
	Plan     *Plan
	Segment  Segment
	Sink     *Sink
	Progress *atomic.Uint64
}

// Run executes the worker's full segment, returning the first error
// encountered (from hashing or from the sink), if any.
func (w *Worker) Run() error {
	alphabetSize := len(w.Plan.Alphabet)
	vector := make([]int, len(w.Segment.Start))
	copy(vector, w.Segment.Start)

	line := make([]byte, len(w.Plan.Template.Cells))
	batch := make([]string, 0, BufferSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}

		if err := w.Sink.Flush(batch); err != nil {
			return err
		}

		w.Progress.Add(uint64(len(batch)))
		batch = batch[:0]

		return nil
	}

	for n := uint64(0); n < w.Segment.Count; n++ {
		fillLine(line, w.Plan.Template, w.Plan.Alphabet, vector)

		record := string(line)
		if w.Plan.Hash != hashdigest.None {
			digest, err := hashdigest.Digest(w.Plan.Hash, line)
			if err != nil {
				return err
			}

			record = digest
		}

		batch = append(batch, record)
		if len(batch) == BufferSize {
			if err := flush(); err != nil {
				return err
			}
		}

		Next(vector, alphabetSize)
	}

	return flush()
}

// fillLine writes one candidate word into line, substituting each slot
// cell with the alphabet byte selected by the corresponding odometer
// digit, and copying literal cells through unchanged.
func fillLine(line []byte, tpl mask.Template, alphabet []byte, vector []int) {
	slot := 0

	for i, c := range tpl.Cells {
		if c.Slot {
			line[i] = alphabet[vector[slot]]
			slot++

			continue
		}

		line[i] = c.Literal
	}
}
