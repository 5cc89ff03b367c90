package wordlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPartition_EvenSplit(t *testing.T) {
	t.Parallel()

	// alphabet size 4, 2 slots => total 16, 4 workers => 4 each.
	segs := Partition(4, 2, 16, 4)

	want := []Segment{
		{Start: []int{0, 0}, Count: 4},
		{Start: []int{1, 0}, Count: 4},
		{Start: []int{2, 0}, Count: 4},
		{Start: []int{3, 0}, Count: 4},
	}

	if diff := cmp.Diff(want, segs); diff != "" {
		t.Errorf("Partition mismatch (-want +got):\n%s", diff)
	}
}

func TestPartition_RemainderOnLastWorker(t *testing.T) {
	t.Parallel()

	// total 10 across 3 workers => 3,3,4
	segs := Partition(10, 1, 10, 3)

	if len(segs) != 3 {
		t.Fatalf("len(segs) = %d, want 3", len(segs))
	}

	counts := []uint64{segs[0].Count, segs[1].Count, segs[2].Count}
	want := []uint64{3, 3, 4}

	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}

	var sum uint64
	for _, s := range segs {
		sum += s.Count
	}

	if sum != 10 {
		t.Errorf("sum of counts = %d, want 10", sum)
	}
}

func TestPartition_WorkersExceedTotal(t *testing.T) {
	t.Parallel()

	segs := Partition(2, 1, 2, 8)

	if len(segs) != 2 {
		t.Fatalf("len(segs) = %d, want 2 (clamped to total)", len(segs))
	}

	for _, s := range segs {
		if s.Count != 1 {
			t.Errorf("Count = %d, want 1", s.Count)
		}
	}
}

func TestPartition_ZeroTotal(t *testing.T) {
	t.Parallel()

	if segs := Partition(4, 2, 0, 4); segs != nil {
		t.Errorf("Partition with total=0 = %v, want nil", segs)
	}
}

func TestPartition_DisjointAndCovering(t *testing.T) {
	t.Parallel()

	const alphabetSize, slots = 5, 3
	total := uint64(1)
	for i := 0; i < slots; i++ {
		total *= alphabetSize
	}

	segs := Partition(alphabetSize, slots, total, 7)

	seen := make(map[string]bool)

	for _, seg := range segs {
		vector := append([]int(nil), seg.Start...)
		for n := uint64(0); n < seg.Count; n++ {
			key := vectorKey(vector)
			if seen[key] {
				t.Fatalf("vector %v produced by more than one segment", vector)
			}

			seen[key] = true
			Next(vector, alphabetSize)
		}
	}

	if uint64(len(seen)) != total {
		t.Errorf("covered %d distinct vectors, want %d", len(seen), total)
	}
}

func vectorKey(v []int) string {
	b := make([]byte, len(v))
	for i, d := range v {
		b[i] = byte('0' + d)
	}

	return string(b)
}

func TestNext_WrapsLikeOdometer(t *testing.T) {
	t.Parallel()

	v := []int{0, 1}
	Next(v, 2)

	if diff := cmp.Diff([]int{1, 0}, v); diff != "" {
		t.Errorf("Next mismatch (-want +got):\n%s", diff)
	}

	Next(v, 2)

	if diff := cmp.Diff([]int{1, 1}, v); diff != "" {
		t.Errorf("Next mismatch (-want +got):\n%s", diff)
	}
}
