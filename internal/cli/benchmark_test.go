package cli

import (
	"runtime"
	"strconv"
	"testing"
)

// TestBenchmarkCmd_ShortFlags only exercises flag parsing, never Exec:
// the benchmark runs for a fixed 60 seconds and has no short-circuit
// for tests.
func TestBenchmarkCmd_ShortFlags(t *testing.T) {
	t.Parallel()

	cmd := BenchmarkCmd()

	if err := cmd.Flags.Parse([]string{"-t", "2"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !cmd.Flags.Changed("threads") {
		t.Error("threads: Changed() = false, want true")
	}

	if got := cmd.Flags.Lookup("threads").Value.String(); got != "2" {
		t.Errorf("-t 2: got %q", got)
	}
}

func TestBenchmarkCmd_DefaultsToNumCPU(t *testing.T) {
	t.Parallel()

	cmd := BenchmarkCmd()

	if err := cmd.Flags.Parse(nil); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if cmd.Flags.Changed("threads") {
		t.Error("threads: Changed() = true with no args, want false")
	}

	if got, want := cmd.Flags.Lookup("threads").Value.String(), strconv.Itoa(runtime.NumCPU()); got != want {
		t.Errorf("threads default = %q, want %q (runtime.NumCPU())", got, want)
	}
}
