// Package benchmark implements the fixed-profile CPU stress test used
// to measure password generation throughput.
package benchmark

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/XenorInspire/worgenx/internal/charset"
	"github.com/XenorInspire/worgenx/internal/genpassword"
	"github.com/XenorInspire/worgenx/internal/werrors"
)

// profile is the fixed password configuration the benchmark stresses
// every worker with. It is intentionally not configurable: the point of
// the benchmark is a comparable, repeatable measurement across
// machines, not a tunable load generator.
var profile = genpassword.Config{
	Classes: charset.Classes{Uppercase: true, Lowercase: true, Numbers: true, Special: true},
	Length:  10000,
	Count:   1,
}

// Result summarizes a completed benchmark run.
type Result struct {
	PasswordsGenerated uint64
	Elapsed            time.Duration
}

// Run stresses threads goroutines for duration, each looping
// password generation against the fixed profile until stopped, and
// reports the total number of passwords generated across all of them.
//
// onTick, if non-nil, is invoked roughly every 500ms with the elapsed
// time so far; it is purely observational, matching the decoupled
// progress-rendering model used by the wordlist generator's monitor.
//
// duration is a parameter (rather than a hardcoded 60s) so this core
// loop is unit-testable in milliseconds; the CLI layer always passes
// 60 * time.Second for a live run.
func Run(ctx context.Context, threads int, duration time.Duration, onTick func(elapsed time.Duration)) (Result, error) {
	if threads <= 0 {
		return Result{}, &werrors.InvalidNumericalValueError{Flag: "threads", Value: fmt.Sprint(threads)}
	}

	var stop atomic.Bool

	var total atomic.Uint64

	var wg sync.WaitGroup

	errCh := make(chan error, threads)

	for i := 0; i < threads; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errCh <- &werrors.ThreadError{Context: "benchmark worker"}
				}
			}()

			var local uint64

			for !stop.Load() {
				if _, err := genpassword.Generate(profile); err != nil {
					errCh <- &werrors.ThreadError{Context: "benchmark worker", Err: err}
					return
				}

				local++
			}

			total.Add(local)
		}()
	}

	start := time.Now()
	ticker := time.NewTicker(500 * time.Millisecond)

	defer ticker.Stop()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if onTick != nil {
				onTick(elapsed)
			}

			if elapsed >= duration {
				break loop
			}
		}
	}

	stop.Store(true)
	wg.Wait()
	close(errCh)

	if onTick != nil {
		onTick(duration)
	}

	for err := range errCh {
		if err != nil {
			return Result{}, err
		}
	}

	return Result{PasswordsGenerated: total.Load(), Elapsed: time.Since(start)}, nil
}
