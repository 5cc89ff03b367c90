package wordlist

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/XenorInspire/worgenx/internal/werrors"
)

// GenerateOptions configures one run of Generate.
type GenerateOptions struct {
	Plan       Plan
	OutputPath string
	Workers    int
	Render     func(current, total uint64) // nil disables the progress monitor
}

// Result summarizes a completed Generate run.
type Result struct {
	Total   uint64
	Written uint64
}

// Generate partitions the plan's candidate space across Workers
// goroutines (Work Partitioner), runs them concurrently against a
// shared Sink (Shared Sink), and drives an optional Monitor
// (Progress Monitor) for the duration of the run. It returns once every
// worker has finished and the sink has been closed. If a worker fails,
// the remaining workers still run to completion and the first error
// received is returned; Result.Written then counts every record flushed
// by any worker, including those written after the failure.
func Generate(ctx context.Context, opts GenerateOptions) (Result, error) {
	total, err := Total(len(opts.Plan.Alphabet), opts.Plan.Template.SlotCount())
	if err != nil {
		return Result{}, err
	}

	segments := Partition(len(opts.Plan.Alphabet), opts.Plan.Template.SlotCount(), total, opts.Workers)

	sink, err := NewSink(opts.OutputPath)
	if err != nil {
		return Result{}, err
	}

	var progress atomic.Uint64

	monitorCtx, cancelMonitor := context.WithCancel(ctx)
	defer cancelMonitor()

	monitor := &Monitor{Progress: &progress, Total: total, Render: opts.Render}

	var monitorDone sync.WaitGroup
	monitorDone.Add(1)

	go func() {
		defer monitorDone.Done()
		monitor.Run(monitorCtx)
	}()

	errCh := make(chan error, len(segments))

	var wg sync.WaitGroup
	for _, seg := range segments {
		wg.Add(1)

		go func(seg Segment) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errCh <- &werrors.ThreadError{Context: "wordlist worker", Err: panicToError(r)}
				}
			}()

			w := &Worker{Plan: &opts.Plan, Segment: seg, Sink: sink, Progress: &progress}
			if err := w.Run(); err != nil {
				errCh <- err
			}
		}(seg)
	}

	wg.Wait()
	cancelMonitor()
	monitorDone.Wait()
	close(errCh)

	closeErr := sink.Close()

	for err := range errCh {
		if err != nil {
			return Result{Total: total, Written: progress.Load()}, err
		}
	}

	if closeErr != nil {
		return Result{Total: total, Written: progress.Load()}, closeErr
	}

	return Result{Total: total, Written: progress.Load()}, nil
}

func panicToError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return &werrors.ThreadError{Context: "recovered panic"}
}
