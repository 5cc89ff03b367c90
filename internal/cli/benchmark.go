package cli

import (
	"context"
	"runtime"
	"time"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/XenorInspire/worgenx/internal/benchmark"
)

const benchmarkDuration = 60 * time.Second

const benchmarkHelp = `Run a fixed-profile CPU benchmark for 60 seconds and report
the number of 10000-character passwords generated.`

// BenchmarkCmd builds the "benchmark" subcommand.
func BenchmarkCmd() *Command {
	flagSet := flag.NewFlagSet("benchmark", flag.ContinueOnError)
	threads := flagSet.IntP("threads", "t", runtime.NumCPU(), "Number of worker goroutines")

	return &Command{
		Flags: flagSet,
		Usage: "benchmark [flags]",
		Short: "Run the CPU benchmark",
		Long:  benchmarkHelp,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			o.Println("WorgenX CPU benchmark is in progress...")

			bar := progressbar.NewOptions(100,
				progressbar.OptionSetDescription("benchmarking"),
			)

			onTick := func(elapsed time.Duration) {
				pct := int64(elapsed * 100 / benchmarkDuration)
				if pct > 100 {
					pct = 100
				}

				_ = bar.Set64(pct)
			}

			result, err := benchmark.Run(ctx, *threads, benchmarkDuration, onTick)
			if err != nil {
				return err
			}

			o.Println()
			o.Printf("%d passwords generated in %s\n", result.PasswordsGenerated, result.Elapsed.Round(time.Second))

			return nil
		},
	}
}
