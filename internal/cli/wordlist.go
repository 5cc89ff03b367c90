package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"

	"github.com/XenorInspire/worgenx/internal/charset"
	"github.com/XenorInspire/worgenx/internal/fsutil"
	"github.com/XenorInspire/worgenx/internal/hashdigest"
	"github.com/XenorInspire/worgenx/internal/mask"
	"github.com/XenorInspire/worgenx/internal/werrors"
	"github.com/XenorInspire/worgenx/internal/wordlist"
)

const wordlistHelp = `Generate an exhaustive wordlist from a positional mask.

You must specify at least one of -l, -u, -n, -x.`

// WordlistCmd builds the "wordlist" subcommand.
func WordlistCmd() *Command {
	flagSet := flag.NewFlagSet("wordlist", flag.ContinueOnError)

	lowercase := flagSet.BoolP("lowercase", "l", false, "Add lowercase characters to the alphabet")
	uppercase := flagSet.BoolP("uppercase", "u", false, "Add uppercase characters to the alphabet")
	numbers := flagSet.BoolP("numbers", "n", false, "Add numbers to the alphabet")
	special := flagSet.BoolP("special-characters", "x", false, "Add special characters to the alphabet")
	maskFlag := flagSet.StringP("mask", "m", "", "Mask template, '?' marks a slot (required)")
	output := flagSet.StringP("output", "o", "", "Output file path (required)")
	hash := flagSet.StringP("hash", "H", "", "Hash each word with one of: "+hashNameList())
	threads := flagSet.IntP("threads", "t", runtime.NumCPU(), "Number of worker goroutines")
	disableBar := flagSet.BoolP("disable-loading-bar", "d", false, "Disable the progress bar")

	return &Command{
		Flags: flagSet,
		Usage: "wordlist -m <mask> -o <path> [flags]",
		Short: "Generate a wordlist from a mask",
		Long:  wordlistHelp,
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			classes := charset.Classes{Uppercase: *uppercase, Lowercase: *lowercase, Numbers: *numbers, Special: *special}

			alphabet, err := charset.Build(classes)
			if err != nil {
				return err
			}

			if *maskFlag == "" {
				return werrors.ErrInvalidMask
			}

			tpl, err := mask.Compile(*maskFlag)
			if err != nil {
				return err
			}

			if *output == "" {
				return &werrors.InvalidFilenameError{Name: ""}
			}

			outPath, err := fsutil.ValidateOutputPath(*output)
			if err != nil {
				return err
			}

			algo, err := hashdigest.Parse(*hash)
			if err != nil {
				return err
			}

			plan, err := wordlist.NewPlan(alphabet, tpl, algo)
			if err != nil {
				return err
			}

			if *threads <= 0 {
				return &werrors.InvalidNumericalValueError{Flag: "threads", Value: fmt.Sprint(*threads)}
			}

			var render func(current, total uint64)
			if !*disableBar {
				bar := progressbar.NewOptions64(0,
					progressbar.OptionSetDescription("generating wordlist"),
					progressbar.OptionShowCount(),
					progressbar.OptionShowIts(),
				)
				render = func(current, total uint64) {
					bar.ChangeMax64(int64(total))
					_ = bar.Set64(int64(current))
				}
			}

			result, err := wordlist.Generate(ctx, wordlist.GenerateOptions{
				Plan:       plan,
				OutputPath: outPath,
				Workers:    *threads,
				Render:     render,
			})
			if err != nil {
				return err
			}

			o.Printf("wrote %d words to %s\n", result.Written, outPath)

			return nil
		},
	}
}

func hashNameList() string {
	names := hashdigest.Names()

	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}

		s += n
	}

	return s
}
