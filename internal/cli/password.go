package cli

import (
	"context"
	"encoding/json"

	flag "github.com/spf13/pflag"

	"github.com/XenorInspire/worgenx/internal/charset"
	"github.com/XenorInspire/worgenx/internal/fsutil"
	"github.com/XenorInspire/worgenx/internal/genpassword"
	"github.com/XenorInspire/worgenx/internal/werrors"
	"github.com/XenorInspire/worgenx/internal/wordlist"
)

const passwordHelp = `Generate one or more random passwords.

You must specify at least one of -l, -u, -n, -x.`

// PasswordCmd builds the "password" subcommand.
func PasswordCmd() *Command {
	flagSet := flag.NewFlagSet("password", flag.ContinueOnError)

	lowercase := flagSet.BoolP("lowercase", "l", false, "Include lowercase characters")
	uppercase := flagSet.BoolP("uppercase", "u", false, "Include uppercase characters")
	numbers := flagSet.BoolP("numbers", "n", false, "Include numbers")
	special := flagSet.BoolP("special-characters", "x", false, "Include special characters")
	size := flagSet.Uint32P("size", "s", 16, "Password length")
	count := flagSet.Uint64P("count", "c", 1, "Number of passwords to generate")
	output := flagSet.StringP("output", "o", "", "Write passwords to this file instead of stdout")
	interactiveOutput := flagSet.BoolP("output-interactive", "O", false, "Reserved: interactive-mode default output location")
	jsonOut := flagSet.BoolP("json", "j", false, "Output in JSON format")

	return &Command{
		Flags: flagSet,
		Usage: "password -s <size> -c <count> [flags]",
		Short: "Generate random passwords",
		Long:  passwordHelp,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			if *interactiveOutput {
				return werrors.ErrOutputNotSupported
			}

			classes := charset.Classes{Uppercase: *uppercase, Lowercase: *lowercase, Numbers: *numbers, Special: *special}

			if *count == 0 {
				return &werrors.InvalidNumericalValueError{Flag: "count", Value: "0"}
			}

			passwords, err := genpassword.Generate(genpassword.Config{Classes: classes, Length: *size, Count: *count})
			if err != nil {
				return err
			}

			body, err := renderPasswords(genpassword.Config{Classes: classes, Length: *size, Count: *count}, classes, passwords, *jsonOut)
			if err != nil {
				return err
			}

			if *output == "" {
				o.Printf("%s", body)
				return nil
			}

			outPath, err := fsutil.ValidateOutputPath(*output)
			if err != nil {
				return err
			}

			sink, err := wordlist.NewSink(outPath)
			if err != nil {
				return err
			}

			if err := sink.Flush([]string{body}); err != nil {
				return err
			}

			return sink.Close()
		},
	}
}

func renderPasswords(cfg genpassword.Config, classes charset.Classes, passwords []string, asJSON bool) (string, error) {
	if !asJSON {
		out := ""
		for _, p := range passwords {
			out += p + "\n"
		}

		return out, nil
	}

	doc := genpassword.NewDocument(cfg, classes, passwords)

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
