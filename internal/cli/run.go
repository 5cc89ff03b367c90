package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
)

// Version is the displayed program version, overridable at link time
// with -ldflags "-X github.com/XenorInspire/worgenx/internal/cli.Version=...".
var Version = "dev"

// Run is the main entry point. Returns the process exit code.
// sigCh can be nil if signal handling is not needed (e.g. in tests).
func Run(_ io.Reader, out, errOut io.Writer, args []string, _ map[string]string, sigCh <-chan os.Signal) int {
	globalFlags := flag.NewFlagSet("worgenx", flag.ContinueOnError)
	globalFlags.SetInterspersed(false)
	globalFlags.Usage = func() {}
	globalFlags.SetOutput(&strings.Builder{})

	flagHelp := globalFlags.BoolP("help", "h", false, "Show help")
	flagVersion := globalFlags.BoolP("version", "v", false, "Show version")

	if err := globalFlags.Parse(args[1:]); err != nil {
		fprintln(errOut, "error:", err)
		printUsage(errOut, allCommands())

		return 1
	}

	commands := allCommands()

	commandMap := make(map[string]*Command, len(commands))
	for _, cmd := range commands {
		commandMap[cmd.Name()] = cmd
	}

	commandAndArgs := globalFlags.Args()

	if *flagVersion {
		fprintln(out, "worgenx", Version)
		return 0
	}

	if *flagHelp || len(commandAndArgs) == 0 {
		printUsage(out, commands)
		return 0
	}

	cmdName := commandAndArgs[0]

	cmd, ok := commandMap[cmdName]
	if !ok {
		fprintln(errOut, "error: unknown command:", cmdName)
		printUsage(errOut, commands)

		return 1
	}

	cmdIO := NewIO(out, errOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan int, 1)

	go func() {
		done <- cmd.Run(ctx, cmdIO, commandAndArgs[1:])
	}()

	select {
	case exitCode := <-done:
		return exitCode
	case <-sigCh:
		fprintln(errOut, "shutting down, waiting for in-flight writes to finish...")
		cancel()
	}

	select {
	case exitCode := <-done:
		if exitCode == 0 {
			return 130
		}

		return exitCode
	case <-time.After(5 * time.Second):
		fprintln(errOut, "graceful shutdown timed out, forced exit (130)")
		return 130
	case <-sigCh:
		fprintln(errOut, "graceful shutdown interrupted, forced exit (130)")
		return 130
	}
}

// allCommands returns every subcommand in display order.
func allCommands() []*Command {
	return []*Command{
		WordlistCmd(),
		PasswordCmd(),
		BenchmarkCmd(),
	}
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(w io.Writer, commands []*Command) {
	fprintln(w, "worgenx - wordlist, password and CPU benchmark generator")
	fprintln(w)
	fprintln(w, "Usage: worgenx [flags] <command> [args]")
	fprintln(w)
	fprintln(w, "Flags:")
	fprintln(w, "  -h, --help       Show help")
	fprintln(w, "  -v, --version    Show version")
	fprintln(w)
	fprintln(w, "Commands:")

	for _, cmd := range commands {
		fprintln(w, cmd.HelpLine())
	}
}
