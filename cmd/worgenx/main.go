// Command worgenx generates wordlists, random passwords, and runs a
// CPU benchmark, from the command line.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/XenorInspire/worgenx/internal/cli"
)

func main() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	exitCode := cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, envMap(os.Environ()), sigCh)

	os.Exit(exitCode)
}

func envMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))

	for _, kv := range environ {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				env[kv[:i]] = kv[i+1:]
				break
			}
		}
	}

	return env
}
