package cli

import (
	"testing"
)

// TestWordlistCmd_ShortFlags parses each documented short flag in
// isolation and asserts pflag actually bound it, the way the hash
// flag's shorthand silently failed to bind before it was fixed.
func TestWordlistCmd_ShortFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		flagName string
		want     string
	}{
		{"lowercase", []string{"-l"}, "lowercase", "true"},
		{"uppercase", []string{"-u"}, "uppercase", "true"},
		{"numbers", []string{"-n"}, "numbers", "true"},
		{"special", []string{"-x"}, "special-characters", "true"},
		{"mask", []string{"-m", "??-??"}, "mask", "??-??"},
		{"output", []string{"-o", "out.txt"}, "output", "out.txt"},
		{"hash", []string{"-H", "md5"}, "hash", "md5"},
		{"threads", []string{"-t", "4"}, "threads", "4"},
		{"disable-loading-bar", []string{"-d"}, "disable-loading-bar", "true"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cmd := WordlistCmd()

			if err := cmd.Flags.Parse(testCase.args); err != nil {
				t.Fatalf("parse %v: %v", testCase.args, err)
			}

			f := cmd.Flags.Lookup(testCase.flagName)
			if f == nil {
				t.Fatalf("no registered flag named %q", testCase.flagName)
			}

			if !cmd.Flags.Changed(testCase.flagName) {
				t.Errorf("flag %q via %v: Changed() = false, want true", testCase.flagName, testCase.args)
			}

			if got := f.Value.String(); got != testCase.want {
				t.Errorf("flag %q via %v = %q, want %q", testCase.flagName, testCase.args, got, testCase.want)
			}
		})
	}
}

// TestWordlistCmd_HashLongFlagStillWorks guards the long form of the
// hash flag independently of its shorthand.
func TestWordlistCmd_HashLongFlagStillWorks(t *testing.T) {
	t.Parallel()

	cmd := WordlistCmd()

	if err := cmd.Flags.Parse([]string{"--hash", "sha256"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if got := cmd.Flags.Lookup("hash").Value.String(); got != "sha256" {
		t.Errorf("--hash sha256: got %q", got)
	}
}

// TestWordlistCmd_HelpFlagNotShadowedByHash confirms bare "-h" still
// requests help instead of being captured as a hash value, i.e. that
// the hash flag's shorthand ended up as something other than "h".
func TestWordlistCmd_HelpFlagNotShadowedByHash(t *testing.T) {
	t.Parallel()

	cmd := WordlistCmd()

	err := cmd.Flags.Parse([]string{"-h"})
	if err == nil {
		t.Fatal("expected pflag to report an error/help request for bare -h, got nil")
	}
}
