package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func resetFlags() {
	for _, fs := range []*pflag.FlagSet{rootCmd.PersistentFlags(), durationCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.yaml")
	badLength := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badLength, []byte("max_line_len: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"success", []string{"--color", "never", "duration", "45"}, ExitSuccess},
		{"missing config", []string{"--config", missing, "colors"}, ExitFailure},
		{"invalid config value", []string{"--config", badLength, "colors"}, ExitError},
		{"unknown flag", []string{"--bogus", "colors"}, ExitError},
		{"bad flag value", []string{"--max-line-len", "ten", "colors"}, ExitError},
		{"non-positive line length", []string{"--max-line-len", "0", "colors"}, ExitError},
		{"bad color mode", []string{"--color", "sometimes", "colors"}, ExitError},
		{"bad level", []string{"--level", "loud", "colors"}, ExitError},
		{"too few args", []string{"say", "info"}, ExitError},
		{"extra args", []string{"colors", "red"}, ExitError},
		{"unknown say level", []string{"--color", "never", "say", "loud", "msg"}, ExitError},
		{"unknown say color", []string{"--color", "never", "say", "log:ultraviolet", "msg"}, ExitError},
		{"bad second count", []string{"--color", "never", "duration", "abc"}, ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			t.Cleanup(resetFlags)
			rootCmd.SetArgs(tt.args)
			err := rootCmd.Execute()
			if got := exitCode(err); got != tt.want {
				t.Fatalf("exit code = %d, want %d (err: %v)", got, tt.want, err)
			}
		})
	}
}
