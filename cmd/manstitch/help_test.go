package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf)
	out := buf.String()

	for _, want := range []string{"assemble", "doctor", "version", "help"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing command %q", want)
		}
	}
}

func TestRunHelp(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "Usage: manstitch [output-path]"},
		{"assemble", []string{"assemble"}, "--keep-intermediates"},
		{"doctor", []string{"doctor"}, "doctor [--json]"},
		{"version", []string{"version"}, "version information"},
		{"help", []string{"help"}, "help [command]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			env := &Environment{Stdout: &stdout, Stderr: &stderr}

			runHelp(tt.args, env)

			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("help output missing %q:\n%s", tt.want, stdout.String())
			}
		})
	}

	t.Run("unknown command", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		env := &Environment{Stdout: &stdout, Stderr: &stderr}

		runHelp([]string{"frobnicate"}, env)

		if !strings.Contains(stderr.String(), "Unknown command: frobnicate") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}
