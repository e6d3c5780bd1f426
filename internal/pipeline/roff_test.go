package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// fakeRunner records command invocations without executing anything.
type fakeRunner struct {
	name   string
	args   []string
	stderr string
	err    error
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	r.name = name
	r.args = args
	return r.stderr, r.err
}

func TestPandocConverter_Arguments(t *testing.T) {
	tests := []struct {
		name      string
		base      int
		wantShift string
	}{
		{name: "base level one means no shift", base: 1, wantShift: ""},
		{name: "base level two shifts by one", base: 2, wantShift: "--shift-heading-level-by=1"},
		{name: "base level three shifts by two", base: 3, wantShift: "--shift-heading-level-by=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			conv := &PandocConverter{Runner: runner}

			err := conv.ToRoff(context.Background(), "in.md", "out.roff", tt.base)
			if err != nil {
				t.Fatalf("ToRoff: %v", err)
			}

			if runner.name != DefaultPandocPath {
				t.Errorf("command = %q, want %q", runner.name, DefaultPandocPath)
			}

			args := strings.Join(runner.args, " ")
			for _, want := range []string{"-f gfm", "-t man", "-o out.roff"} {
				if !strings.Contains(args, want) {
					t.Errorf("args %q missing %q", args, want)
				}
			}
			if args[len(args)-len("in.md"):] != "in.md" {
				t.Errorf("input file must be the last argument, got %q", args)
			}

			hasShift := strings.Contains(args, "--shift-heading-level-by")
			if tt.wantShift == "" && hasShift {
				t.Errorf("unexpected shift flag in %q", args)
			}
			if tt.wantShift != "" && !strings.Contains(args, tt.wantShift) {
				t.Errorf("args %q missing %q", args, tt.wantShift)
			}
		})
	}
}

func TestPandocConverter_CustomPath(t *testing.T) {
	runner := &fakeRunner{}
	conv := &PandocConverter{Runner: runner, Path: "/opt/pandoc/bin/pandoc"}

	if err := conv.ToRoff(context.Background(), "in.md", "out.roff", 1); err != nil {
		t.Fatalf("ToRoff: %v", err)
	}
	if runner.name != "/opt/pandoc/bin/pandoc" {
		t.Errorf("command = %q, want configured path", runner.name)
	}
}

func TestPandocConverter_FailureSurfacesStderr(t *testing.T) {
	runner := &fakeRunner{
		stderr: "pandoc: in.md: openBinaryFile: does not exist",
		err:    fmt.Errorf("exit status 1"),
	}
	conv := &PandocConverter{Runner: runner}

	err := conv.ToRoff(context.Background(), "in.md", "out.roff", 1)
	if !errors.Is(err, ErrConversion) {
		t.Fatalf("error = %v, want ErrConversion", err)
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error %q does not carry pandoc's diagnostics", err)
	}
}

func TestBuiltinConverter(t *testing.T) {
	tests := []struct {
		name string
		base int
		want string // roff directive the top heading must land on
	}{
		{name: "base one lands on SH", base: 1, want: ".SH"},
		{name: "base two lands on SS", base: 2, want: ".SS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			src := "# Overview\n\nSome text.\n"
			if err := afero.WriteFile(fs, "in.md", []byte(src), 0o644); err != nil {
				t.Fatal(err)
			}

			conv := NewBuiltinConverter(fs)
			if err := conv.ToRoff(context.Background(), "in.md", "out.roff", tt.base); err != nil {
				t.Fatalf("ToRoff: %v", err)
			}

			out, err := afero.ReadFile(fs, "out.roff")
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(out), tt.want) {
				t.Errorf("output missing %s directive:\n%s", tt.want, out)
			}
			if strings.Contains(string(out), ".TH") {
				t.Errorf("fragment must not carry a .TH title header:\n%s", out)
			}
		})
	}
}

func TestBuiltinConverter_MissingInput(t *testing.T) {
	conv := NewBuiltinConverter(afero.NewMemMapFs())
	err := conv.ToRoff(context.Background(), "missing.md", "out.roff", 1)
	if !errors.Is(err, ErrConversion) {
		t.Errorf("error = %v, want ErrConversion", err)
	}
}

func TestBuiltinConverter_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := NewBuiltinConverter(afero.NewMemMapFs())
	if err := conv.ToRoff(ctx, "in.md", "out.roff", 1); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
