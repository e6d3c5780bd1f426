package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/afero"
)

// Converter engine names.
const (
	EnginePandoc  = "pandoc"
	EngineBuiltin = "builtin"
)

// DefaultPandocPath is used when no pandoc binary is configured.
const DefaultPandocPath = "pandoc"

// ErrConversion indicates a Markdown to roff conversion failed.
var ErrConversion = errors.New("man conversion failed")

// RoffConverter converts a Markdown file into a man(7)-formatted roff
// file. baseHeaderLevel shifts the document's headings down so they
// nest at the right section depth; 1 means no shift.
type RoffConverter interface {
	ToRoff(ctx context.Context, inputPath, outputPath string, baseHeaderLevel int) error
}

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- converter comes from user config
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// PandocConverter converts Markdown to roff by invoking the pandoc CLI.
type PandocConverter struct {
	Runner CommandRunner
	Path   string // pandoc binary ("" = DefaultPandocPath)
}

// NewPandocConverter creates a PandocConverter with a real command runner.
func NewPandocConverter() *PandocConverter {
	return &PandocConverter{Runner: &ExecRunner{}}
}

// ToRoff converts inputPath to a man fragment at outputPath.
// Reads GFM so the tables and fenced code of the generated block docs
// survive; no --standalone, since the fragment is later concatenated
// between a preface and postface that carry the .TH header.
func (c *PandocConverter) ToRoff(ctx context.Context, inputPath, outputPath string, baseHeaderLevel int) error {
	bin := c.Path
	if bin == "" {
		bin = DefaultPandocPath
	}

	args := []string{"-f", "gfm", "-t", "man", "-o", outputPath}
	if baseHeaderLevel > 1 {
		args = append(args, fmt.Sprintf("--shift-heading-level-by=%d", baseHeaderLevel-1))
	}
	args = append(args, inputPath)

	stderr, err := c.Runner.Run(ctx, bin, args...)
	if err != nil {
		return wrapToolError(ErrConversion, bin+" "+strings.Join(args, " "), stderr, err)
	}
	return nil
}

// BuiltinConverter converts Markdown to roff in-process using go-md2man.
// It exists for environments without pandoc; output differs cosmetically
// from pandoc's but keeps the same section structure.
type BuiltinConverter struct {
	fs afero.Fs
}

// NewBuiltinConverter creates a BuiltinConverter over the given filesystem.
func NewBuiltinConverter(fs afero.Fs) *BuiltinConverter {
	return &BuiltinConverter{fs: fs}
}

// ToRoff converts inputPath to a man fragment at outputPath.
//
// go-md2man maps heading level 1 to .TH, 2 to .SH and 3+ to .SS, one
// level deeper than pandoc's man writer. Shifting by baseHeaderLevel
// (not baseHeaderLevel-1) lines the two engines up: a top-level heading
// lands on .SH for base level 1 and on .SS for base level 2.
func (c *BuiltinConverter) ToRoff(ctx context.Context, inputPath, outputPath string, baseHeaderLevel int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := afero.ReadFile(c.fs, inputPath)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrConversion, inputPath, err)
	}

	md := NormalizeLineEndings(string(src))
	md = ShiftHeadings(md, baseHeaderLevel)

	roff := md2man.Render([]byte(md))
	if err := afero.WriteFile(c.fs, outputPath, roff, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrConversion, outputPath, err)
	}
	return nil
}
