package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Sentinel errors for extraction failures.
var (
	ErrExtraction  = errors.New("block doc extraction failed")
	ErrNoExtractor = errors.New("extractor command not configured")
)

// BlockDocExtractor runs the documentation generator against a source
// tree, (re)writing the block-definitions Markdown file at outPath.
type BlockDocExtractor interface {
	Extract(ctx context.Context, sourceDir, outPath string) error
}

// ExecExtractor invokes an external generator command. The source tree
// path and the block-definitions output path are appended to Argv.
type ExecExtractor struct {
	Argv   []string  // command and fixed arguments (required)
	Dir    string    // working directory ("" = inherit)
	Stdout io.Writer // generator progress output (nil = discarded)
}

// Extract runs the generator and waits for it to exit. Any non-zero
// exit is fatal; the child's stderr is folded into the returned error
// so its diagnostics reach the user.
func (e *ExecExtractor) Extract(ctx context.Context, sourceDir, outPath string) error {
	if len(e.Argv) == 0 {
		return ErrNoExtractor
	}

	args := append(append([]string{}, e.Argv[1:]...), sourceDir, outPath)
	cmd := exec.CommandContext(ctx, e.Argv[0], args...) // #nosec G204 -- command comes from user config
	cmd.Dir = e.Dir
	cmd.Stdout = e.Stdout

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return wrapToolError(ErrExtraction, strings.Join(e.Argv, " "), stderr.String(), err)
	}
	return nil
}

// wrapToolError builds an error for a failed external tool, keeping the
// sentinel for errors.Is and the tool's own diagnostics for the user.
func wrapToolError(sentinel error, command, stderr string, cause error) error {
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("%w: %s: %v: %s", sentinel, command, cause, stderr)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, command, cause)
}
