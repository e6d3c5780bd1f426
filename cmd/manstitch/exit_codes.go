package main

import (
	"errors"
	"os"

	"github.com/statusd/manstitch"
	"github.com/statusd/manstitch/internal/config"
	"github.com/statusd/manstitch/internal/pipeline"
)

// Exit codes for the manstitch CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom
// codes < 126.
const (
	ExitSuccess = 0 // successful assembly
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags, config, or validation
	ExitIO      = 3 // file not found, permission denied
	ExitTool    = 4 // external generator or converter failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// External tool failures (exit 4)
	if errors.Is(err, pipeline.ErrExtraction) ||
		errors.Is(err, pipeline.ErrConversion) {
		return ExitTool
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, manstitch.ErrMissingThemes) ||
		errors.Is(err, manstitch.ErrMissingPreface) ||
		errors.Is(err, manstitch.ErrMissingPostface) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidEngine) ||
		errors.Is(err, config.ErrInvalidLevel) ||
		errors.Is(err, config.ErrEmptySection) ||
		errors.Is(err, manstitch.ErrEmptySourceDir) ||
		errors.Is(err, manstitch.ErrInvalidSectionName) ||
		errors.Is(err, manstitch.ErrInvalidHeaderLevel) ||
		errors.Is(err, manstitch.ErrFragmentCollision) ||
		errors.Is(err, pipeline.ErrNoExtractor) {
		return ExitUsage
	}

	return ExitGeneral
}
