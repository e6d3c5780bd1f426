package manstitch

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptySourceDir  = errors.New("source directory cannot be empty")
	ErrMissingThemes   = errors.New("themes document not found")
	ErrMissingPreface  = errors.New("preface fragment not found")
	ErrMissingPostface = errors.New("postface fragment not found")

	// Assembler configuration errors.
	ErrInvalidSectionName = errors.New("invalid section name")
	ErrInvalidHeaderLevel = errors.New("invalid base header level")
	ErrFragmentCollision  = errors.New("fragment path collides with its source")
)
