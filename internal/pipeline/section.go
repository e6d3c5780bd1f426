package pipeline

import (
	"fmt"

	"github.com/spf13/afero"
)

// SectionHeader returns the man(7) section-header directive for name,
// including the trailing newline.
func SectionHeader(name string) string {
	return ".SH " + name + "\n"
}

// PrependSection inserts a single section-header line at the top of the
// fragment at path, rewriting the file in place.
func PrependSection(fs afero.Fs, path, name string) error {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("reading fragment %s: %w", path, err)
	}
	out := append([]byte(SectionHeader(name)), content...)
	if err := afero.WriteFile(fs, path, out, 0o644); err != nil {
		return fmt.Errorf("writing fragment %s: %w", path, err)
	}
	return nil
}
