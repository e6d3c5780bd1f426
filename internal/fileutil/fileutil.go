// Package fileutil provides file and path utility functions over an
// afero filesystem.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNoSources indicates Concat was called with nothing to concatenate.
var ErrNoSources = errors.New("no source files to concatenate")

// FileExists returns true if the path exists and is a regular file.
func FileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather
// than a name. A string containing path separators (/, \) is a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// SwapExt replaces the extension of path with ext (which must include
// the leading dot). A path without an extension gets ext appended.
func SwapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Concat writes the byte-for-byte concatenation of srcs to dst,
// overwriting any existing file. Each source is opened, copied and
// closed in turn, so a failure mid-way never leaks a handle.
func Concat(fs afero.Fs, dst string, srcs ...string) error {
	if len(srcs) == 0 {
		return ErrNoSources
	}

	out, err := fs.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	for _, src := range srcs {
		if err := appendFile(fs, out, src); err != nil {
			_ = out.Close()
			return err
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// appendFile copies one source file into w, closing it on every path.
func appendFile(fs afero.Fs, w io.Writer, src string) error {
	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return nil
}
