package manstitch

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/statusd/manstitch/internal/pipeline"
)

// Default file layout, relative to the project root.
const (
	DefaultOutputPath   = "man/statusbar.1"
	DefaultBlocksPath   = "doc/blocks.md"
	DefaultThemesPath   = "doc/themes.md"
	DefaultPrefacePath  = "man/preface.roff"
	DefaultPostfacePath = "man/postface.roff"
)

// Default section titles inserted above the generated fragments.
const (
	DefaultBlocksSection = "BLOCKS"
	DefaultThemesSection = "THEMES"
)

// Heading-level defaults.
const (
	// DefaultThemesBaseHeaderLevel shifts the themes document's headings
	// down so they nest under the inserted THEMES section title.
	DefaultThemesBaseHeaderLevel = 2

	// DefaultBlockHeadingLevel is the heading level at which the
	// generated block-definitions document names individual blocks.
	DefaultBlockHeadingLevel = 2
)

// FragmentExt is the extension used for generated roff fragments.
const FragmentExt = ".roff"

// Input contains the per-run parameters of an assembly.
type Input struct {
	SourceDir  string // source tree handed to the extractor (required)
	OutputPath string // final manpage path ("" = DefaultOutputPath)

	BlocksPath   string // block-definitions Markdown written by the extractor ("" = default)
	ThemesPath   string // static themes Markdown ("" = default)
	PrefacePath  string // static roff preface ("" = default)
	PostfacePath string // static roff postface ("" = default)

	KeepIntermediates bool   // skip cleanup of generated intermediates
	HTMLPreviewPath   string // also render an HTML review copy ("" = disabled)
}

// Result describes a completed assembly.
type Result struct {
	OutputPath  string   // resolved final manpage path
	Blocks      []string // block names found in the generated documentation
	PreviewPath string   // HTML preview path, if one was rendered
}

// Option configures an Assembler.
type Option func(*Assembler)

// assemblerConfig holds internal configuration for Assembler.
type assemblerConfig struct {
	blocksSection     string
	themesSection     string
	themesBaseLevel   int
	blockHeadingLevel int
}

// WithFS sets the filesystem used for fragment and output handling.
// External tools always write to the host filesystem, so a non-OS
// filesystem only makes sense together with WithExtractor and
// WithConverter fakes.
func WithFS(fs afero.Fs) Option {
	return func(a *Assembler) { a.fs = fs }
}

// WithExtractor sets the block documentation extractor.
func WithExtractor(e pipeline.BlockDocExtractor) Option {
	return func(a *Assembler) { a.extractor = e }
}

// WithConverter sets the Markdown to roff converter.
func WithConverter(c pipeline.RoffConverter) Option {
	return func(a *Assembler) { a.converter = c }
}

// WithSections sets the section titles inserted above the blocks and
// themes fragments.
func WithSections(blocks, themes string) Option {
	return func(a *Assembler) {
		a.cfg.blocksSection = blocks
		a.cfg.themesSection = themes
	}
}

// WithThemesBaseHeaderLevel sets the base header level applied when
// converting the themes document.
func WithThemesBaseHeaderLevel(level int) Option {
	return func(a *Assembler) { a.cfg.themesBaseLevel = level }
}

// WithBlockHeadingLevel sets the heading level at which block names are
// collected from the generated documentation.
func WithBlockHeadingLevel(level int) Option {
	return func(a *Assembler) { a.cfg.blockHeadingLevel = level }
}

// validate checks assembler configuration after options are applied.
func (c *assemblerConfig) validate() error {
	for _, section := range []string{c.blocksSection, c.themesSection} {
		if err := validateSectionName(section); err != nil {
			return err
		}
	}
	if c.themesBaseLevel < 1 || c.themesBaseLevel > 6 {
		return fmt.Errorf("%w: %d (must be between 1 and 6)", ErrInvalidHeaderLevel, c.themesBaseLevel)
	}
	if c.blockHeadingLevel < 1 || c.blockHeadingLevel > 6 {
		return fmt.Errorf("%w: %d (must be between 1 and 6)", ErrInvalidHeaderLevel, c.blockHeadingLevel)
	}
	return nil
}

// validateSectionName checks that a section title is usable in a .SH line.
func validateSectionName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSectionName)
	}
	if strings.ContainsAny(name, "\n\r") {
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidSectionName, name)
	}
	return nil
}
