package manstitch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/statusd/manstitch/internal/fileutil"
	"github.com/statusd/manstitch/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.BlockDocExtractor = (*pipeline.ExecExtractor)(nil)
	_ pipeline.RoffConverter     = (*pipeline.PandocConverter)(nil)
	_ pipeline.RoffConverter     = (*pipeline.BuiltinConverter)(nil)
)

// Directory permissions for created output directories.
const dirPermissions = 0o755

// Assembler orchestrates the manpage assembly pipeline.
// Create with New() and run with Assemble().
type Assembler struct {
	fs        afero.Fs
	extractor pipeline.BlockDocExtractor
	converter pipeline.RoffConverter
	preview   *pipeline.PreviewRenderer
	cfg       assemblerConfig
}

// New creates an Assembler with default configuration: the host
// filesystem, the conventional generator command and the pandoc
// converter. Use options to customize behavior.
func New(opts ...Option) (*Assembler, error) {
	a := &Assembler{
		fs: afero.NewOsFs(),
		cfg: assemblerConfig{
			blocksSection:     DefaultBlocksSection,
			themesSection:     DefaultThemesSection,
			themesBaseLevel:   DefaultThemesBaseHeaderLevel,
			blockHeadingLevel: DefaultBlockHeadingLevel,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	if err := a.cfg.validate(); err != nil {
		return nil, err
	}

	// Defaults for parts not injected (e.g., by tests)
	if a.extractor == nil {
		a.extractor = &pipeline.ExecExtractor{Argv: []string{"go", "run", "./docgen"}}
	}
	if a.converter == nil {
		a.converter = pipeline.NewPandocConverter()
	}
	if a.preview == nil {
		a.preview = pipeline.NewPreviewRenderer()
	}

	return a, nil
}

// Assemble runs the full pipeline: extract block docs, convert both
// Markdown documents to roff fragments, insert section headers,
// concatenate preface + fragments + postface into the output path, and
// remove the intermediates. Steps run strictly in order and the first
// failure aborts the run; intermediates are only cleaned up on success.
func (a *Assembler) Assemble(ctx context.Context, input Input) (*Result, error) {
	input = a.applyDefaults(input)
	if err := a.validateInput(input); err != nil {
		return nil, err
	}

	// Extract block documentation from the source tree. The generator
	// (re)writes the block-definitions Markdown as a side effect.
	if err := a.extractor.Extract(ctx, input.SourceDir, input.BlocksPath); err != nil {
		return nil, err
	}

	blocksSrc, err := afero.ReadFile(a.fs, input.BlocksPath)
	if err != nil {
		return nil, fmt.Errorf("reading generated block docs: %w", err)
	}
	blockNames := pipeline.ListBlocks(blocksSrc, a.cfg.blockHeadingLevel)

	// Convert both documents to roff fragments. The themes document is
	// shifted down so its headings nest under the THEMES section title.
	blocksFrag := fileutil.SwapExt(input.BlocksPath, FragmentExt)
	themesFrag := fileutil.SwapExt(input.ThemesPath, FragmentExt)

	if err := a.converter.ToRoff(ctx, input.BlocksPath, blocksFrag, 1); err != nil {
		return nil, err
	}
	if err := a.converter.ToRoff(ctx, input.ThemesPath, themesFrag, a.cfg.themesBaseLevel); err != nil {
		return nil, err
	}

	// Insert exactly one section-header line per fragment.
	if err := pipeline.PrependSection(a.fs, blocksFrag, a.cfg.blocksSection); err != nil {
		return nil, err
	}
	if err := pipeline.PrependSection(a.fs, themesFrag, a.cfg.themesSection); err != nil {
		return nil, err
	}

	// Concatenate in fixed order: preface, blocks, themes, postface.
	if dir := filepath.Dir(input.OutputPath); dir != "." {
		if err := a.fs.MkdirAll(dir, dirPermissions); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := fileutil.Concat(a.fs, input.OutputPath,
		input.PrefacePath, blocksFrag, themesFrag, input.PostfacePath); err != nil {
		return nil, err
	}

	result := &Result{
		OutputPath: input.OutputPath,
		Blocks:     blockNames,
	}

	if input.HTMLPreviewPath != "" {
		previewPath, err := a.renderPreview(input, blocksSrc)
		if err != nil {
			return nil, err
		}
		result.PreviewPath = previewPath
	}

	// Success path only: the generated Markdown and both fragments go.
	if !input.KeepIntermediates {
		for _, path := range []string{input.BlocksPath, blocksFrag, themesFrag} {
			if err := a.fs.Remove(path); err != nil {
				return nil, fmt.Errorf("removing intermediate %s: %w", path, err)
			}
		}
	}

	return result, nil
}

// applyDefaults fills unset Input fields with the conventional layout.
func (a *Assembler) applyDefaults(input Input) Input {
	if input.OutputPath == "" {
		input.OutputPath = DefaultOutputPath
	}
	if input.BlocksPath == "" {
		input.BlocksPath = DefaultBlocksPath
	}
	if input.ThemesPath == "" {
		input.ThemesPath = DefaultThemesPath
	}
	if input.PrefacePath == "" {
		input.PrefacePath = DefaultPrefacePath
	}
	if input.PostfacePath == "" {
		input.PostfacePath = DefaultPostfacePath
	}
	return input
}

// validateInput checks that required inputs are present before any
// external process runs, so a missing static fragment fails fast
// instead of after an expensive extraction.
func (a *Assembler) validateInput(input Input) error {
	if input.SourceDir == "" {
		return ErrEmptySourceDir
	}
	if !fileutil.FileExists(a.fs, input.ThemesPath) {
		return fmt.Errorf("%w: %s", ErrMissingThemes, input.ThemesPath)
	}
	if !fileutil.FileExists(a.fs, input.PrefacePath) {
		return fmt.Errorf("%w: %s", ErrMissingPreface, input.PrefacePath)
	}
	if !fileutil.FileExists(a.fs, input.PostfacePath) {
		return fmt.Errorf("%w: %s", ErrMissingPostface, input.PostfacePath)
	}

	// A source without a Markdown extension would make the fragment
	// path overwrite the source itself.
	for _, src := range []string{input.BlocksPath, input.ThemesPath} {
		if fileutil.SwapExt(src, FragmentExt) == src {
			return fmt.Errorf("%w: %s", ErrFragmentCollision, src)
		}
	}
	return nil
}

// renderPreview writes an HTML review copy of the blocks and themes
// documentation. It runs before cleanup because it needs the generated
// Markdown.
func (a *Assembler) renderPreview(input Input, blocksSrc []byte) (string, error) {
	themesSrc, err := afero.ReadFile(a.fs, input.ThemesPath)
	if err != nil {
		return "", fmt.Errorf("reading themes document: %w", err)
	}

	combined := string(blocksSrc) + "\n\n" + string(themesSrc)
	doc, err := a.preview.Render(filepath.Base(input.OutputPath), combined)
	if err != nil {
		return "", err
	}

	if err := afero.WriteFile(a.fs, input.HTMLPreviewPath, []byte(doc), 0o644); err != nil {
		return "", fmt.Errorf("writing HTML preview: %w", err)
	}
	return input.HTMLPreviewPath, nil
}
