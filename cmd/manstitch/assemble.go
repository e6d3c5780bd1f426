package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/statusd/manstitch"
	"github.com/statusd/manstitch/internal/config"
	"github.com/statusd/manstitch/internal/pipeline"
)

// runAssemble orchestrates one assembly run from CLI inputs.
func runAssemble(ctx context.Context, positionalArgs []string, flags *assembleFlags, env *Environment) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	asm, err := buildAssembler(cfg, env)
	if err != nil {
		return err
	}

	input := manstitch.Input{
		SourceDir:         cfg.Source.Dir,
		OutputPath:        resolveOutputPath(positionalArgs, cfg),
		BlocksPath:        cfg.Docs.Blocks,
		ThemesPath:        cfg.Docs.Themes,
		PrefacePath:       cfg.Docs.Preface,
		PostfacePath:      cfg.Docs.Postface,
		KeepIntermediates: flags.keepIntermediates,
		HTMLPreviewPath:   flags.htmlPreview,
	}

	start := env.Now()
	result, err := asm.Assemble(ctx, input)
	if err != nil {
		return err
	}

	if flags.common.quiet {
		return nil
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Documented blocks: %d\n", len(result.Blocks))
		for _, name := range result.Blocks {
			fmt.Fprintf(env.Stdout, "  %s\n", name)
		}
		if result.PreviewPath != "" {
			fmt.Fprintf(env.Stdout, "Preview %s\n", result.PreviewPath)
		}
		elapsed := env.Now().Sub(start).Round(time.Millisecond)
		fmt.Fprintf(env.Stdout, "Created %s (%v)\n", result.OutputPath, elapsed)
		return nil
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", result.OutputPath)
	return nil
}

// resolveOutputPath determines the final manpage path: the first
// non-empty positional argument wins, then config, then the built-in
// default (applied by the library).
func resolveOutputPath(args []string, cfg *config.Config) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return cfg.Output.Path
}

// mergeFlags merges CLI flags into config. CLI values override config
// values.
func mergeFlags(flags *assembleFlags, cfg *config.Config) {
	// Layout flags
	if flags.paths.source != "" {
		cfg.Source.Dir = flags.paths.source
	}
	if flags.paths.blocks != "" {
		cfg.Docs.Blocks = flags.paths.blocks
	}
	if flags.paths.themes != "" {
		cfg.Docs.Themes = flags.paths.themes
	}
	if flags.paths.preface != "" {
		cfg.Docs.Preface = flags.paths.preface
	}
	if flags.paths.postface != "" {
		cfg.Docs.Postface = flags.paths.postface
	}

	// Generator flags
	if flags.generator.command != "" {
		cfg.Generator.Command = strings.Fields(flags.generator.command)
	}
	if flags.generator.dir != "" {
		cfg.Generator.Dir = flags.generator.dir
	}

	// Converter flags
	if flags.converter.engine != "" {
		cfg.Converter.Engine = flags.converter.engine
	}
	if flags.converter.pandocPath != "" {
		cfg.Converter.PandocPath = flags.converter.pandocPath
	}
	if flags.converter.baseHeaderLevel > 0 {
		cfg.Converter.ThemesBaseHeaderLevel = flags.converter.baseHeaderLevel
	}
}

// buildAssembler constructs the library assembler from config.
func buildAssembler(cfg *config.Config, env *Environment) (*manstitch.Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	extractor := &pipeline.ExecExtractor{
		Argv:   cfg.Generator.Command,
		Dir:    cfg.Generator.Dir,
		Stdout: env.Stdout,
	}

	var converter pipeline.RoffConverter
	switch cfg.Converter.Engine {
	case pipeline.EngineBuiltin:
		converter = pipeline.NewBuiltinConverter(afero.NewOsFs())
	default:
		pandoc := pipeline.NewPandocConverter()
		pandoc.Path = cfg.Converter.PandocPath
		converter = pandoc
	}

	opts := []manstitch.Option{
		manstitch.WithExtractor(extractor),
		manstitch.WithConverter(converter),
		manstitch.WithSections(cfg.Sections.Blocks, cfg.Sections.Themes),
	}
	// Level 0 means unset in config; keep the library defaults.
	if lvl := cfg.Converter.ThemesBaseHeaderLevel; lvl > 0 {
		opts = append(opts, manstitch.WithThemesBaseHeaderLevel(lvl))
	}
	if lvl := cfg.Inspect.BlockHeadingLevel; lvl > 0 {
		opts = append(opts, manstitch.WithBlockHeadingLevel(lvl))
	}

	return manstitch.New(opts...)
}
