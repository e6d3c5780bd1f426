package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pathFlags holds layout overrides for the documentation files.
type pathFlags struct {
	source   string
	blocks   string
	themes   string
	preface  string
	postface string
}

// generatorFlags holds flags for the external documentation generator.
type generatorFlags struct {
	command string // whitespace-separated argv
	dir     string
}

// converterFlags holds Markdown to roff conversion flags.
type converterFlags struct {
	engine          string
	pandocPath      string
	baseHeaderLevel int // themes document only
}

// assembleFlags holds all flags for the assemble command.
type assembleFlags struct {
	common            commonFlags
	paths             pathFlags
	generator         generatorFlags
	converter         converterFlags
	keepIntermediates bool
	htmlPreview       string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-step detail")
}

// addPathFlags adds layout flags to a FlagSet.
func addPathFlags(fs *flag.FlagSet, f *pathFlags) {
	fs.StringVarP(&f.source, "source", "s", "", "source tree passed to the generator")
	fs.StringVar(&f.blocks, "blocks", "", "block-definitions Markdown path")
	fs.StringVar(&f.themes, "themes", "", "themes Markdown path")
	fs.StringVar(&f.preface, "preface", "", "static preface fragment path")
	fs.StringVar(&f.postface, "postface", "", "static postface fragment path")
}

// addGeneratorFlags adds generator flags to a FlagSet.
func addGeneratorFlags(fs *flag.FlagSet, f *generatorFlags) {
	fs.StringVar(&f.command, "generator", "", "generator command (whitespace-separated)")
	fs.StringVar(&f.dir, "generator-dir", "", "generator working directory")
}

// addConverterFlags adds converter flags to a FlagSet.
func addConverterFlags(fs *flag.FlagSet, f *converterFlags) {
	fs.StringVar(&f.engine, "engine", "", "converter engine: pandoc, builtin")
	fs.StringVar(&f.pandocPath, "pandoc", "", "pandoc binary path")
	fs.IntVar(&f.baseHeaderLevel, "base-header-level", 0, "base header level for the themes document (1-6)")
}

// parseAssembleFlags parses assemble command flags and returns
// positional args (at most one: the output path).
func parseAssembleFlags(args []string) (*assembleFlags, []string, error) {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	f := &assembleFlags{}

	addCommonFlags(fs, &f.common)
	addPathFlags(fs, &f.paths)
	addGeneratorFlags(fs, &f.generator)
	addConverterFlags(fs, &f.converter)

	fs.BoolVar(&f.keepIntermediates, "keep-intermediates", false, "keep generated intermediates after assembly")
	fs.StringVar(&f.htmlPreview, "html-preview", "", "also write an HTML review copy to this path")

	fs.Usage = func() { printAssembleUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
