// Package manstitch assembles the manpage of a status-bar application
// from generated and static documentation fragments.
//
// # Quick Start
//
// Create an assembler and run it once per build:
//
//	asm, err := manstitch.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := asm.Assemble(ctx, manstitch.Input{
//	    SourceDir:  ".",
//	    OutputPath: "man/statusbar.1",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", result.OutputPath)
//
// # Assembly Pipeline
//
// A run performs these stages, strictly in order, aborting on the
// first error:
//
//  1. Block documentation extraction: an external generator command is
//     run against the source tree and (re)writes the block-definitions
//     Markdown file.
//  2. Markdown to man(7) conversion: the block-definitions file and the
//     static themes document are each converted to a roff fragment. The
//     themes document is converted with a raised base header level so
//     its headings nest under the inserted section title.
//  3. Section headers: a single .SH line is prepended to each fragment.
//  4. Concatenation: preface, blocks fragment, themes fragment and
//     postface are concatenated byte-for-byte into the output path.
//  5. Cleanup: the three generated intermediates are removed. Cleanup
//     runs on success only; a failed run leaves them in place for
//     inspection.
//
// # Configuration
//
// Use functional options to customize the assembler:
//
//	asm, err := manstitch.New(
//	    manstitch.WithExtractor(&pipeline.ExecExtractor{Argv: []string{"go", "run", "./docgen"}}),
//	    manstitch.WithConverter(pipeline.NewPandocConverter()),
//	    manstitch.WithSections("BLOCKS", "THEMES"),
//	)
//
// Per-run options are passed via Input. Set Input.KeepIntermediates to
// skip cleanup, and Input.HTMLPreviewPath to additionally render an
// HTML review copy of the documentation.
//
// # Converter Requirements
//
// The default converter shells out to pandoc. Environments without
// pandoc can use the built-in converter (go-md2man) instead; run
// "manstitch doctor" to check what is available.
package manstitch
