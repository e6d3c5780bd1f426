package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: manstitch [output-path] [flags]")
	fmt.Fprintln(w, "       manstitch <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble the application manpage from generated and static fragments.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  assemble   Assemble the manpage (default)")
	fmt.Fprintln(w, "  doctor     Check external tools and documentation layout")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'manstitch help <command>' for details on a specific command.")
}

// printAssembleUsage prints usage for the assemble command.
func printAssembleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: manstitch [output-path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble the final manpage:")
	fmt.Fprintln(w, "run the block documentation generator, convert the block and theme")
	fmt.Fprintln(w, "docs to roff, insert section headers, and stitch preface, fragments")
	fmt.Fprintln(w, "and postface into one file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  output-path   Final manpage path (default: man/statusbar.1)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -s, --source <dir>        Source tree passed to the generator")
	fmt.Fprintln(w, "      --blocks <path>       Block-definitions Markdown (generated)")
	fmt.Fprintln(w, "      --themes <path>       Themes Markdown")
	fmt.Fprintln(w, "      --preface <path>      Static preface fragment")
	fmt.Fprintln(w, "      --postface <path>     Static postface fragment")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generator:")
	fmt.Fprintln(w, "      --generator <cmd>     Generator command (whitespace-separated)")
	fmt.Fprintln(w, "      --generator-dir <dir> Generator working directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Converter:")
	fmt.Fprintln(w, "      --engine <s>          Engine: pandoc (default), builtin")
	fmt.Fprintln(w, "      --pandoc <path>       Pandoc binary path")
	fmt.Fprintln(w, "      --base-header-level <n>")
	fmt.Fprintln(w, "                            Base header level for the themes doc (1-6)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --keep-intermediates  Keep generated intermediates")
	fmt.Fprintln(w, "      --html-preview <path> Also write an HTML review copy")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-step detail")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "assemble":
		printAssembleUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: manstitch doctor [--json] [-c config]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check that pandoc, the generator command and the documentation")
		fmt.Fprintln(env.Stdout, "layout are in place.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: manstitch version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: manstitch help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
