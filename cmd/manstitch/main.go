package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is
	// invalid, in which case Go runtime defaults apply and the program
	// continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()
	os.Exit(realMain(context.Background(), os.Args[1:], env))
}

// realMain dispatches subcommands and returns the process exit code.
// The bare form "manstitch [output-path]" runs an assembly.
func realMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		switch args[0] {
		case "doctor":
			return runDoctorCmd(args[1:], env)
		case "version":
			fmt.Fprintf(env.Stdout, "manstitch %s\n", Version)
			return ExitSuccess
		case "help":
			runHelp(args[1:], env)
			return ExitSuccess
		case "assemble":
			// explicit form of the default command
			args = args[1:]
		}
	}

	flags, positional, err := parseAssembleFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if err := runAssemble(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
