package main

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()
	loadDotEnv(env.Stderr)

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// run dispatches to a command and returns the process exit code.
// Without a command, or when the first argument is a flag, generate runs.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		return runGenerateCmd(ctx, nil, env)
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "generate":
		return runGenerateCmd(ctx, rest, env)
	case "check":
		return runCheckCmd(rest, env)
	case "init":
		return runInitCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "lotlist %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	if strings.HasPrefix(cmd, "-") {
		return runGenerateCmd(ctx, args[1:], env)
	}
	fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}
