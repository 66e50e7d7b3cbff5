package main

import (
	"context"
	"fmt"
)

// run dispatches the top-level command and returns an exit code.
func run(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	switch args[0] {
	case "generate":
		return exitCodeReporting(runGenerate(ctx, args[1:], env), env)
	case "schedule":
		return exitCodeReporting(runSchedule(args[1:], env), env)
	case "templates":
		return exitCodeReporting(runTemplates(args[1:], env), env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "syllabus %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(args[1:], env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// exitCodeReporting prints the error, if any, and maps it to an exit code.
func exitCodeReporting(err error, env *Environment) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
	}
	return exitCodeFor(err)
}
