package main

import (
	"errors"
	"fmt"

	"github.com/avolette/go-syllabus/internal/schedule"
)

// ErrScheduleUsage indicates a malformed schedule subcommand.
var ErrScheduleUsage = errors.New("usage: syllabus schedule <convert|example> ...")

// runSchedule dispatches the schedule subcommands.
func runSchedule(args []string, env *Environment) error {
	if len(args) == 0 {
		return ErrScheduleUsage
	}

	switch args[0] {
	case "convert":
		if len(args) != 3 {
			return fmt.Errorf("%w: convert needs <input> and <output>", ErrScheduleUsage)
		}
		entries, err := schedule.ReadFile(args[1])
		if err != nil {
			return err
		}
		if err := schedule.WriteFile(args[2], entries); err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Converted %s -> %s (%d rows)\n", args[1], args[2], len(entries))
		return nil
	case "example":
		if len(args) != 2 {
			return fmt.Errorf("%w: example needs <output>", ErrScheduleUsage)
		}
		if err := schedule.WriteFile(args[1], schedule.Example()); err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Created example schedule %s\n", args[1])
		return nil
	default:
		return fmt.Errorf("%w: unknown subcommand %q", ErrScheduleUsage, args[0])
	}
}
