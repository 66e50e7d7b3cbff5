package main

import (
	"errors"
	"fmt"

	"github.com/avolette/go-syllabus/internal/templates"
)

// ErrTemplatesUsage indicates a malformed templates subcommand.
var ErrTemplatesUsage = errors.New("usage: syllabus templates <list|export> ...")

// runTemplates dispatches the templates subcommands.
func runTemplates(args []string, env *Environment) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		for _, name := range templates.Names() {
			snap, err := templates.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(env.Stdout, "%-10s %s\n", name, snap.Course.Title)
		}
		return nil
	case "export":
		if len(args) != 3 {
			return fmt.Errorf("%w: export needs <name> and <output>", ErrTemplatesUsage)
		}
		snap, err := templates.Get(args[1])
		if err != nil {
			return err
		}
		if err := templates.Save(snap, args[2]); err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Exported %s to %s\n", args[1], args[2])
		return nil
	default:
		return fmt.Errorf("%w: unknown subcommand %q", ErrTemplatesUsage, args[0])
	}
}
