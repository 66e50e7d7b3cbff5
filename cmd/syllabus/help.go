package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: syllabus <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate   Generate a syllabus document (.docx, .pdf, .html)")
	fmt.Fprintln(w, "  schedule   Convert schedule files or write an example")
	fmt.Fprintln(w, "  templates  List or export built-in course templates")
	fmt.Fprintln(w, "  doctor     Check PDF conversion backends")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'syllabus help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: syllabus generate <snapshot> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate a syllabus document from a snapshot file or template.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  snapshot   Snapshot file (.json, .yaml); optional with --template")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (.docx, .pdf, or .html)")
	fmt.Fprintln(w, "      --template <name>   Built-in template instead of a snapshot file")
	fmt.Fprintln(w, "      --schedule <path>   Schedule file (.csv, .xlsx) merged into the snapshot")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF Conversion:")
	fmt.Fprintln(w, "  -t, --timeout <d>       Conversion timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "      --no-libreoffice    Skip the LibreOffice conversion path")
	fmt.Fprintln(w, "      --no-chrome         Skip the Chrome conversion path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show conversion details")
}

// printScheduleUsage prints usage for the schedule command.
func printScheduleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: syllabus schedule <subcommand> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  convert <input> <output>   Convert between .csv and .xlsx")
	fmt.Fprintln(w, "  example <output>           Write an example schedule file")
}

// printTemplatesUsage prints usage for the templates command.
func printTemplatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: syllabus templates <subcommand> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Subcommands:")
	fmt.Fprintln(w, "  list                       List built-in templates (default)")
	fmt.Fprintln(w, "  export <name> <output>     Write a template as a snapshot file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "schedule":
		printScheduleUsage(env.Stdout)
	case "templates":
		printTemplatesUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: syllabus doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check which PDF conversion backends are available.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: syllabus version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: syllabus help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
