package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common   commonFlags
	output   string
	template string
	schedule string
	timeout  string
	noOffice bool
	noChrome bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show conversion details")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (.docx, .pdf, or .html)")
	fs.StringVar(&f.template, "template", "", "built-in template name instead of a snapshot file")
	fs.StringVar(&f.schedule, "schedule", "", "schedule file (.csv or .xlsx) merged into the snapshot")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF conversion timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.noOffice, "no-libreoffice", false, "skip the LibreOffice conversion path")
	fs.BoolVar(&f.noChrome, "no-chrome", false, "skip the Chrome conversion path")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
