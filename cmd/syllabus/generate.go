package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	syllabus "github.com/avolette/go-syllabus"
	"github.com/avolette/go-syllabus/internal/schedule"
	"github.com/avolette/go-syllabus/internal/templates"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no snapshot file or --template specified")
	ErrNoOutput       = errors.New("no output file specified")
	ErrUnknownFormat  = errors.New("output file must have a .docx, .pdf, or .html extension")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// runGenerate renders one syllabus document.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args)
	if err != nil {
		return err
	}

	snap, err := resolveSnapshot(flags, positional)
	if err != nil {
		return err
	}

	// An external schedule file replaces the snapshot's calendar.
	if flags.schedule != "" {
		entries, err := schedule.ReadFile(flags.schedule)
		if err != nil {
			return err
		}
		snap.Schedule = entries
	}

	if err := snap.Validate(); err != nil {
		return err
	}

	outPath := flags.output
	if outPath == "" && len(positional) > 1 {
		outPath = positional[1]
	}
	if outPath == "" {
		return ErrNoOutput
	}

	opts, err := generatorOptions(flags)
	if err != nil {
		return err
	}

	gen := syllabus.New(opts...)
	defer gen.Close()

	switch ext := strings.ToLower(filepath.Ext(outPath)); ext {
	case ".docx":
		err = gen.GenerateDOCX(ctx, snap, outPath)
	case ".html":
		err = gen.GenerateHTML(ctx, snap, outPath)
	case ".pdf":
		var result *syllabus.PDFResult
		result, err = gen.GeneratePDF(ctx, snap, outPath)
		if err == nil && flags.common.verbose {
			fmt.Fprintf(env.Stderr, "PDF produced via %s\n", result.Method)
			for _, diag := range result.Diagnostics {
				fmt.Fprintf(env.Stderr, "  %s\n", diag)
			}
		}
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outPath)
	}
	return nil
}

// resolveSnapshot loads the syllabus either from a built-in template or
// from a snapshot file given as the first positional argument.
func resolveSnapshot(flags *generateFlags, positional []string) (*syllabus.Snapshot, error) {
	if flags.template != "" {
		return templates.Get(flags.template)
	}
	if len(positional) > 0 {
		return templates.Load(positional[0])
	}
	return nil, ErrNoInput
}

// generatorOptions maps CLI flags to generator options.
func generatorOptions(flags *generateFlags) ([]syllabus.Option, error) {
	var opts []syllabus.Option
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
		}
		opts = append(opts, syllabus.WithTimeout(d))
	}
	if flags.noOffice {
		opts = append(opts, syllabus.WithoutSOffice())
	}
	if flags.noChrome {
		opts = append(opts, syllabus.WithoutChrome())
	}
	return opts, nil
}
