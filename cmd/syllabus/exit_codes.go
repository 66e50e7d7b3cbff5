package main

import (
	"errors"
	"os"

	syllabus "github.com/avolette/go-syllabus"
	"github.com/avolette/go-syllabus/internal/schedule"
	"github.com/avolette/go-syllabus/internal/templates"
	"github.com/avolette/go-syllabus/internal/yamlutil"
)

// Exit codes for the syllabus CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess    = 0 // Document generated
	ExitGeneral    = 1 // General/unexpected error
	ExitUsage      = 2 // Invalid flags, snapshot, or validation
	ExitIO         = 3 // File not found, permission denied
	ExitConversion = 4 // PDF conversion backend errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Conversion backend errors (exit 4)
	if errors.Is(err, syllabus.ErrBrowserConnect) ||
		errors.Is(err, syllabus.ErrPageCreate) ||
		errors.Is(err, syllabus.ErrPageLoad) ||
		errors.Is(err, syllabus.ErrPDFGeneration) ||
		errors.Is(err, syllabus.ErrPDFConversion) ||
		errors.Is(err, syllabus.ErrNoSOffice) {
		return ExitConversion
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/snapshot/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoOutput) ||
		errors.Is(err, ErrUnknownFormat) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrScheduleUsage) ||
		errors.Is(err, ErrTemplatesUsage) ||
		errors.Is(err, syllabus.ErrNilSnapshot) ||
		errors.Is(err, syllabus.ErrMissingField) ||
		errors.Is(err, syllabus.ErrEmptyOutputPath) ||
		errors.Is(err, templates.ErrUnknownTemplate) ||
		errors.Is(err, templates.ErrUnsupportedFormat) ||
		errors.Is(err, schedule.ErrUnsupportedFormat) ||
		errors.Is(err, yamlutil.ErrNilData) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
