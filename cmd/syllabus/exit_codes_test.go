package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	syllabus "github.com/avolette/go-syllabus"
	"github.com/avolette/go-syllabus/internal/schedule"
	"github.com/avolette/go-syllabus/internal/templates"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"general error", errors.New("boom"), ExitGeneral},
		{"no input", ErrNoInput, ExitUsage},
		{"no output", ErrNoOutput, ExitUsage},
		{"unknown format", ErrUnknownFormat, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"schedule usage", ErrScheduleUsage, ExitUsage},
		{"templates usage", ErrTemplatesUsage, ExitUsage},
		{"nil snapshot", syllabus.ErrNilSnapshot, ExitUsage},
		{"missing field", syllabus.ErrMissingField, ExitUsage},
		{"empty output path", syllabus.ErrEmptyOutputPath, ExitUsage},
		{"unknown template", templates.ErrUnknownTemplate, ExitUsage},
		{"snapshot format", templates.ErrUnsupportedFormat, ExitUsage},
		{"schedule format", schedule.ErrUnsupportedFormat, ExitUsage},
		{"file not found", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"browser connect", syllabus.ErrBrowserConnect, ExitConversion},
		{"page create", syllabus.ErrPageCreate, ExitConversion},
		{"page load", syllabus.ErrPageLoad, ExitConversion},
		{"pdf generation", syllabus.ErrPDFGeneration, ExitConversion},
		{"pdf conversion", syllabus.ErrPDFConversion, ExitConversion},
		{"no soffice", syllabus.ErrNoSOffice, ExitConversion},
		{"wrapped missing field", fmt.Errorf("context: %w", syllabus.ErrMissingField), ExitUsage},
		{"wrapped not exist", fmt.Errorf("open: %w", os.ErrNotExist), ExitIO},
		{"wrapped conversion", fmt.Errorf("%w: all methods failed", syllabus.ErrPDFConversion), ExitConversion},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
