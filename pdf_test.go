package syllabus

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderPDF(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	snap.Policies.ShowGenEd = true
	snap.Schedule = []ScheduleEntry{
		{Date: "January 13, 2025", Topic: "Reconstruction", Readings: "Chapter 15\nDouglass speech", WorkDue: "Quiz"},
	}

	data, err := RenderPDF(Assemble(snap))
	if err != nil {
		t.Fatalf("RenderPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF header, got %q", data[:8])
	}
	if len(data) < 1024 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func TestRenderPDF_EmptySections(t *testing.T) {
	t.Parallel()

	data, err := RenderPDF(nil)
	if err != nil {
		t.Fatalf("RenderPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("empty document is not a valid PDF")
	}
}

func TestRenderBasicPDF(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	snap.Course.Description = "Survey of US history since 1877."

	data, err := RenderBasicPDF(snap)
	if err != nil {
		t.Fatalf("RenderBasicPDF failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a valid PDF")
	}
}

func TestWrapCellText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "short text unchanged",
			input: "Reading Response #1",
			want:  "Reading Response #1",
		},
		{
			name:  "long text breaks at sentences",
			input: strings.Repeat("x", 30) + ". " + strings.Repeat("y", 30) + "; " + strings.Repeat("z", 10),
			want:  strings.Repeat("x", 30) + ".\n" + strings.Repeat("y", 30) + ";\n" + strings.Repeat("z", 10),
		},
		{
			name:  "existing newlines left alone",
			input: strings.Repeat("a", 40) + ". " + strings.Repeat("b", 40) + "\nsecond line",
			want:  strings.Repeat("a", 40) + ". " + strings.Repeat("b", 40) + "\nsecond line",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := wrapCellText(tt.input); got != tt.want {
				t.Errorf("wrapCellText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestColumnWidths(t *testing.T) {
	t.Parallel()

	t.Run("ratio hints respected", func(t *testing.T) {
		t.Parallel()

		tbl := Table{Header: []string{"a", "b"}, Widths: []float64{0.75, 0.25}}
		widths := columnWidths(tbl, 400)
		if widths[0] != 300 || widths[1] != 100 {
			t.Errorf("widths = %v, want [300 100]", widths)
		}
	})

	t.Run("even split without hints", func(t *testing.T) {
		t.Parallel()

		tbl := Table{Header: []string{"a", "b", "c", "d"}}
		widths := columnWidths(tbl, 400)
		for i, w := range widths {
			if w != 100 {
				t.Errorf("widths[%d] = %v, want 100", i, w)
			}
		}
	})

	t.Run("mismatched hints fall back to even split", func(t *testing.T) {
		t.Parallel()

		tbl := Table{Header: []string{"a", "b", "c"}, Widths: []float64{0.5, 0.5}}
		widths := columnWidths(tbl, 300)
		for i, w := range widths {
			if w != 100 {
				t.Errorf("widths[%d] = %v, want 100", i, w)
			}
		}
	})
}
