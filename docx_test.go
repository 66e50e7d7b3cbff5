package syllabus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildDocument(t *testing.T) {
	t.Parallel()

	sections := []Section{
		Heading{Text: "AMH2020: US History", Level: 0, Align: AlignCenter},
		Paragraph{Spans: []Span{{Kind: SpanPlain, Text: "Spring 2025 (3 credits)"}}, Align: AlignCenter},
		Table{
			Header: []string{"Letter Grade", "Number Grade"},
			Rows:   [][]Cell{{Cell{{Kind: SpanPlain, Text: "A"}}, Cell{{Kind: SpanPlain, Text: "100-93"}}}},
		},
	}

	doc, err := BuildDocument(sections)
	if err != nil {
		t.Fatalf("BuildDocument failed: %v", err)
	}

	// Two body paragraphs plus the footer's page-number paragraph.
	if got := len(doc.Paragraphs()); got < 2 {
		t.Errorf("paragraphs = %d, want at least 2", got)
	}
	if got := len(doc.Tables()); got != 1 {
		t.Errorf("tables = %d, want 1", got)
	}
}

func TestBuildDocument_FullSnapshot(t *testing.T) {
	t.Parallel()

	snap := validSnapshot()
	snap.Policies.ShowGenEd = true
	snap.Grading = []GradingCategory{{Name: "Exams", Weight: "40"}}
	snap.Schedule = []ScheduleEntry{{Date: "January 13, 2025", Topic: "Reconstruction"}}

	doc, err := BuildDocument(Assemble(snap))
	if err != nil {
		t.Fatalf("BuildDocument failed: %v", err)
	}

	// Objectives, grading components, grading scale, and calendar tables.
	if got := len(doc.Tables()); got != 4 {
		t.Errorf("tables = %d, want 4", got)
	}
}

func TestWriteDocx(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "syllabus.docx")
	if err := WriteDocx(validSnapshot(), path); err != nil {
		t.Fatalf("WriteDocx failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestWriteDocx_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid snapshot", func(t *testing.T) {
		t.Parallel()

		snap := validSnapshot()
		snap.Course.Number = ""
		err := WriteDocx(snap, filepath.Join(t.TempDir(), "out.docx"))
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("errors.Is(err, ErrMissingField) = false, got: %v", err)
		}
	})

	t.Run("empty output path", func(t *testing.T) {
		t.Parallel()

		err := WriteDocx(validSnapshot(), "")
		if !errors.Is(err, ErrEmptyOutputPath) {
			t.Errorf("errors.Is(err, ErrEmptyOutputPath) = false, got: %v", err)
		}
	})

	t.Run("nil snapshot", func(t *testing.T) {
		t.Parallel()

		err := WriteDocx(nil, filepath.Join(t.TempDir(), "out.docx"))
		if !errors.Is(err, ErrNilSnapshot) {
			t.Errorf("errors.Is(err, ErrNilSnapshot) = false, got: %v", err)
		}
	})
}
