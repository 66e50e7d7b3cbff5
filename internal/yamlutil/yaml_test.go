package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/avolette/go-syllabus"
	"github.com/avolette/go-syllabus/internal/yamlutil"
)

// snapshotYAML is a minimal but realistic snapshot file.
const snapshotYAML = `course_info:
  number: AMH2020
  title: United States Since 1877
  term: Spring 2025
  credits: "3"
  meeting_times: M, W 12:50p - 1:40p
  location: MCCC 0100
instructor_info:
  name: Dr. Jane Doe
  email: jane.doe@ufl.edu
policies:
  show_gen_ed: true
  late_submissions: true
  late_preset: Standard (10% per day)
`

// ---------------------------------------------------------------------------
// TestUnmarshal - Decodes snapshot YAML
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "snapshot file",
			data: []byte(snapshotYAML),
			dest: &syllabus.Snapshot{},
			check: func(t *testing.T, v any) {
				snap := v.(*syllabus.Snapshot)
				if snap.Course.Number != "AMH2020" {
					t.Errorf("Course.Number = %q, want %q", snap.Course.Number, "AMH2020")
				}
				if snap.Instructor.Email != "jane.doe@ufl.edu" {
					t.Errorf("Instructor.Email = %q", snap.Instructor.Email)
				}
				if !snap.Policies.ShowGenEd || !snap.Policies.LateSubmissions {
					t.Errorf("policy flags not decoded: %+v", snap.Policies)
				}
				if snap.Policies.LatePreset != "Standard (10% per day)" {
					t.Errorf("LatePreset = %q", snap.Policies.LatePreset)
				}
			},
		},
		{
			name: "multi-line readings cell",
			data: []byte("schedule:\n  - date: January 15, 2025\n    topic: Reconstruction\n    readings: |-\n      Chapter 15, American Yawp [10390 words]\n      Frederick Douglass (1878)\n"),
			dest: &syllabus.Snapshot{},
			check: func(t *testing.T, v any) {
				snap := v.(*syllabus.Snapshot)
				if len(snap.Schedule) != 1 {
					t.Fatalf("len(Schedule) = %d, want 1", len(snap.Schedule))
				}
				want := "Chapter 15, American Yawp [10390 words]\nFrederick Douglass (1878)"
				if snap.Schedule[0].Readings != want {
					t.Errorf("Readings = %q, want %q", snap.Schedule[0].Readings, want)
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &syllabus.Snapshot{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &syllabus.Snapshot{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte(snapshotYAML),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("course_info: [unclosed"),
			dest:    &syllabus.Snapshot{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return // exact match via errors.Is
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects misspelled snapshot keys
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "known fields only",
			data: []byte(snapshotYAML),
			dest: &syllabus.Snapshot{},
			check: func(t *testing.T, v any) {
				snap := v.(*syllabus.Snapshot)
				if snap.Course.Title != "United States Since 1877" {
					t.Errorf("Course.Title = %q", snap.Course.Title)
				}
			},
		},
		{
			name: "misspelled policy key",
			// show_gened would be silently dropped by plain Unmarshal.
			data:    []byte("policies:\n  show_gened: true\n"),
			dest:    &syllabus.Snapshot{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &syllabus.Snapshot{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte(snapshotYAML),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encodes snapshots as YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	t.Run("snapshot", func(t *testing.T) {
		t.Parallel()

		snap := &syllabus.Snapshot{
			Course: syllabus.CourseInfo{Number: "AMH2010", Title: "United States History to 1877"},
			Policies: syllabus.Policies{
				LatePreset: "No late work",
			},
		}
		data, err := yamlutil.Marshal(snap)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		s := string(data)
		if !strings.Contains(s, "number: AMH2010") {
			t.Errorf("output missing course number:\n%s", s)
		}
		if !strings.Contains(s, "late_preset: No late work") {
			t.Errorf("output missing late preset:\n%s", s)
		}
		// omitempty keeps untouched text overrides out of the file.
		if strings.Contains(s, "extra_credit_text") {
			t.Errorf("empty override serialized:\n%s", s)
		}
	})

	t.Run("nil value produces null", func(t *testing.T) {
		t.Parallel()

		data, err := yamlutil.Marshal(nil)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		if s := strings.TrimSpace(string(data)); s != "null" {
			t.Errorf("output = %q, want %q", s, "null")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRoundTrip - Marshal/Unmarshal symmetry for a full snapshot
// ---------------------------------------------------------------------------

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original := syllabus.Snapshot{
		Course: syllabus.CourseInfo{
			Number:       "TEST1000",
			Title:        "TEST TEMPLATE",
			Term:         "Spring 2025",
			Credits:      "3",
			MeetingTimes: "MWF 10:00 AM - 10:50 AM",
			Location:     "History Building 202",
			Objectives:   []string{"Understand the principles of historical research."},
		},
		Instructor: syllabus.InstructorInfo{Name: "Dr. Jane Doe", Email: "jane.doe@university.edu"},
		Staff: []syllabus.StaffSection{
			{Name: "John Smith", Email: "john.smith@university.edu", ClassRoom: "Keene-Flint 119"},
		},
		Grading: []syllabus.GradingCategory{
			{
				Name:   "Exams",
				Weight: "50",
				Assignments: []syllabus.Assignment{
					{Title: "Midterm", DueDate: "March 3", Points: "100"},
				},
			},
		},
		Schedule: []syllabus.ScheduleEntry{
			{Date: "January 13, 2025", Topic: "Reconstruction", Readings: "Chapter 15", WorkDue: "Quiz #1"},
		},
		Policies: syllabus.Policies{
			ShowGenEd:  true,
			Simplified: true,
			LatePreset: "48-hour grace",
			LateText:   "Custom late text.",
		},
	}

	data, err := yamlutil.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded syllabus.Snapshot
	if err := yamlutil.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Course.Number != original.Course.Number {
		t.Errorf("Course.Number = %q, want %q", decoded.Course.Number, original.Course.Number)
	}
	if len(decoded.Course.Objectives) != 1 || decoded.Course.Objectives[0] != original.Course.Objectives[0] {
		t.Errorf("Course.Objectives = %v", decoded.Course.Objectives)
	}
	if decoded.Staff[0].ClassRoom != "Keene-Flint 119" {
		t.Errorf("Staff[0].ClassRoom = %q", decoded.Staff[0].ClassRoom)
	}
	if decoded.Grading[0].Assignments[0].Points != "100" {
		t.Errorf("assignment points = %q", decoded.Grading[0].Assignments[0].Points)
	}
	if decoded.Schedule[0] != original.Schedule[0] {
		t.Errorf("Schedule[0] = %+v, want %+v", decoded.Schedule[0], original.Schedule[0])
	}
	if decoded.Policies != original.Policies {
		t.Errorf("Policies = %+v, want %+v", decoded.Policies, original.Policies)
	}
}

// ---------------------------------------------------------------------------
// TestErrorWrapping - Sentinels detectable via errors.Is
// ---------------------------------------------------------------------------

func TestErrorWrapping(t *testing.T) {
	t.Parallel()

	t.Run("ErrNilData", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.Unmarshal(nil, &syllabus.Snapshot{})
		if !errors.Is(err, yamlutil.ErrNilData) {
			t.Error("errors.Is(err, ErrNilData) = false, want true")
		}
	})

	t.Run("ErrNilDestination", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.Unmarshal([]byte(snapshotYAML), nil)
		if !errors.Is(err, yamlutil.ErrNilDestination) {
			t.Error("errors.Is(err, ErrNilDestination) = false, want true")
		}
	})

	t.Run("wrapped errors have yamlutil prefix", func(t *testing.T) {
		t.Parallel()

		err := yamlutil.Unmarshal([]byte("course_info: [unclosed"), &syllabus.Snapshot{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want prefix 'yamlutil:'", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Note: these subtests modify the global MaxInputSize, so they cannot
// run in parallel with other tests.

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	// oversized builds a snapshot file larger than limit by padding the
	// schedule with rows.
	oversized := func(limit int) []byte {
		var b strings.Builder
		b.WriteString("schedule:\n")
		for b.Len() <= limit {
			b.WriteString("  - date: January 13, 2025\n    topic: Reconstruction\n")
		}
		return []byte(b.String())
	}

	t.Run("input at limit succeeds", func(t *testing.T) {
		yamlutil.MaxInputSize = len(snapshotYAML)
		var snap syllabus.Snapshot
		if err := yamlutil.Unmarshal([]byte(snapshotYAML), &snap); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("input exceeding limit fails", func(t *testing.T) {
		yamlutil.MaxInputSize = 256
		var snap syllabus.Snapshot
		err := yamlutil.Unmarshal(oversized(256), &snap)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})

	t.Run("error message includes sizes", func(t *testing.T) {
		yamlutil.MaxInputSize = 50
		var snap syllabus.Snapshot
		err := yamlutil.Unmarshal(make([]byte, 100), &snap)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		msg := err.Error()
		if !strings.Contains(msg, "100 bytes") {
			t.Errorf("error should contain actual size, got: %s", msg)
		}
		if !strings.Contains(msg, "max 50") {
			t.Errorf("error should contain max size, got: %s", msg)
		}
	})

	t.Run("UnmarshalStrict also enforces limit", func(t *testing.T) {
		yamlutil.MaxInputSize = 256
		var snap syllabus.Snapshot
		err := yamlutil.UnmarshalStrict(oversized(256), &snap)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
	})
}
