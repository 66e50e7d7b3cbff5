package main

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/avolette/go-syllabus/internal/schedule"
)

func TestRunSchedule_Example(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	out := filepath.Join(t.TempDir(), "example.csv")

	if err := runSchedule([]string{"example", out}, env); err != nil {
		t.Fatalf("runSchedule failed: %v", err)
	}

	entries, err := schedule.ReadFile(out)
	if err != nil {
		t.Fatalf("reading example back: %v", err)
	}
	if !reflect.DeepEqual(entries, schedule.Example()) {
		t.Error("example file does not round-trip")
	}
	if !strings.Contains(stdout.String(), "Created example schedule") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunSchedule_Convert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cal.csv")
	xlsxPath := filepath.Join(dir, "cal.xlsx")

	env, stdout, _ := testEnv()
	if err := runSchedule([]string{"example", csvPath}, env); err != nil {
		t.Fatal(err)
	}
	if err := runSchedule([]string{"convert", csvPath, xlsxPath}, env); err != nil {
		t.Fatalf("runSchedule convert failed: %v", err)
	}

	entries, err := schedule.ReadFile(xlsxPath)
	if err != nil {
		t.Fatalf("reading converted file: %v", err)
	}
	if !reflect.DeepEqual(entries, schedule.Example()) {
		t.Error("conversion changed the entries")
	}
	if !strings.Contains(stdout.String(), "(5 rows)") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunSchedule_Usage(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		nil,
		{"convert"},
		{"convert", "only-input.csv"},
		{"example"},
		{"unknown-subcommand"},
	}
	for _, args := range tests {
		env, _, _ := testEnv()
		if err := runSchedule(args, env); !errors.Is(err, ErrScheduleUsage) {
			t.Errorf("runSchedule(%v): errors.Is(err, ErrScheduleUsage) = false, got: %v", args, err)
		}
	}
}
