// Package schedule reads and writes course calendars as CSV or XLSX
// spreadsheets.
//
// Both formats use the same four columns: Date, Topic,
// Readings/Preparation, and Work Due. Columns are matched by header
// name, so extra columns and reordered columns are tolerated on import.
package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/avolette/go-syllabus"
)

// ErrUnsupportedFormat indicates a schedule file extension that is
// neither CSV nor XLSX.
var ErrUnsupportedFormat = errors.New("schedule: unsupported schedule format")

// Headers are the spreadsheet column headers, in writing order.
var Headers = []string{"Date", "Topic", "Readings/Preparation", "Work Due"}

// ReadFile loads a schedule from a CSV or XLSX file, dispatching on
// the file extension.
func ReadFile(path string) ([]syllabus.ScheduleEntry, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("schedule: open %s: %w", path, err)
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// WriteFile saves a schedule to a CSV or XLSX file, dispatching on the
// file extension.
func WriteFile(path string, entries []syllabus.ScheduleEntry) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("schedule: create %s: %w", path, err)
		}
		if err := WriteCSV(f, entries); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return WriteXLSX(path, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadCSV parses a schedule from CSV data. The first record must be a
// header row; columns are matched by name.
func ReadCSV(r io.Reader) ([]syllabus.ScheduleEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // cell text may contain commas and newlines; rows may be ragged

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("schedule: parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return entriesFromRows(records[0], records[1:]), nil
}

// WriteCSV writes a schedule as CSV with a header row.
func WriteCSV(w io.Writer, entries []syllabus.ScheduleEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Headers); err != nil {
		return fmt.Errorf("schedule: write csv: %w", err)
	}
	for _, e := range entries {
		if err := writer.Write([]string{e.Date, e.Topic, e.Readings, e.WorkDue}); err != nil {
			return fmt.Errorf("schedule: write csv: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("schedule: write csv: %w", err)
	}
	return nil
}

// ReadXLSX parses a schedule from the first sheet of an XLSX workbook.
// The first row must be a header row; columns are matched by name.
func ReadXLSX(path string) ([]syllabus.ScheduleEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: open %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("schedule: read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return entriesFromRows(rows[0], rows[1:]), nil
}

// WriteXLSX writes a schedule as a single-sheet XLSX workbook.
func WriteXLSX(path string, entries []syllabus.ScheduleEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := writeRow(f, sheet, 1, Headers); err != nil {
		return err
	}
	for i, e := range entries {
		cells := []string{e.Date, e.Topic, e.Readings, e.WorkDue}
		if err := writeRow(f, sheet, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("schedule: save %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("schedule: cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("schedule: set cell %s: %w", cell, err)
		}
	}
	return nil
}

// entriesFromRows maps spreadsheet rows to schedule entries using the
// header row to locate each column. Unknown headers are ignored and
// missing columns stay empty.
func entriesFromRows(header []string, rows [][]string) []syllabus.ScheduleEntry {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	entries := make([]syllabus.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, syllabus.ScheduleEntry{
			Date:     cell(row, "Date"),
			Topic:    cell(row, "Topic"),
			Readings: cell(row, "Readings/Preparation"),
			WorkDue:  cell(row, "Work Due"),
		})
	}
	return entries
}

// Example returns a small sample schedule demonstrating the expected
// cell formats, including multi-line readings cells.
func Example() []syllabus.ScheduleEntry {
	return []syllabus.ScheduleEntry{
		{
			Date:     "January 10, 2025",
			Topic:    "Introduction to Course",
			Readings: "Syllabus [1000 words]",
			WorkDue:  "None",
		},
		{
			Date:     "January 17, 2025",
			Topic:    "The Progressive Era",
			Readings: "American Yawp, Ch. 20 [8400 words]\nTheodore Roosevelt, 'The New Nationalism' [P]",
			WorkDue:  "Reading Response #1",
		},
		{
			Date:     "January 24, 2025",
			Topic:    "World War I",
			Readings: "American Yawp, Ch. 21 [8750 words]\nWoodrow Wilson, 'War Message to Congress' [P]",
			WorkDue:  "Paper Proposal Due",
		},
		{
			Date:     "January 31, 2025",
			Topic:    "The 1920s",
			Readings: "American Yawp, Ch. 22 [7800 words]\nF. Scott Fitzgerald, excerpt from The Great Gatsby [P]",
			WorkDue:  "Discussion Post",
		},
		{
			Date:     "February 7, 2025",
			Topic:    "Great Depression",
			Readings: "American Yawp, Ch. 23 [8200 words]\nFDR, First Inaugural Address [P]",
			WorkDue:  "Reading Response #2",
		},
	}
}
