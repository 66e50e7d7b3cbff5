// Package syllabus assembles course syllabi into Word and PDF documents.
//
// # Quick Start
//
// Build a snapshot, create a generator, and write the output:
//
//	gen := syllabus.New()
//	defer gen.Close()
//
//	snap := &syllabus.Snapshot{
//	    Course: syllabus.CourseInfo{
//	        Number: "AMH2020", Title: "United States Since 1877",
//	        Term: "Fall 2025", Credits: "3",
//	        MeetingTimes: "MWF Period 4", Location: "Keene-Flint 105",
//	    },
//	    Instructor: syllabus.InstructorInfo{Name: "Dr. Smith", Email: "smith@ufl.edu"},
//	}
//	if err := gen.GenerateDOCX(ctx, snap, "syllabus.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Assembly Pipeline
//
// Document generation follows these stages:
//
//  1. Snapshot validation (required course and instructor fields)
//  2. Inline markup rendering (**bold**, *italic*, [label](url), bare
//     URL and email autolinking) of free-text fields into styled spans
//  3. Section assembly into an ordered list of headings, paragraphs
//     and tables, driven by the snapshot's policy flags
//  4. Materialization by a document sink (Word via gooxml, PDF)
//
// # PDF Conversion Chain
//
// PDF output walks a chain of backends from highest to lowest fidelity
// and reports which one succeeded:
//
//  1. LibreOffice headless conversion of the Word rendering
//  2. Headless Chrome (go-rod) printing of the HTML rendering
//  3. Direct rendering via fpdf, always available
//
// Diagnostics from failed attempts accumulate in the PDFResult; if all
// backends fail the joined diagnostics are returned as an error.
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen := syllabus.New(
//	    syllabus.WithTimeout(2 * time.Minute),
//	    syllabus.WithoutChrome(),
//	)
//
// # Browser Requirements
//
// The Chrome backend downloads a managed Chromium on first run
// (~/.cache/rod/browser/). For containers and CI environments, use
// ROD_BROWSER_BIN to specify a pre-installed browser binary.
package syllabus
