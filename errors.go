package syllabus

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilSnapshot    = errors.New("snapshot cannot be nil")
	ErrMissingField   = errors.New("required field missing")
	ErrDocxGeneration = errors.New("DOCX generation failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFConversion  = errors.New("all PDF conversion methods failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrNoSOffice      = errors.New("LibreOffice executable not found")

	// Output path validation errors.
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
)
