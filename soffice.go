package syllabus

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/avolette/go-syllabus/internal/fileutil"
)

// sofficeCandidates lists installation paths probed per platform before
// falling back to PATH lookup.
func sofficeCandidates() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files\LibreOffice\program\soffice.exe`,
			`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
		}
	case "darwin":
		return []string{
			"/Applications/LibreOffice.app/Contents/MacOS/soffice",
		}
	default:
		return []string{
			"/usr/bin/libreoffice",
			"/usr/bin/soffice",
			"/snap/bin/libreoffice",
		}
	}
}

// FindSOffice locates the LibreOffice executable. It probes the
// platform's conventional installation paths, then PATH.
func FindSOffice() (string, error) {
	for _, path := range sofficeCandidates() {
		if fileutil.FileExists(path) {
			return path, nil
		}
	}
	for _, name := range []string{"soffice", "libreoffice"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNoSOffice
}

// sofficeConverter converts a DOCX file to PDF through LibreOffice's
// headless mode.
type sofficeConverter struct {
	runner CommandRunner
	path   string // resolved executable, discovered lazily when empty
}

func newSofficeConverter(runner CommandRunner) *sofficeConverter {
	return &sofficeConverter{runner: runner}
}

// Convert runs soffice --headless --convert-to pdf. LibreOffice writes
// the PDF next to the requested output directory under the input's base
// name, so the result is renamed to pdfPath when the two differ.
func (c *sofficeConverter) Convert(ctx context.Context, docxPath, pdfPath string) error {
	if c.path == "" {
		path, err := FindSOffice()
		if err != nil {
			return err
		}
		c.path = path
	}

	outDir := filepath.Dir(pdfPath)
	_, stderr, err := c.runner.Run(ctx, c.path,
		"--headless", "--convert-to", "pdf", "--outdir", outDir, docxPath)
	if err != nil {
		return fmt.Errorf("soffice conversion: %s: %w", strings.TrimSpace(stderr), err)
	}

	base := strings.TrimSuffix(filepath.Base(docxPath), filepath.Ext(docxPath))
	produced := filepath.Join(outDir, base+".pdf")
	if produced != pdfPath {
		if err := os.Rename(produced, pdfPath); err != nil {
			return fmt.Errorf("renaming soffice output: %w", err)
		}
	}
	return nil
}
