package syllabus

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// defaultTimeout bounds each external conversion attempt.
const defaultTimeout = 60 * time.Second

// docxPDFConverter abstracts DOCX-to-PDF conversion backends.
type docxPDFConverter interface {
	Convert(ctx context.Context, docxPath, pdfPath string) error
}

var _ docxPDFConverter = (*sofficeConverter)(nil)

// generatorConfig holds Generator configuration.
type generatorConfig struct {
	timeout        time.Duration
	disableSOffice bool
	disableChrome  bool
}

// Option customizes a Generator.
type Option func(*Generator)

// WithTimeout sets the per-attempt timeout for external converters.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.cfg.timeout = d
		}
	}
}

// WithCommandRunner replaces the subprocess runner, mainly for tests.
func WithCommandRunner(r CommandRunner) Option {
	return func(g *Generator) { g.runner = r }
}

// WithoutSOffice skips the LibreOffice conversion attempt.
func WithoutSOffice() Option {
	return func(g *Generator) { g.cfg.disableSOffice = true }
}

// WithoutChrome skips the headless-Chrome conversion attempt.
func WithoutChrome() Option {
	return func(g *Generator) { g.cfg.disableChrome = true }
}

// withSOfficeConverter injects a fake converter in tests.
func withSOfficeConverter(c docxPDFConverter) Option {
	return func(g *Generator) { g.soffice = c }
}

// withChromeConverter injects a fake converter in tests.
func withChromeConverter(c htmlPDFConverter) Option {
	return func(g *Generator) { g.chrome = c }
}

// Generator turns snapshots into Word and PDF documents. PDF output
// walks a conversion chain from highest to lowest fidelity: LibreOffice
// headless, then headless Chrome over the HTML rendering, then the
// direct renderer. The zero value is not usable; construct with New.
type Generator struct {
	cfg     generatorConfig
	runner  CommandRunner
	soffice docxPDFConverter
	chrome  htmlPDFConverter
}

// New creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Generator {
	g := &Generator{
		cfg:    generatorConfig{timeout: defaultTimeout},
		runner: &ExecRunner{},
	}
	for _, opt := range opts {
		opt(g)
	}

	// Create converters if not injected (e.g., by tests)
	if g.soffice == nil {
		g.soffice = newSofficeConverter(g.runner)
	}
	if g.chrome == nil {
		g.chrome = newChromeConverter(g.cfg.timeout)
	}
	return g
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.chrome != nil {
		return g.chrome.Close()
	}
	return nil
}

// Sections assembles the snapshot without writing any output.
func (g *Generator) Sections(snap *Snapshot) ([]Section, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return Assemble(snap), nil
}

// GenerateDOCX assembles the snapshot and writes a Word document.
func (g *Generator) GenerateDOCX(ctx context.Context, snap *Snapshot, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WriteDocx(snap, path)
}

// GenerateHTML assembles the snapshot and writes the standalone HTML
// rendering, mainly useful for debugging the formatting.
func (g *Generator) GenerateHTML(ctx context.Context, snap *Snapshot, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return err
	}
	if path == "" {
		return ErrEmptyOutputPath
	}
	content := RenderHTML(documentTitle(snap), Assemble(snap))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	return nil
}

// PDFResult reports which conversion method produced the output and
// the diagnostics accumulated from the methods that failed before it.
type PDFResult struct {
	Method      string
	Diagnostics []string
}

// GeneratePDF assembles the snapshot and writes a PDF, walking the
// conversion chain until one method succeeds. Diagnostics from failed
// attempts are reported alongside the successful method; if every
// method fails they are joined into the returned error.
func (g *Generator) GeneratePDF(ctx context.Context, snap *Snapshot, path string) (*PDFResult, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	if path == "" {
		return nil, ErrEmptyOutputPath
	}

	sections := Assemble(snap)
	var diags []string

	// Method 1: LibreOffice over a temporary Word document.
	if !g.cfg.disableSOffice {
		if err := g.convertViaSOffice(ctx, sections, path); err != nil {
			diags = append(diags, fmt.Sprintf("LibreOffice conversion failed: %v", err))
		} else {
			return &PDFResult{Method: "libreoffice", Diagnostics: diags}, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Method 2: headless Chrome over the HTML rendering.
	if !g.cfg.disableChrome {
		if err := g.convertViaChrome(ctx, snap, sections, path); err != nil {
			diags = append(diags, fmt.Sprintf("browser conversion failed: %v", err))
		} else {
			return &PDFResult{Method: "chrome", Diagnostics: diags}, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Method 3: direct rendering, always available.
	if err := writePDFBytes(path, func() ([]byte, error) { return RenderPDF(sections) }); err != nil {
		diags = append(diags, fmt.Sprintf("direct rendering failed: %v", err))
	} else {
		return &PDFResult{Method: "direct", Diagnostics: diags}, nil
	}

	// Last resort: the degraded basic document.
	if err := writePDFBytes(path, func() ([]byte, error) { return RenderBasicPDF(snap) }); err != nil {
		diags = append(diags, fmt.Sprintf("basic rendering failed: %v", err))
	} else {
		return &PDFResult{Method: "basic", Diagnostics: diags}, nil
	}

	_ = os.Remove(path)
	return nil, fmt.Errorf("%w: %s", ErrPDFConversion, strings.Join(diags, "; "))
}

// convertViaSOffice writes a temporary DOCX and hands it to LibreOffice.
func (g *Generator) convertViaSOffice(ctx context.Context, sections []Section, pdfPath string) error {
	doc, err := BuildDocument(sections)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "syllabus-*.docx")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	docxPath := tmp.Name()
	defer func() { _ = os.Remove(docxPath) }()

	if err := doc.Save(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrDocxGeneration, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	cctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()
	return g.soffice.Convert(cctx, docxPath, pdfPath)
}

// convertViaChrome prints the HTML rendering to PDF in headless Chrome.
func (g *Generator) convertViaChrome(ctx context.Context, snap *Snapshot, sections []Section, pdfPath string) error {
	cctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	pdfBytes, err := g.chrome.ToPDF(cctx, RenderHTML(documentTitle(snap), sections))
	if err != nil {
		return err
	}
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func writePDFBytes(path string, render func() ([]byte, error)) error {
	pdfBytes, err := render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func documentTitle(snap *Snapshot) string {
	return fmt.Sprintf("%s: %s", snap.Course.Number, snap.Course.Title)
}
