package syllabus

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/avolette/go-syllabus/internal/fileutil"
)

// htmlPDFConverter abstracts HTML to PDF conversion to allow different backends.
type htmlPDFConverter interface {
	ToPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// htmlPDFRenderer abstracts PDF rendering from an HTML file to enable
// testing without a browser.
type htmlPDFRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
}

// Compile-time interface checks
var (
	_ htmlPDFConverter = (*chromeConverter)(nil)
	_ htmlPDFRenderer  = (*chromeRenderer)(nil)
)

// Print geometry in inches (US Letter).
const (
	printPaperWidth   = 8.5
	printPaperHeight  = 11
	printMargin       = 0.5
	printMarginBottom = 0.75 // extra space for the page-number footer
)

// printFooterTemplate is Chrome's native footer: a centered page number
// matching the Word sink's footer.
const printFooterTemplate = `<div style="font-size: 10px; font-family: 'Times New Roman', serif; width: 100%; text-align: center;">Page <span class="pageNumber"></span></div>`

// chromeRenderer implements htmlPDFRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type chromeRenderer struct {
	browser *rod.Browser
	timeout time.Duration
}

func newChromeRenderer(timeout time.Duration) *chromeRenderer {
	return &chromeRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *chromeRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *chromeRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderFromFile opens a local HTML file in headless Chrome and prints
// it to PDF. Returns explicit errors instead of panicking when browser
// operations fail.
func (r *chromeRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// printOptions builds the Letter-format print settings with the
// page-number footer enabled.
func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:          floatPtr(printPaperWidth),
		PaperHeight:         floatPtr(printPaperHeight),
		MarginTop:           floatPtr(printMargin),
		MarginBottom:        floatPtr(printMarginBottom),
		MarginLeft:          floatPtr(printMargin),
		MarginRight:         floatPtr(printMargin),
		PrintBackground:     true,
		DisplayHeaderFooter: true,
		HeaderTemplate:      "<span></span>",
		FooterTemplate:      printFooterTemplate,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// chromeConverter converts HTML to PDF using headless Chrome via go-rod.
type chromeConverter struct {
	renderer *chromeRenderer
}

func newChromeConverter(timeout time.Duration) *chromeConverter {
	return &chromeConverter{renderer: newChromeRenderer(timeout)}
}

// ToPDF writes the HTML to a temp file and prints it through the renderer.
func (c *chromeConverter) ToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath)
}

// Close releases browser resources.
func (c *chromeConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
