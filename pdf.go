package syllabus

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry in points (US Letter).
const (
	pdfMargin     = 54.0 // 0.75 inch
	pdfLineHeight = 14.0
	pdfCellPad    = 3.0
	pdfFont       = "Helvetica"
)

// Body and heading font sizes by heading level.
var pdfHeadingSizes = map[int]float64{
	0: 18,
	1: 14,
	2: 12,
}

// RenderPDF materializes the section list into a paginated PDF with a
// centered page-number footer. This is the direct renderer used both
// standalone and as the last link of the conversion chain.
func RenderPDF(sections []Section) ([]byte, error) {
	pdf := newLetterPDF()
	pdf.AddPage()

	r := &pdfRendererState{pdf: pdf}
	for _, s := range sections {
		switch sec := s.(type) {
		case Heading:
			r.heading(sec)
		case Paragraph:
			r.paragraph(sec)
		case Table:
			r.table(sec)
		}
	}
	return pdfBytes(pdf)
}

// RenderBasicPDF produces the degraded fallback document: title,
// key-value info lines, the description, and a formatting note. It is
// used when every richer conversion method has failed.
func RenderBasicPDF(snap *Snapshot) ([]byte, error) {
	pdf := newLetterPDF()
	pdf.AddPage()

	pdf.SetFont(pdfFont, "B", 18)
	pdf.MultiCell(0, 22, fmt.Sprintf("%s - %s", snap.Course.Number, snap.Course.Title), "", "C", false)
	pdf.Ln(8)

	pdf.SetFont(pdfFont, "", 11)
	info := []struct{ label, value string }{
		{"Term", snap.Course.Term},
		{"Credits", snap.Course.Credits},
		{"Meeting Times", snap.Course.MeetingTimes},
		{"Location", snap.Course.Location},
		{"Instructor", snap.Instructor.Name},
		{"Email", snap.Instructor.Email},
	}
	for _, item := range info {
		if item.value == "" {
			continue
		}
		pdf.MultiCell(0, pdfLineHeight, fmt.Sprintf("%s: %s", item.label, item.value), "", "L", false)
	}
	pdf.Ln(8)

	if snap.Course.Description != "" {
		pdf.SetFont(pdfFont, "B", 13)
		pdf.MultiCell(0, 16, "Course Description", "", "L", false)
		pdf.SetFont(pdfFont, "", 11)
		pdf.MultiCell(0, pdfLineHeight, snap.Course.Description, "", "L", false)
		pdf.Ln(8)
	}

	pdf.Ln(16)
	pdf.SetFont(pdfFont, "I", 10)
	note := "Note: This PDF was generated using basic formatting. For full formatting, please install " +
		"LibreOffice and export again, or open the Word document export in a word processor and save as PDF."
	pdf.MultiCell(0, 12, note, "", "L", false)

	return pdfBytes(pdf)
}

func newLetterPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+18)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin + 6)
		pdf.SetFont(pdfFont, "", 9)
		pdf.CellFormat(0, 12, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	return pdf
}

func pdfBytes(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

type pdfRendererState struct {
	pdf *fpdf.Fpdf
}

func (r *pdfRendererState) heading(h Heading) {
	size, ok := pdfHeadingSizes[h.Level]
	if !ok {
		size = 12
	}
	r.pdf.Ln(6)
	r.pdf.SetFont(pdfFont, "B", size)
	align := "L"
	if h.Align == AlignCenter {
		align = "C"
	}
	r.pdf.MultiCell(0, size+6, h.Text, "", align, false)
	r.pdf.Ln(2)
}

func (r *pdfRendererState) paragraph(p Paragraph) {
	if len(p.Spans) == 0 {
		r.pdf.Ln(pdfLineHeight / 2)
		return
	}

	left := pdfMargin + float64(p.Indent)*18
	r.pdf.SetLeftMargin(left)
	r.pdf.SetX(left)

	if p.Align == AlignCenter {
		// Styled flow output has no centered mode; flatten to one run.
		r.pdf.SetFont(pdfFont, "", 11)
		r.pdf.MultiCell(0, pdfLineHeight, PlainText(p.Spans), "", "C", false)
	} else {
		for _, span := range p.Spans {
			r.span(span)
		}
		r.pdf.Ln(pdfLineHeight)
	}

	r.pdf.SetLeftMargin(pdfMargin)
	if !p.Compact {
		r.pdf.Ln(4)
	}
}

func (r *pdfRendererState) span(span Span) {
	switch span.Kind {
	case SpanBold:
		r.pdf.SetFont(pdfFont, "B", 11)
		r.pdf.Write(pdfLineHeight, span.Text)
	case SpanItalic:
		r.pdf.SetFont(pdfFont, "I", 11)
		r.pdf.Write(pdfLineHeight, span.Text)
	case SpanHyperlink:
		r.pdf.SetFont(pdfFont, "U", 11)
		r.pdf.SetTextColor(0, 0, 255)
		r.pdf.WriteLinkString(pdfLineHeight, span.Text, span.URL)
		r.pdf.SetTextColor(0, 0, 0)
	default:
		r.pdf.SetFont(pdfFont, "", 11)
		r.pdf.Write(pdfLineHeight, span.Text)
	}
}

func (r *pdfRendererState) table(t Table) {
	pageW, pageH := r.pdf.GetPageSize()
	usable := pageW - 2*pdfMargin
	widths := columnWidths(t, usable)

	r.pdf.Ln(4)
	r.headerRow(t.Header, widths)

	for _, row := range t.Rows {
		lines := make([][]string, len(row))
		maxLines := 1
		for i, cell := range row {
			text := wrapCellText(PlainText(cell))
			lines[i] = r.splitCell(text, widths[i]-2*pdfCellPad)
			if len(lines[i]) > maxLines {
				maxLines = len(lines[i])
			}
		}
		rowH := float64(maxLines)*12 + 2*pdfCellPad

		if r.pdf.GetY()+rowH > pageH-pdfMargin-18 {
			r.pdf.AddPage()
			r.headerRow(t.Header, widths)
		}

		x := pdfMargin
		y := r.pdf.GetY()
		r.pdf.SetFont(pdfFont, "", 10)
		for i := range row {
			r.pdf.Rect(x, y, widths[i], rowH, "D")
			r.pdf.SetXY(x+pdfCellPad, y+pdfCellPad)
			r.pdf.MultiCell(widths[i]-2*pdfCellPad, 12, strings.Join(lines[i], "\n"), "", "L", false)
			x += widths[i]
		}
		r.pdf.SetXY(pdfMargin, y+rowH)
	}
	r.pdf.Ln(8)
}

func (r *pdfRendererState) headerRow(header []string, widths []float64) {
	r.pdf.SetFont(pdfFont, "B", 10)
	for i, title := range header {
		r.pdf.CellFormat(widths[i], 18, title, "1", 0, "L", false, 0, "")
	}
	r.pdf.Ln(-1)
}

// splitCell wraps one cell's text to the given width, preserving
// explicit newlines.
func (r *pdfRendererState) splitCell(text string, width float64) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			out = append(out, "")
			continue
		}
		out = append(out, r.pdf.SplitText(line, width)...)
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// columnWidths distributes the usable width over the table's columns,
// using the assembler's ratio hints when present.
func columnWidths(t Table, usable float64) []float64 {
	n := len(t.Header)
	widths := make([]float64, n)
	if len(t.Widths) == n {
		for i, ratio := range t.Widths {
			widths[i] = usable * ratio
		}
		return widths
	}
	for i := range widths {
		widths[i] = usable / float64(n)
	}
	return widths
}

// wrapCellText inserts soft line breaks at sentence and clause
// boundaries in long unbroken cell content, which the fixed-width table
// layout wraps less gracefully than a word processor would.
func wrapCellText(text string) string {
	if len(text) <= 60 || strings.Contains(text, "\n") {
		return text
	}
	replacer := strings.NewReplacer(". ", ".\n", "; ", ";\n")
	return replacer.Replace(text)
}
