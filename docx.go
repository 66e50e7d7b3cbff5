package syllabus

import (
	"fmt"
	"strings"

	"baliance.com/gooxml/color"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/ofc/sharedTypes"
	"baliance.com/gooxml/schema/soo/wml"
)

// headingStyles maps heading levels to the built-in paragraph styles.
var headingStyles = map[int]string{
	0: "Title",
	1: "Heading1",
	2: "Heading2",
}

// quarter-inch indent step used for contact lines and bullet lists,
// expressed in twentieths of a point.
const indentStepTwips = int64(0.25 * 1440)

// BuildDocument materializes the section list into a Word document with
// a centered "Page N" footer on every page. It never panics: if the
// underlying library faults on malformed content, a minimal empty
// document is returned instead.
func BuildDocument(sections []Section) (doc *document.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = document.New()
			err = fmt.Errorf("%w: %v", ErrDocxGeneration, r)
		}
	}()

	doc = document.New()
	addPageFooter(doc)

	for _, s := range sections {
		switch sec := s.(type) {
		case Heading:
			writeHeading(doc, sec)
		case Paragraph:
			writeParagraph(doc.AddParagraph(), sec)
		case Table:
			writeTable(doc, sec)
		}
	}
	return doc, nil
}

// WriteDocx assembles the snapshot and saves the Word document to path.
func WriteDocx(snap *Snapshot, path string) error {
	if err := snap.Validate(); err != nil {
		return err
	}
	if path == "" {
		return ErrEmptyOutputPath
	}
	doc, err := BuildDocument(Assemble(snap))
	if err != nil {
		return err
	}
	if err := doc.SaveToFile(path); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrDocxGeneration, path, err)
	}
	return nil
}

// addPageFooter attaches a centered "Page N" footer using a PAGE field.
func addPageFooter(doc *document.Document) {
	ftr := doc.AddFooter()
	para := ftr.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcCenter)

	run := para.AddRun()
	run.AddText("Page ")
	run.AddField(document.FieldCurrentPage)

	doc.BodySection().SetFooter(ftr, wml.ST_HdrFtrDefault)
}

func writeHeading(doc *document.Document, h Heading) {
	para := doc.AddParagraph()
	if style, ok := headingStyles[h.Level]; ok {
		para.SetStyle(style)
	} else {
		para.SetStyle("Heading2")
	}
	if h.Align == AlignCenter {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}
	para.AddRun().AddText(h.Text)
}

func writeParagraph(para document.Paragraph, p Paragraph) {
	if p.Align == AlignCenter {
		para.Properties().SetAlignment(wml.ST_JcCenter)
	}
	if p.Indent > 0 {
		setLeftIndent(para, int64(p.Indent)*indentStepTwips)
	}
	if p.Compact {
		setSpacingAfter(para, 0)
	}
	for _, span := range p.Spans {
		writeSpan(para, span)
	}
}

// writeSpan appends one styled run, splitting embedded newlines into
// explicit line breaks.
func writeSpan(para document.Paragraph, span Span) {
	if span.Kind == SpanHyperlink {
		writeHyperlink(para, span)
		return
	}

	run := para.AddRun()
	switch span.Kind {
	case SpanBold:
		run.Properties().SetBold(true)
	case SpanItalic:
		run.Properties().SetItalic(true)
	}
	addTextWithBreaks(run, span.Text)
}

// writeHyperlink renders the span as a real external hyperlink styled
// the traditional way: blue with a single underline.
func writeHyperlink(para document.Paragraph, span Span) {
	hl := para.AddHyperLink()
	hl.SetTarget(span.URL)

	run := hl.AddRun()
	run.Properties().SetStyle("Hyperlink")
	run.Properties().SetColor(color.Blue)
	run.Properties().SetUnderline(wml.ST_UnderlineSingle, color.Blue)
	run.AddText(span.Text)
}

func addTextWithBreaks(run document.Run, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		if line != "" {
			run.AddText(line)
		}
	}
}

func writeTable(doc *document.Document, t Table) {
	tbl := doc.AddTable()
	tbl.Properties().SetWidthPercent(100)
	tbl.Properties().Borders().SetAll(wml.ST_BorderSingle, color.Auto, 0.5*measurement.Point)

	hdr := tbl.AddRow()
	for _, title := range t.Header {
		cell := hdr.AddCell()
		run := cell.AddParagraph().AddRun()
		run.Properties().SetBold(true)
		run.AddText(title)
	}

	for _, row := range t.Rows {
		r := tbl.AddRow()
		for _, cellSpans := range row {
			cell := r.AddCell()
			para := cell.AddParagraph()
			for _, span := range cellSpans {
				writeSpan(para, span)
			}
		}
	}
}

// setLeftIndent sets the paragraph's left indent in twips through the
// underlying schema type; the high-level wrapper exposes no setter for it.
func setLeftIndent(para document.Paragraph, twips int64) {
	props := para.Properties().X()
	if props.Ind == nil {
		props.Ind = wml.NewCT_Ind()
	}
	props.Ind.LeftAttr = &wml.ST_SignedTwipsMeasure{Int64: &twips}
}

// setSpacingAfter removes or adjusts the spacing after a paragraph.
func setSpacingAfter(para document.Paragraph, twips uint64) {
	props := para.Properties().X()
	if props.Spacing == nil {
		props.Spacing = wml.NewCT_Spacing()
	}
	props.Spacing.AfterAttr = &sharedTypes.ST_TwipsMeasure{ST_UnsignedDecimalNumber: &twips}
}
