package syllabus

import (
	"fmt"
	"html"
	"strings"
)

// documentCSS styles the HTML rendering to mirror the Word output:
// serif body, bordered grid tables, blue underlined links.
const documentCSS = `body {
  font-family: "Times New Roman", Georgia, serif;
  font-size: 12pt;
  line-height: 1.4;
  margin: 0;
  color: #000;
}
h1.doc-title { font-size: 20pt; text-align: center; margin-bottom: 0.2em; }
h1 { font-size: 16pt; margin-top: 1em; }
h2 { font-size: 13pt; margin-top: 0.8em; }
p { margin: 0.4em 0; }
p.center { text-align: center; }
p.compact { margin: 0; }
a { color: #0000FF; text-decoration: underline; }
table { border-collapse: collapse; width: 100%; margin: 0.6em 0; }
th, td { border: 1px solid #000; padding: 4px 6px; vertical-align: top; font-size: 10.5pt; }
th { font-weight: bold; text-align: left; }`

// RenderHTML converts the section list into a standalone HTML5 document
// with embedded styling, suitable for printing to PDF in a browser.
func RenderHTML(title string, sections []Section) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>\n" + documentCSS + "\n</style>\n</head>\n<body>\n")

	for _, s := range sections {
		switch sec := s.(type) {
		case Heading:
			writeHTMLHeading(&b, sec)
		case Paragraph:
			writeHTMLParagraph(&b, sec)
		case Table:
			writeHTMLTable(&b, sec)
		}
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeHTMLHeading(b *strings.Builder, h Heading) {
	switch h.Level {
	case 0:
		fmt.Fprintf(b, "<h1 class=\"doc-title\">%s</h1>\n", html.EscapeString(h.Text))
	case 1:
		fmt.Fprintf(b, "<h1>%s</h1>\n", html.EscapeString(h.Text))
	default:
		fmt.Fprintf(b, "<h2>%s</h2>\n", html.EscapeString(h.Text))
	}
}

func writeHTMLParagraph(b *strings.Builder, p Paragraph) {
	var classes []string
	if p.Align == AlignCenter {
		classes = append(classes, "center")
	}
	if p.Compact {
		classes = append(classes, "compact")
	}

	b.WriteString("<p")
	if len(classes) > 0 {
		fmt.Fprintf(b, " class=%q", strings.Join(classes, " "))
	}
	if p.Indent > 0 {
		fmt.Fprintf(b, " style=\"margin-left: %.2fin\"", float64(p.Indent)*0.25)
	}
	b.WriteString(">")

	if len(p.Spans) == 0 {
		b.WriteString("&nbsp;")
	}
	for _, span := range p.Spans {
		b.WriteString(spanHTML(span))
	}
	b.WriteString("</p>\n")
}

// spanHTML renders one span, escaping content and converting embedded
// newlines to <br> tags.
func spanHTML(span Span) string {
	text := strings.ReplaceAll(html.EscapeString(span.Text), "\n", "<br>")
	switch span.Kind {
	case SpanBold:
		return "<strong>" + text + "</strong>"
	case SpanItalic:
		return "<em>" + text + "</em>"
	case SpanHyperlink:
		return fmt.Sprintf("<a href=%q>%s</a>", span.URL, text)
	default:
		return text
	}
}

func writeHTMLTable(b *strings.Builder, t Table) {
	b.WriteString("<table>\n<tr>")
	for _, title := range t.Header {
		fmt.Fprintf(b, "<th>%s</th>", html.EscapeString(title))
	}
	b.WriteString("</tr>\n")

	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			for _, span := range cell {
				b.WriteString(spanHTML(span))
			}
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}
