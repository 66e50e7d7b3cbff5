package syllabus

import (
	"regexp"
	"strings"
)

// SpanKind identifies how a run of text is rendered by the sinks.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanBold
	SpanItalic
	SpanHyperlink
)

// Span is a contiguous run of text carrying exactly one style.
// URL is set only for SpanHyperlink.
type Span struct {
	Kind SpanKind
	Text string
	URL  string
}

// Precompiled patterns for inline markup and autolink detection.
// Bold is checked before italic so ** pairs are never consumed as two
// italic markers; all delimiter matches are non-greedy. Unbalanced
// delimiters simply fail to match and pass through as literal text.
var (
	inlinePattern = regexp.MustCompile(`\*\*.*?\*\*|\*.*?\*|\[.*?\]\(.*?\)`)
	urlPattern    = regexp.MustCompile(`https?://[^\s'"<>]+[^\s'"<>.,;:]`)
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// RenderMarkup converts a free-text field into an ordered span sequence.
// Supported forms: **bold**, *italic*, [label](url). Text outside the
// explicit forms is scanned for bare URLs and email addresses, which
// become hyperlink spans; everything else stays plain. The renderer
// never fails: unparseable fragments are emitted as literal text.
func RenderMarkup(text string) []Span {
	if text == "" {
		return nil
	}

	var spans []Span
	last := 0
	for _, loc := range inlinePattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, autoLinkSpans(text[last:loc[0]])...)
		}
		spans = append(spans, classifyMatch(text[loc[0]:loc[1]])...)
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, autoLinkSpans(text[last:])...)
	}
	return spans
}

// classifyMatch converts one tokenizer match into spans.
func classifyMatch(part string) []Span {
	switch {
	case strings.HasPrefix(part, "**") && strings.HasSuffix(part, "**") && len(part) >= 4:
		return []Span{{Kind: SpanBold, Text: part[2 : len(part)-2]}}
	case strings.HasPrefix(part, "*") && strings.HasSuffix(part, "*") && len(part) >= 2:
		return []Span{{Kind: SpanItalic, Text: part[1 : len(part)-1]}}
	case strings.HasPrefix(part, "["):
		i := strings.Index(part, "](")
		if i >= 0 && strings.HasSuffix(part, ")") {
			return []Span{{Kind: SpanHyperlink, Text: part[1:i], URL: part[i+2 : len(part)-1]}}
		}
	}
	return []Span{{Kind: SpanPlain, Text: part}}
}

// autoLinkSpans splits plain text into plain and hyperlink spans.
// URLs are extracted first, then email addresses within the remaining
// fragments (as mailto links). Whitespace between fragments survives.
func autoLinkSpans(text string) []Span {
	var spans []Span
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, emailSpans(text[last:loc[0]])...)
		}
		u := text[loc[0]:loc[1]]
		spans = append(spans, Span{Kind: SpanHyperlink, Text: u, URL: u})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, emailSpans(text[last:])...)
	}
	return spans
}

// emailSpans splits text into plain and mailto hyperlink spans.
func emailSpans(text string) []Span {
	var spans []Span
	last := 0
	for _, loc := range emailPattern.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			spans = append(spans, Span{Kind: SpanPlain, Text: text[last:loc[0]]})
		}
		addr := text[loc[0]:loc[1]]
		spans = append(spans, Span{Kind: SpanHyperlink, Text: addr, URL: "mailto:" + addr})
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Kind: SpanPlain, Text: text[last:]})
	}
	return spans
}

// PlainText flattens spans back to their visible text, dropping styling.
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
