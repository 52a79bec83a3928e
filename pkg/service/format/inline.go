package format

import (
	"regexp"

	"github.com/m-mizutani/komainu/pkg/domain/model/message"
)

type inlineRule struct {
	pattern *regexp.Regexp
	typ     message.SpanType
}

// Rules apply in this fixed order so that `**` is never partially consumed
// by the italic rule. Each rule is a single non-greedy left-to-right pass,
// and a converted span is never reprocessed by a later rule.
var inlineRules = []inlineRule{
	{regexp.MustCompile(`\*\*(.+?)\*\*`), message.SpanBold},
	{regexp.MustCompile(`\*(.+?)\*`), message.SpanItalic},
	{regexp.MustCompile("`(.+?)`"), message.SpanCode},
	{regexp.MustCompile(`\[(.+?)\]\((.+?)\)`), message.SpanLink},
}

// ParseInline converts a run of text into inline spans, applying bold,
// italic, inline code and link substitution in that order.
func ParseInline(text string) []message.Span {
	spans := []message.Span{{Type: message.SpanText, Text: text}}
	for _, rule := range inlineRules {
		spans = applyInlineRule(spans, rule)
	}
	return spans
}

func applyInlineRule(spans []message.Span, rule inlineRule) []message.Span {
	out := make([]message.Span, 0, len(spans))
	for _, span := range spans {
		if span.Type != message.SpanText {
			out = append(out, span)
			continue
		}

		matches := rule.pattern.FindAllStringSubmatchIndex(span.Text, -1)
		if matches == nil {
			out = append(out, span)
			continue
		}

		last := 0
		for _, m := range matches {
			if m[0] > last {
				out = append(out, message.Span{Type: message.SpanText, Text: span.Text[last:m[0]]})
			}
			converted := message.Span{Type: rule.typ, Text: span.Text[m[2]:m[3]]}
			if rule.typ == message.SpanLink {
				converted.URL = span.Text[m[4]:m[5]]
			}
			out = append(out, converted)
			last = m[1]
		}
		if last < len(span.Text) {
			out = append(out, message.Span{Type: message.SpanText, Text: span.Text[last:]})
		}
	}
	return out
}
