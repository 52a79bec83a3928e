package format

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/komainu/pkg/domain/model/message"
)

var (
	chunkSplitPattern   = regexp.MustCompile(`\n\s*\n`)
	bulletLinePattern   = regexp.MustCompile(`^[-*•]\s`)
	bulletMarkerPattern = regexp.MustCompile(`^[-*•]\s+`)
	numberLinePattern   = regexp.MustCompile(`^\d+\.\s`)
	numberMarkerPattern = regexp.MustCompile(`^\d+\.\s+`)
)

// Format converts model output text into a renderable block tree. It is a
// pure function: same input, same tree, no side effects. Malformed markup
// never fails; it degrades to plain text.
func Format(content string) []message.Block {
	var blocks []message.Block
	for _, chunk := range chunkSplitPattern.Split(content, -1) {
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}

		// Classification priority: bulleted list, numbered list, code
		// fence, plain paragraph. First match wins.
		switch {
		case hasLineMatching(chunk, bulletLinePattern):
			blocks = append(blocks, listBlocks(chunk, false)...)
		case hasLineMatching(chunk, numberLinePattern):
			blocks = append(blocks, listBlocks(chunk, true)...)
		case strings.Contains(chunk, "```"):
			blocks = append(blocks, codeBlocks(chunk)...)
		default:
			blocks = append(blocks, paragraph(trimmed))
		}
	}
	return blocks
}

func hasLineMatching(chunk string, pattern *regexp.Regexp) bool {
	for _, line := range strings.Split(chunk, "\n") {
		if pattern.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

func paragraph(text string) message.Block {
	return message.Block{
		Type:  message.BlockParagraph,
		Spans: ParseInline(text),
	}
}

// listBlocks renders a chunk containing list markers. Marker lines become
// list items; any other non-blank lines are joined into a single leading
// paragraph placed before the list. Numbered items are relabeled
// sequentially from 1, whatever digits the source used.
func listBlocks(chunk string, numbered bool) []message.Block {
	linePattern, markerPattern := bulletLinePattern, bulletMarkerPattern
	if numbered {
		linePattern, markerPattern = numberLinePattern, numberMarkerPattern
	}

	var lead []string
	var items []message.ListItem
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !linePattern.MatchString(line) {
			lead = append(lead, line)
			continue
		}
		item := message.ListItem{
			Spans: ParseInline(markerPattern.ReplaceAllString(line, "")),
		}
		if numbered {
			item.Number = len(items) + 1
		}
		items = append(items, item)
	}

	listType := message.BlockBulletList
	if numbered {
		listType = message.BlockNumberedList
	}

	var blocks []message.Block
	if len(lead) > 0 {
		blocks = append(blocks, paragraph(strings.Join(lead, " ")))
	}
	return append(blocks, message.Block{Type: listType, Items: items})
}

// codeBlocks renders a chunk containing triple-backtick fences. Splitting
// on the fences, odd segments are code (first line is an optional language
// tag) and even segments are ordinary text. An unterminated trailing fence
// still yields a code block.
func codeBlocks(chunk string) []message.Block {
	var blocks []message.Block
	for i, segment := range strings.Split(chunk, "```") {
		if i%2 == 0 {
			text := strings.TrimSpace(segment)
			if text == "" {
				continue
			}
			blocks = append(blocks, paragraph(text))
			continue
		}

		lang, body := splitCodeSegment(segment)
		blocks = append(blocks, message.Block{
			Type: message.BlockCode,
			Lang: lang,
			Code: body,
		})
	}
	return blocks
}

func splitCodeSegment(segment string) (lang, body string) {
	idx := strings.Index(segment, "\n")
	if idx < 0 {
		return strings.TrimSpace(segment), ""
	}
	// Internal newlines are preserved verbatim; only the newline that
	// precedes the closing fence is dropped.
	return strings.TrimSpace(segment[:idx]), strings.TrimSuffix(segment[idx+1:], "\n")
}
