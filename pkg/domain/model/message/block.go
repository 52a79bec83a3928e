package message

// BlockType represents the kind of a top-level display block
type BlockType string

const (
	BlockParagraph    BlockType = "paragraph"
	BlockBulletList   BlockType = "bullet_list"
	BlockNumberedList BlockType = "numbered_list"
	BlockCode         BlockType = "code"
)

// SpanType represents the kind of an inline span within a text block
type SpanType string

const (
	SpanText   SpanType = "text"
	SpanBold   SpanType = "bold"
	SpanItalic SpanType = "italic"
	SpanCode   SpanType = "code"
	SpanLink   SpanType = "link"
)

// Span is a run of inline text with a single style applied
type Span struct {
	Type SpanType `json:"type"`
	Text string   `json:"text"`
	URL  string   `json:"url,omitempty"`
}

// ListItem is a single entry of a bulleted or numbered list. Number is set
// only for numbered lists and is always sequential from 1, regardless of
// the digits in the source text.
type ListItem struct {
	Number int    `json:"number,omitempty"`
	Spans  []Span `json:"spans"`
}

// Block is one node of the renderable block tree produced from message
// content. Exactly one of Spans, Items or Code is populated depending on
// Type.
type Block struct {
	Type  BlockType  `json:"type"`
	Spans []Span     `json:"spans,omitempty"`
	Items []ListItem `json:"items,omitempty"`
	Lang  string     `json:"lang,omitempty"`
	Code  string     `json:"code,omitempty"`
}
