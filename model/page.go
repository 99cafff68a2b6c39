package model

import "strings"

// TextSpan is a run of text sharing one position, the leaf of the text
// layout hierarchy.
type TextSpan struct {
	Text string
	Rect Rect
}

// TextLine is a single line of text made up of spans.
type TextLine struct {
	Spans []TextSpan
	Rect  Rect
}

// Text concatenates the span texts of the line.
func (l TextLine) Text() string {
	var sb strings.Builder
	for _, span := range l.Spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// TextBlock is a block of text made up of lines.
type TextBlock struct {
	Lines []TextLine
	Rect  Rect
}

// Text flattens the block hierarchy: span texts are concatenated per line,
// lines are joined with newlines, and surrounding whitespace is trimmed.
func (b TextBlock) Text() string {
	lines := make([]string, 0, len(b.Lines))
	for _, line := range b.Lines {
		if t := line.Text(); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// EmbeddedImage is a raw bitmap asset embedded in the page resources.
type EmbeddedImage struct {
	ID       int    // Asset identity within the page (XObject reference)
	SoftMask bool   // Soft masks are transparency data, not content images
	Data     []byte // Raw encoded payload
}

// ImageBlock is a vector layout block that places a bitmap on the page.
// A block may reference an embedded asset by ID; when the asset was exported
// successfully, Path holds the exported file. Blocks are ephemeral and built
// fresh per page.
type ImageBlock struct {
	Rect    Rect
	AssetID int    // 0 when the block carries no asset identity
	Path    string // Resolved asset path, empty when unavailable
}

// Page is the per-page input to layout grouping. It is assembled once from a
// layout provider and treated as read-only during processing.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points

	TextBlocks  []TextBlock
	ImageBlocks []ImageBlock
	Images      []EmbeddedImage
	Rules       []Rule
}

// Bounds returns the page rectangle.
func (p *Page) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: p.Width, Y1: p.Height}
}

// Spans flattens the text hierarchy into positioned spans in document scan
// order. Table detection consumes spans rather than blocks.
func (p *Page) Spans() []TextSpan {
	var spans []TextSpan
	for _, block := range p.TextBlocks {
		for _, line := range block.Lines {
			spans = append(spans, line.Spans...)
		}
	}
	return spans
}
