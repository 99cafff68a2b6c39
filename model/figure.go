package model

// CaptionKind distinguishes figure captions from table captions.
type CaptionKind int

const (
	CaptionFigure CaptionKind = iota
	CaptionTable
)

func (ck CaptionKind) String() string {
	switch ck {
	case CaptionFigure:
		return "figure"
	case CaptionTable:
		return "table"
	default:
		return "unknown"
	}
}

// Caption is a text block whose content matches a "Figure N" or "Table N"
// numbering pattern.
type Caption struct {
	Text   string
	Rect   Rect
	Kind   CaptionKind
	Number int
}

// Figure is a group of image blocks anchored to a caption, or a single
// leftover block retained without one.
type Figure struct {
	PageNumber int
	Rect       Rect   // Union of the part rectangles
	Caption    string // Empty for leftover figures
	Path       string // Representative asset path, empty when unresolved

	// Parts holds the constituent image blocks in document scan order.
	// Across a page, every image block belongs to exactly one figure.
	Parts []ImageBlock
}

// HasCaption reports whether the figure was anchored to a caption.
func (f *Figure) HasCaption() bool {
	return f.Caption != ""
}
