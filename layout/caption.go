package layout

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/folio/model"
)

var (
	figureCaptionRe = regexp.MustCompile(`(?i)^(figure|fig\.?)\s*(\d+)[.:]?`)
	tableCaptionRe  = regexp.MustCompile(`(?i)^(table|tab\.?)\s*(\d+)[.:]?`)
)

// CaptionDetector finds figure and table captions among a page's text blocks.
type CaptionDetector struct{}

// NewCaptionDetector creates a new caption detector.
func NewCaptionDetector() *CaptionDetector {
	return &CaptionDetector{}
}

// DetectCaptions returns the captions on a page in document scan order.
// A text block is a caption when its flattened text starts with a
// "Figure N" or "Table N" numbering pattern.
func (d *CaptionDetector) DetectCaptions(page *model.Page) []model.Caption {
	var captions []model.Caption

	for _, block := range page.TextBlocks {
		text := normalizeCaptionText(block.Text())
		if text == "" {
			continue
		}

		if m := figureCaptionRe.FindStringSubmatch(text); m != nil {
			captions = append(captions, model.Caption{
				Text:   text,
				Rect:   block.Rect,
				Kind:   model.CaptionFigure,
				Number: parseCaptionNumber(m[2]),
			})
			continue
		}

		if m := tableCaptionRe.FindStringSubmatch(text); m != nil {
			captions = append(captions, model.Caption{
				Text:   text,
				Rect:   block.Rect,
				Kind:   model.CaptionTable,
				Number: parseCaptionNumber(m[2]),
			})
		}
	}

	return captions
}

// FigureCaptions filters captions to figure kind, preserving order.
func FigureCaptions(captions []model.Caption) []model.Caption {
	var out []model.Caption
	for _, c := range captions {
		if c.Kind == model.CaptionFigure {
			out = append(out, c)
		}
	}
	return out
}

// normalizeCaptionText folds compatibility forms so ligatures produced by PDF
// text extraction ("ﬁgure") match the ASCII caption patterns.
func normalizeCaptionText(text string) string {
	return strings.TrimSpace(norm.NFKC.String(text))
}

func parseCaptionNumber(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
