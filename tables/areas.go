package tables

import (
	"fmt"
	"math"

	"github.com/tsawler/folio/model"
)

// Region labels where a search area sits relative to the anchoring caption.
type Region int

const (
	// RegionAbove covers the page from the top margin to just above the
	// caption top.
	RegionAbove Region = iota
	// RegionBelow covers the page from just below the caption bottom to the
	// page bottom.
	RegionBelow
	// RegionFull covers the whole page, slightly inset.
	RegionFull
)

func (r Region) String() string {
	switch r {
	case RegionAbove:
		return "above"
	case RegionBelow:
		return "below"
	case RegionFull:
		return "full"
	default:
		return "unknown"
	}
}

// Area is a search rectangle descriptor in the numeric form handed to a
// detection engine. Because engines document a bottom-left vertical origin
// but producer PDFs are not consistently laid out, each region is tried both
// with the origin conversion applied (Flipped) and passed through unchanged.
type Area struct {
	X0, Y0, X1, Y1 float64
	Flipped        bool // Y converted to a bottom-left origin
	Region         Region
}

// String renders the area the way attempt diagnostics record it.
func (a Area) String() string {
	return fmt.Sprintf("%s/%g,%g,%g,%g", a.Region, a.X0, a.Y0, a.X1, a.Y1)
}

// LayoutRect converts the area back to the top-left-origin layout convention
// of the page, normalizing edge order. Engines working on layout coordinates
// use this to select page content.
func (a Area) LayoutRect(pageHeight float64) model.Rect {
	if a.Flipped {
		return model.NewRect(a.X0, pageHeight-a.Y1, a.X1, pageHeight-a.Y0)
	}
	return model.NewRect(a.X0, a.Y0, a.X1, a.Y1)
}

// AreasFromCaption derives the four candidate search areas for a table
// caption: the above and below regions, each in both vertical-origin
// conventions. The fixed output order is above-flipped, above-unflipped,
// below-flipped, below-unflipped. All coordinates are clipped to the page.
func AreasFromCaption(caption model.Rect, pageW, pageH, pad float64) []Area {
	// Regions in layout coordinates (top-left origin, y down).
	above := model.Rect{
		X0: clamp(pad, 0, pageW),
		Y0: clamp(pad, 0, pageH),
		X1: clamp(pageW-pad, 0, pageW),
		Y1: clamp(caption.Y0-pad, 0, pageH),
	}
	below := model.Rect{
		X0: clamp(pad, 0, pageW),
		Y0: clamp(caption.Y1+pad, 0, pageH),
		X1: clamp(pageW-pad, 0, pageW),
		Y1: clamp(pageH-pad, 0, pageH),
	}

	return []Area{
		flipArea(above, RegionAbove, pageH),
		passArea(above, RegionAbove),
		flipArea(below, RegionBelow, pageH),
		passArea(below, RegionBelow),
	}
}

// FullPageAreas returns the two inset full-page fallback variants: the
// layout rectangle as-is and its vertical mirror, covering engines with
// either origin convention.
func FullPageAreas(pageW, pageH, inset float64) []Area {
	return []Area{
		{X0: inset, Y0: inset, X1: pageW - inset, Y1: pageH - inset, Region: RegionFull},
		{X0: inset, Y0: pageH - inset, X1: pageW - inset, Y1: inset, Flipped: true, Region: RegionFull},
	}
}

// flipArea converts a layout rectangle to a bottom-left origin: y' = H - y.
// The edge roles swap, so the converted Y0 comes from the layout bottom.
func flipArea(r model.Rect, region Region, pageH float64) Area {
	return Area{
		X0:      r.X0,
		Y0:      pageH - r.Y1,
		X1:      r.X1,
		Y1:      pageH - r.Y0,
		Flipped: true,
		Region:  region,
	}
}

// passArea keeps the layout rectangle unchanged, the defensive fallback for
// producer PDFs with inconsistent geometry.
func passArea(r model.Rect, region Region) Area {
	return Area{
		X0:     r.X0,
		Y0:     r.Y0,
		X1:     r.X1,
		Y1:     r.Y1,
		Region: region,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
