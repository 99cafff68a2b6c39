package assets

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/tsawler/folio/model"
)

// Rasterizer renders a clipped page rectangle to a bitmap at the page's
// natural resolution (one pixel per point). It is implemented by the layout
// provider.
type Rasterizer interface {
	RasterizeRect(pageNum int, clip model.Rect) (image.Image, error)
}

// clipPad is the margin added after clipping so that rounding never produces
// a zero-area crop.
const clipPad = 0.5

// SafeRect intersects a rectangle with the page bounds and pads it slightly,
// keeping the pad within the page. Returns false when the clipped rectangle
// has no positive area; such degenerate geometry is skipped, not an error.
func SafeRect(page *model.Page, r model.Rect) (model.Rect, bool) {
	bounds := page.Bounds()
	clipped := r.Clip(bounds)
	if !clipped.IsValid() {
		return model.Rect{}, false
	}
	return clipped.Pad(clipPad).Clip(bounds), true
}

// RasterizeCrop renders the given page region via the rasterizer, scales it
// to the requested DPI, and writes it as PNG to path. The region must already
// be clipped to page bounds (see SafeRect).
func (e *Exporter) RasterizeCrop(r Rasterizer, page *model.Page, rect model.Rect, dpi float64, path string) error {
	src, err := r.RasterizeRect(page.Number, rect)
	if err != nil {
		return fmt.Errorf("rasterizing crop: %w", err)
	}

	img := scaleToDPI(src, dpi)

	if err := e.ensureDir(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating crop file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding crop PNG: %w", err)
	}
	return nil
}

// scaleToDPI scales a natural-resolution crop (72 dpi, one pixel per point)
// to the target resolution.
func scaleToDPI(src image.Image, dpi float64) image.Image {
	if dpi <= 0 || dpi == 72 {
		return src
	}

	scale := dpi / 72
	sb := src.Bounds()
	w := int(math.Round(float64(sb.Dx()) * scale))
	h := int(math.Round(float64(sb.Dy()) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}
