package layout

import (
	"log/slog"

	"github.com/tsawler/folio/assets"
	"github.com/tsawler/folio/internal/logging"
	"github.com/tsawler/folio/model"
)

// GrouperConfig holds figure grouping parameters.
type GrouperConfig struct {
	// MinImageArea is the minimum area (points squared) for a layout image
	// block to participate in grouping.
	MinImageArea float64

	// MinCaptionOverlap is the minimum horizontal overlap between a block
	// and a caption, as a fraction of the caption width.
	MinCaptionOverlap float64

	// MaxVerticalGap is the maximum gap (points) between a block's bottom
	// edge and the caption's top edge.
	MaxVerticalGap float64

	// WidthTolerance is the maximum relative width difference between a
	// block and its caption.
	WidthTolerance float64

	// RasterFallback enables rasterizing a figure's union box when no part
	// has an exported bitmap asset.
	RasterFallback bool

	// RasterDPI is the resolution for rasterized crops.
	RasterDPI float64
}

// DefaultGrouperConfig returns the default grouping parameters.
func DefaultGrouperConfig() GrouperConfig {
	return GrouperConfig{
		MinImageArea:      80 * 80,
		MinCaptionOverlap: 0.35,
		MaxVerticalGap:    60.0,
		WidthTolerance:    0.30,
		RasterFallback:    true,
		RasterDPI:         220,
	}
}

// FigureStats summarizes figure grouping for one page.
type FigureStats struct {
	LayoutBlocks   int // Image blocks that passed the area filter
	AssetsFound    int // Distinct content bitmap assets on the page
	AssetsExported int // Assets exported successfully
	Figures        int // Figures emitted (captioned + leftovers)
	WithCaption    int // Figures anchored to a caption
	Leftovers      int // Singleton figures without a caption
}

// Grouper associates layout image blocks with captions to produce figures.
type Grouper struct {
	config   GrouperConfig
	exporter *assets.Exporter
	raster   assets.Rasterizer
	log      *slog.Logger
}

// NewGrouper creates a grouper with default configuration. The rasterizer
// may be nil, which disables the raster fallback.
func NewGrouper(exporter *assets.Exporter, raster assets.Rasterizer) *Grouper {
	return NewGrouperWithConfig(exporter, raster, DefaultGrouperConfig())
}

// NewGrouperWithConfig creates a grouper with custom configuration.
func NewGrouperWithConfig(exporter *assets.Exporter, raster assets.Rasterizer, config GrouperConfig) *Grouper {
	return &Grouper{
		config:   config,
		exporter: exporter,
		raster:   raster,
		log:      logging.Get("layout"),
	}
}

// Group partitions the page's image blocks into figures anchored to the given
// captions, in document scan order. Blocks not claimed by any caption are
// emitted as singleton leftover figures. Each block lands in exactly one
// figure's parts list.
func (g *Grouper) Group(page *model.Page, captions []model.Caption) ([]model.Figure, FigureStats) {
	var stats FigureStats

	// Export distinct content bitmaps first so blocks can resolve to paths.
	paths := g.exporter.ExportPageImages(page)
	stats.AssetsFound = len(paths)
	for _, p := range paths {
		if p != "" {
			stats.AssetsExported++
		}
	}

	blocks := g.collectBlocks(page, paths)
	stats.LayoutBlocks = len(blocks)

	var figures []model.Figure
	assigned := make([]bool, len(blocks))

	// Greedy first-caption-wins assignment in document scan order. A block
	// taken by an earlier caption is unavailable to later ones.
	for _, caption := range FigureCaptions(captions) {
		candidates := g.candidatesFor(caption, blocks, assigned)
		if len(candidates) == 0 {
			// A caption with no nearby image blocks produces no figure.
			continue
		}

		union := blocks[candidates[0]].Rect
		for _, idx := range candidates[1:] {
			union = union.Union(blocks[idx].Rect)
		}

		parts := make([]model.ImageBlock, 0, len(candidates))
		for _, idx := range candidates {
			parts = append(parts, blocks[idx])
			assigned[idx] = true
		}

		fig := model.Figure{
			PageNumber: page.Number,
			Rect:       union,
			Caption:    caption.Text,
			Parts:      parts,
		}
		fig.Path = g.resolvePath(page, parts, union, g.exporter.FigurePath(page.Number, len(figures)+1))
		figures = append(figures, fig)
		stats.WithCaption++
	}

	// Leftovers: unassigned blocks become singleton uncaptioned figures.
	for i, block := range blocks {
		if assigned[i] {
			continue
		}
		fig := model.Figure{
			PageNumber: page.Number,
			Rect:       block.Rect,
			Parts:      []model.ImageBlock{block},
		}
		fig.Path = g.resolvePath(page, fig.Parts, block.Rect, g.exporter.LeftoverPath(page.Number, i+1))
		figures = append(figures, fig)
		stats.Leftovers++
	}

	stats.Figures = len(figures)
	return figures, stats
}

// collectBlocks filters the page's image blocks by minimum area and resolves
// exported asset paths.
func (g *Grouper) collectBlocks(page *model.Page, paths map[int]string) []model.ImageBlock {
	var blocks []model.ImageBlock
	for _, block := range page.ImageBlocks {
		if block.Rect.Area() < g.config.MinImageArea {
			continue
		}
		if block.AssetID != 0 {
			block.Path = paths[block.AssetID]
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// candidatesFor returns the indices of unassigned blocks that satisfy all
// spatial rules for the caption, in scan order.
func (g *Grouper) candidatesFor(caption model.Caption, blocks []model.ImageBlock, assigned []bool) []int {
	capW := caption.Rect.Width()
	if capW <= 0 {
		capW = 1e-6
	}

	var candidates []int
	for idx, block := range blocks {
		if assigned[idx] {
			continue
		}

		// The caption sits below the figure: the block must end above it.
		if block.Rect.Y1 > caption.Rect.Y0 {
			continue
		}

		// Sufficient horizontal overlap with the caption width.
		if block.Rect.HorizontalOverlap(caption.Rect)/capW < g.config.MinCaptionOverlap {
			continue
		}

		// Vertical proximity.
		gap := caption.Rect.Y0 - block.Rect.Y1
		if gap < 0 || gap > g.config.MaxVerticalGap {
			continue
		}

		// Width similarity.
		diff := block.Rect.Width() - capW
		if diff < 0 {
			diff = -diff
		}
		if diff/capW > g.config.WidthTolerance {
			continue
		}

		candidates = append(candidates, idx)
	}

	return candidates
}

// resolvePath picks a representative asset path for a figure: the first part
// with an exported bitmap, otherwise a rasterized crop of the given rect.
// When both are unavailable the path stays empty.
func (g *Grouper) resolvePath(page *model.Page, parts []model.ImageBlock, rect model.Rect, cropPath string) string {
	for _, part := range parts {
		if part.Path != "" {
			return part.Path
		}
	}

	if !g.config.RasterFallback || g.raster == nil {
		return ""
	}

	safe, ok := assets.SafeRect(page, rect)
	if !ok {
		// Degenerate geometry after clipping: skip silently.
		return ""
	}

	if err := g.exporter.RasterizeCrop(g.raster, page, safe, g.config.RasterDPI, cropPath); err != nil {
		g.log.Warn("raster fallback failed",
			"page", page.Number, "crop", cropPath, "error", err)
		return ""
	}
	return cropPath
}
