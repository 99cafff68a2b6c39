package folio

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/folio/assets"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
	"github.com/tsawler/folio/tables"
)

// PageProvider supplies the page-level layout a processor consumes: the text
// hierarchy, embedded bitmap assets, page dimensions, and an operation to
// rasterize a clipped rectangle. It is implemented by a PDF layout backend.
type PageProvider interface {
	assets.Rasterizer

	// Page returns the layout of the given 1-indexed page.
	Page(number int) (*model.Page, error)
}

// PageResult holds everything extracted from one page. Results are
// append-only and never mutated after the page pass completes.
type PageResult struct {
	PageNumber  int
	Figures     []model.Figure
	FigureStats layout.FigureStats
	Tables      []model.TableRecord
	TableStats  tables.Stats
	Warnings    []Warning
}

// Processor drives figure and table extraction page by page. Each page's
// output is a pure function of that page's layout plus filesystem side
// effects for artifacts; no failure inside a page propagates past it.
type Processor struct {
	config Config
	engine tables.Engine
}

// NewProcessor creates a processor with default configuration.
func NewProcessor() *Processor {
	return NewProcessorWithConfig(DefaultConfig())
}

// NewProcessorWithConfig creates a processor with custom configuration.
// An unknown engine name falls back to the default geometric engine.
func NewProcessorWithConfig(config Config) *Processor {
	engine := tables.GetEngine(config.Engine)
	if engine == nil {
		engine = tables.GetEngine("geometric")
	}
	return &Processor{
		config: config.clone(),
		engine: engine,
	}
}

// NewProcessorWithEngine creates a processor using the given engine instead
// of a registered one.
func NewProcessorWithEngine(config Config, engine tables.Engine) *Processor {
	return &Processor{
		config: config.clone(),
		engine: engine,
	}
}

// ProcessPage extracts figures and tables from one page. The returned error
// covers only the provider failing to produce the page; everything else
// degrades into warnings and partial results.
func (p *Processor) ProcessPage(provider PageProvider, pageNum int) (*PageResult, error) {
	page, err := provider.Page(pageNum)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", pageNum, err)
	}

	exporter := assets.NewExporter(p.config.ArtifactDir, p.config.Stem)

	captions := layout.NewCaptionDetector().DetectCaptions(page)

	grouper := layout.NewGrouperWithConfig(exporter, provider, p.config.Grouper)
	figures, figStats := grouper.Group(page, captions)

	orch := tables.NewOrchestratorWithConfig(p.engine, exporter, p.config.Tables)
	records, tabStats := orch.Extract(page, captions)

	result := &PageResult{
		PageNumber:  pageNum,
		Figures:     figures,
		FigureStats: figStats,
		Tables:      records,
		TableStats:  tabStats,
	}

	if figStats.AssetsExported < figStats.AssetsFound {
		result.Warnings = append(result.Warnings, Warning{
			Page: pageNum,
			Message: fmt.Sprintf("exported %d of %d bitmap assets",
				figStats.AssetsExported, figStats.AssetsFound),
		})
	}
	if tabStats.Err != "" {
		result.Warnings = append(result.Warnings, Warning{
			Page:    pageNum,
			Message: tabStats.Err,
		})
	}

	return result, nil
}

// ProcessPages processes the given pages concurrently. Pages have no
// ordering dependency, so the observable output is identical to a
// sequential loop; results come back sorted by page number and per-page
// diagnostics stay attributable to their page.
func (p *Processor) ProcessPages(provider PageProvider, pageNums []int) ([]*PageResult, error) {
	results := make([]*PageResult, len(pageNums))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, pageNum := range pageNums {
		i, pageNum := i, pageNum
		g.Go(func() error {
			result, err := p.ProcessPage(provider, pageNum)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].PageNumber < results[j].PageNumber
	})
	return results, nil
}
