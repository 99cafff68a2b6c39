package tables

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/folio/model"
)

// Strategy names supported by the geometric engine.
const (
	// StrategyLattice detects tables whose grid is drawn with ruling lines.
	StrategyLattice = "lattice"
	// StrategyStream detects borderless tables from whitespace alignment.
	StrategyStream = "stream"
)

// GeometricConfig holds geometric engine parameters.
type GeometricConfig struct {
	// MinRows and MinCols are the minimum grid dimensions for a candidate.
	MinRows int
	MinCols int

	// AlignmentTolerance is the tolerance (points) for clustering span edges
	// into grid boundaries.
	AlignmentTolerance float64

	// MaxClusterGap is the vertical gap (points) separating span clusters.
	MaxClusterGap float64

	// MinLineCoverage is the fraction of grid boundaries that must carry a
	// visible ruling line for the lattice strategy.
	MinLineCoverage float64

	// MinOccupancy is the minimum fraction of grid cells that must contain
	// text for the stream strategy.
	MinOccupancy float64
}

// DefaultGeometricConfig returns the default engine parameters.
func DefaultGeometricConfig() GeometricConfig {
	return GeometricConfig{
		MinRows:            2,
		MinCols:            2,
		AlignmentTolerance: 2.0,
		MaxClusterGap:      50.0,
		MinLineCoverage:    0.5,
		MinOccupancy:       0.4,
	}
}

// GeometricEngine detects tables from the spatial alignment of text spans.
// It implements [Engine] with the "lattice" and "stream" strategies.
type GeometricEngine struct {
	config GeometricConfig
}

// NewGeometricEngine creates a geometric engine with default configuration.
func NewGeometricEngine() *GeometricEngine {
	return &GeometricEngine{
		config: DefaultGeometricConfig(),
	}
}

// NewGeometricEngineWithConfig creates a geometric engine with custom
// configuration.
func NewGeometricEngineWithConfig(config GeometricConfig) *GeometricEngine {
	return &GeometricEngine{config: config}
}

// Name returns the engine's identifier ("geometric").
func (e *GeometricEngine) Name() string {
	return "geometric"
}

// Detect finds table candidates on a page. Each area is converted back to
// layout coordinates; an area that selects no spans simply yields nothing,
// which is how the wrong-origin variant of a dual-convention trial falls
// through without an error.
func (e *GeometricEngine) Detect(page *model.Page, strategy string, areas []Area) ([]*model.Table, error) {
	if strategy != StrategyLattice && strategy != StrategyStream {
		return nil, fmt.Errorf("geometric: unknown strategy %q", strategy)
	}

	spans := contentSpans(page)
	if len(spans) == 0 {
		return nil, nil
	}

	// No areas means no restriction: cluster every content span. Pages
	// without known dimensions can only be searched this way.
	if len(areas) == 0 {
		return e.detectIn(spans, page.Rules, strategy), nil
	}

	var tables []*model.Table
	for _, area := range areas {
		rect := area.LayoutRect(page.Height)
		if !rect.IsValid() {
			continue
		}
		tables = append(tables, e.detectIn(spansIn(spans, rect), page.Rules, strategy)...)
	}

	return tables, nil
}

// detectIn clusters spans vertically and collects the table candidates found
// in each cluster.
func (e *GeometricEngine) detectIn(spans []model.TextSpan, rules []model.Rule, strategy string) []*model.Table {
	var tables []*model.Table
	for _, cluster := range clusterSpans(spans, e.config.MaxClusterGap) {
		if table := e.detectInCluster(cluster, rules, strategy); table != nil {
			tables = append(tables, table)
		}
	}
	return tables
}

// detectInCluster tries to find a table in one span cluster.
func (e *GeometricEngine) detectInCluster(spans []model.TextSpan, rules []model.Rule, strategy string) *model.Table {
	if len(spans) < e.config.MinRows*e.config.MinCols {
		return nil
	}

	grid := buildGrid(spans, rules, e.config.AlignmentTolerance)
	if grid == nil || grid.rowCount() < e.config.MinRows || grid.colCount() < e.config.MinCols {
		return nil
	}

	coverage := grid.lineCoverage()

	switch strategy {
	case StrategyLattice:
		if coverage < e.config.MinLineCoverage {
			return nil
		}
	case StrategyStream:
		if occupancy(grid, spans) < e.config.MinOccupancy {
			return nil
		}
	}

	table := model.NewTable(grid.rowCount(), grid.colCount())
	assignSpansToCells(table, grid, spans)

	table.Rect = grid.bounds()
	table.HasGrid = coverage >= e.config.MinLineCoverage
	table.Confidence = confidence(grid, spans, coverage)

	return table
}

// contentSpans flattens the page text into spans with non-empty text.
func contentSpans(page *model.Page) []model.TextSpan {
	var spans []model.TextSpan
	for _, span := range page.Spans() {
		if strings.TrimSpace(span.Text) != "" {
			spans = append(spans, span)
		}
	}
	return spans
}

// spansIn selects spans whose center lies inside the rectangle.
func spansIn(spans []model.TextSpan, rect model.Rect) []model.TextSpan {
	var selected []model.TextSpan
	for _, span := range spans {
		if rect.Contains(span.Rect.Center()) {
			selected = append(selected, span)
		}
	}
	return selected
}

// clusterSpans groups spans that are vertically close. Spans separated by
// more than maxGap start a new cluster.
func clusterSpans(spans []model.TextSpan, maxGap float64) [][]model.TextSpan {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]model.TextSpan, len(spans))
	copy(sorted, spans)

	// Sort by Y position, top to bottom
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rect.Y0 < sorted[j].Rect.Y0
	})

	var clusters [][]model.TextSpan
	current := []model.TextSpan{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		last := current[len(current)-1].Rect
		gap := sorted[i].Rect.Y0 - last.Y1

		if gap > maxGap {
			clusters = append(clusters, current)
			current = []model.TextSpan{sorted[i]}
		} else {
			current = append(current, sorted[i])
		}
	}

	if len(current) > 0 {
		clusters = append(clusters, current)
	}

	return clusters
}

// assignSpansToCells places each span into the cell containing its center.
// Spans landing in the same cell are concatenated.
func assignSpansToCells(table *model.Table, grid *tableGrid, spans []model.TextSpan) {
	for _, span := range spans {
		row, col := grid.findCell(span.Rect.Center())
		if row < 0 || col < 0 || row >= table.RowCount() || col >= table.ColCount() {
			continue
		}

		cell := table.GetCell(row, col)
		if cell == nil {
			continue
		}
		if cell.Text != "" {
			cell.Text += " "
		}
		cell.Text += span.Text

		if cell.Rect.IsEmpty() {
			cell.Rect = span.Rect
		} else {
			cell.Rect = cell.Rect.Union(span.Rect)
		}
	}
}

// occupancy measures the fraction of grid cells containing at least one span.
func occupancy(grid *tableGrid, spans []model.TextSpan) float64 {
	total := grid.rowCount() * grid.colCount()
	if total == 0 {
		return 0
	}

	occupied := make(map[[2]int]bool)
	for _, span := range spans {
		row, col := grid.findCell(span.Rect.Center())
		if row >= 0 && col >= 0 {
			occupied[[2]int{row, col}] = true
		}
	}

	return float64(len(occupied)) / float64(total)
}

// confidence combines cell occupancy and ruling-line coverage into a rough
// 0-1 score.
func confidence(grid *tableGrid, spans []model.TextSpan, coverage float64) float64 {
	return 0.6*occupancy(grid, spans) + 0.4*coverage
}
