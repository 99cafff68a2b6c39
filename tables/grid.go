package tables

import (
	"math"
	"sort"

	"github.com/tsawler/folio/model"
)

// tableGrid holds candidate row and column boundaries in layout coordinates
// (y increasing downward), plus which boundaries carry visible ruling lines.
type tableGrid struct {
	rows []float64 // Ascending Y boundaries, top to bottom
	cols []float64 // Ascending X boundaries, left to right

	hasHLines []bool
	hasVLines []bool
}

func (g *tableGrid) rowCount() int {
	if len(g.rows) <= 1 {
		return 0
	}
	return len(g.rows) - 1
}

func (g *tableGrid) colCount() int {
	if len(g.cols) <= 1 {
		return 0
	}
	return len(g.cols) - 1
}

// bounds returns the overall rectangle covered by the grid.
func (g *tableGrid) bounds() model.Rect {
	if g.rowCount() == 0 || g.colCount() == 0 {
		return model.Rect{}
	}
	return model.Rect{
		X0: g.cols[0],
		Y0: g.rows[0],
		X1: g.cols[len(g.cols)-1],
		Y1: g.rows[len(g.rows)-1],
	}
}

// findCell returns the row and column indices of the cell containing the
// given point, or -1 for both if the point is outside the grid.
func (g *tableGrid) findCell(p model.Point) (row, col int) {
	row = -1
	col = -1

	for i := 0; i < g.rowCount(); i++ {
		if p.Y >= g.rows[i] && p.Y <= g.rows[i+1] {
			row = i
			break
		}
	}

	for i := 0; i < g.colCount(); i++ {
		if p.X >= g.cols[i] && p.X <= g.cols[i+1] {
			col = i
			break
		}
	}

	return row, col
}

// lineCoverage returns the fraction of grid boundaries that carry a visible
// ruling line.
func (g *tableGrid) lineCoverage() float64 {
	total := len(g.hasHLines) + len(g.hasVLines)
	if total == 0 {
		return 0
	}

	visible := 0
	for _, has := range g.hasHLines {
		if has {
			visible++
		}
	}
	for _, has := range g.hasVLines {
		if has {
			visible++
		}
	}

	return float64(visible) / float64(total)
}

// buildGrid constructs a grid from span edge positions and marks boundaries
// backed by ruling lines.
func buildGrid(spans []model.TextSpan, rules []model.Rule, tolerance float64) *tableGrid {
	if len(spans) == 0 {
		return nil
	}

	yValues := make([]float64, 0, len(spans)*2)
	xValues := make([]float64, 0, len(spans)*2)
	for _, span := range spans {
		yValues = append(yValues, span.Rect.Y0, span.Rect.Y1)
		xValues = append(xValues, span.Rect.X0, span.Rect.X1)
	}

	sort.Float64s(yValues)
	sort.Float64s(xValues)

	grid := &tableGrid{
		rows: clusterValues(yValues, tolerance),
		cols: clusterValues(xValues, tolerance),
	}

	grid.hasHLines = detectHorizontalRules(grid.rows, rules, tolerance)
	grid.hasVLines = detectVerticalRules(grid.cols, rules, tolerance)

	return grid
}

// clusterValues merges sorted values within the given tolerance, averaging
// values that fall within the tolerance of the cluster center.
func clusterValues(values []float64, tolerance float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	clustered := []float64{values[0]}

	for i := 1; i < len(values); i++ {
		diff := values[i] - clustered[len(clustered)-1]
		if diff > tolerance {
			clustered = append(clustered, values[i])
		} else {
			// Update cluster center with average
			clustered[len(clustered)-1] = (clustered[len(clustered)-1] + values[i]) / 2
		}
	}

	return clustered
}

// detectHorizontalRules determines which row boundaries have a visible
// horizontal ruling line within tolerance.
func detectHorizontalRules(yCoords []float64, rules []model.Rule, tolerance float64) []bool {
	hasLines := make([]bool, len(yCoords))

	for i, y := range yCoords {
		for _, rule := range rules {
			if !rule.IsHorizontal(tolerance) {
				continue
			}
			if math.Abs(rule.Start.Y-y) < tolerance {
				hasLines[i] = true
				break
			}
		}
	}

	return hasLines
}

// detectVerticalRules determines which column boundaries have a visible
// vertical ruling line within tolerance.
func detectVerticalRules(xCoords []float64, rules []model.Rule, tolerance float64) []bool {
	hasLines := make([]bool, len(xCoords))

	for i, x := range xCoords {
		for _, rule := range rules {
			if !rule.IsVertical(tolerance) {
				continue
			}
			if math.Abs(rule.Start.X-x) < tolerance {
				hasLines[i] = true
				break
			}
		}
	}

	return hasLines
}
