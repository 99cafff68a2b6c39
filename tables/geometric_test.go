package tables

import (
	"testing"

	"github.com/tsawler/folio/model"
)

// gridSpans lays out a 3x2 results table in layout coordinates: a header row
// and two data rows, columns sharing their inner boundary at x=150.
func gridSpans() []model.TextSpan {
	cell := func(text string, x0, y0, x1, y1 float64) model.TextSpan {
		return model.TextSpan{Text: text, Rect: model.Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}}
	}
	return []model.TextSpan{
		cell("Method", 50, 300, 150, 310),
		cell("Score", 150, 300, 250, 310),
		cell("baseline", 50, 310, 150, 320),
		cell("71.2", 150, 310, 250, 320),
		cell("ours", 50, 320, 150, 330),
		cell("74.8", 150, 320, 250, 330),
	}
}

// gridRules draws a full ruling-line grid around gridSpans.
func gridRules() []model.Rule {
	var rules []model.Rule
	for _, y := range []float64{300, 310, 320, 330} {
		rules = append(rules, model.Rule{Start: model.Point{X: 50, Y: y}, End: model.Point{X: 250, Y: y}})
	}
	for _, x := range []float64{50, 150, 250} {
		rules = append(rules, model.Rule{Start: model.Point{X: x, Y: 300}, End: model.Point{X: x, Y: 330}})
	}
	return rules
}

// gridPage wraps spans and rules into a single-column page.
func gridPage(spans []model.TextSpan, rules []model.Rule) *model.Page {
	page := &model.Page{Number: 1, Width: 612, Height: 792, Rules: rules}
	for _, span := range spans {
		page.TextBlocks = append(page.TextBlocks, model.TextBlock{
			Lines: []model.TextLine{{Spans: []model.TextSpan{span}, Rect: span.Rect}},
			Rect:  span.Rect,
		})
	}
	return page
}

func TestGeometricEngine_UnknownStrategy(t *testing.T) {
	engine := NewGeometricEngine()
	_, err := engine.Detect(gridPage(gridSpans(), nil), "magic", nil)
	if err == nil {
		t.Fatal("Detect() with unknown strategy should fail")
	}
}

func TestGeometricEngine_LatticeWithRulingLines(t *testing.T) {
	engine := NewGeometricEngine()
	page := gridPage(gridSpans(), gridRules())

	tables, err := engine.Detect(page, StrategyLattice, nil)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Detect() = %d tables, want 1", len(tables))
	}

	table := tables[0]
	if table.RowCount() != 3 || table.ColCount() != 2 {
		t.Fatalf("table is %dx%d, want 3x2", table.RowCount(), table.ColCount())
	}
	if !table.HasGrid {
		t.Error("fully ruled table should have HasGrid set")
	}
	if table.Confidence <= 0 || table.Confidence > 1 {
		t.Errorf("Confidence = %g, want in (0, 1]", table.Confidence)
	}

	if got := table.GetCell(0, 0).Text; got != "Method" {
		t.Errorf("cell (0,0) = %q, want %q", got, "Method")
	}
	if got := table.GetCell(1, 1).Text; got != "71.2" {
		t.Errorf("cell (1,1) = %q, want %q", got, "71.2")
	}
	if got := table.GetCell(2, 0).Text; got != "ours" {
		t.Errorf("cell (2,0) = %q, want %q", got, "ours")
	}

	want := model.Rect{X0: 50, Y0: 300, X1: 250, Y1: 330}
	if table.Rect != want {
		t.Errorf("table.Rect = %+v, want %+v", table.Rect, want)
	}
}

func TestGeometricEngine_LatticeRequiresRulingLines(t *testing.T) {
	engine := NewGeometricEngine()
	page := gridPage(gridSpans(), nil)

	tables, err := engine.Detect(page, StrategyLattice, nil)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("lattice on a borderless table = %d tables, want 0", len(tables))
	}
}

func TestGeometricEngine_StreamDetectsBorderless(t *testing.T) {
	engine := NewGeometricEngine()
	page := gridPage(gridSpans(), nil)

	tables, err := engine.Detect(page, StrategyStream, nil)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Detect() = %d tables, want 1", len(tables))
	}
	if tables[0].HasGrid {
		t.Error("borderless table should not have HasGrid set")
	}
}

func TestGeometricEngine_AreaSelection(t *testing.T) {
	engine := NewGeometricEngine()
	page := gridPage(gridSpans(), gridRules())

	// A caption below the table: the above-region areas select the spans.
	caption := model.Rect{X0: 50, Y0: 400, X1: 250, Y1: 420}
	areas := AreasFromCaption(caption, page.Width, page.Height, 6)

	tables, err := engine.Detect(page, StrategyLattice, areas[:1])
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(tables) != 1 {
		t.Errorf("above area = %d tables, want 1", len(tables))
	}

	// The below regions are empty.
	tables, err = engine.Detect(page, StrategyLattice, areas[2:3])
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("below area = %d tables, want 0", len(tables))
	}
}

func TestGeometricEngine_NoAreasIgnoresPageDimensions(t *testing.T) {
	engine := NewGeometricEngine()

	// A provider that cannot report page dimensions still delivers spans;
	// an unrestricted Detect must find the table regardless.
	page := gridPage(gridSpans(), gridRules())
	page.Width = 0
	page.Height = 0

	tables, err := engine.Detect(page, StrategyLattice, nil)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("Detect() = %d tables, want 1 on a dimensionless page", len(tables))
	}
	if tables[0].RowCount() != 3 || tables[0].ColCount() != 2 {
		t.Errorf("table is %dx%d, want 3x2", tables[0].RowCount(), tables[0].ColCount())
	}
}

func TestGeometricEngine_EmptyPage(t *testing.T) {
	engine := NewGeometricEngine()

	tables, err := engine.Detect(&model.Page{Number: 1, Width: 612, Height: 792}, StrategyLattice, nil)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if tables != nil {
		t.Errorf("empty page = %v, want no tables", tables)
	}
}

func TestGeometricEngine_TooFewSpans(t *testing.T) {
	engine := NewGeometricEngine()
	page := gridPage(gridSpans()[:2], nil)

	tables, err := engine.Detect(page, StrategyStream, nil)
	if err != nil {
		t.Fatalf("Detect() failed: %v", err)
	}
	if len(tables) != 0 {
		t.Errorf("two spans = %d tables, want 0", len(tables))
	}
}

func TestEngineRegistry(t *testing.T) {
	engine := GetEngine("geometric")
	if engine == nil {
		t.Fatal("geometric engine should be registered by default")
	}
	if engine.Name() != "geometric" {
		t.Errorf("Name() = %q", engine.Name())
	}

	found := false
	for _, name := range ListEngines() {
		if name == "geometric" {
			found = true
		}
	}
	if !found {
		t.Errorf("ListEngines() = %v, missing geometric", ListEngines())
	}
}
