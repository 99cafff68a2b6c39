package model

import (
	"math"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewRect_Normalizes(t *testing.T) {
	r := NewRect(100, 200, 10, 20)
	if r.X0 != 10 || r.Y0 != 20 || r.X1 != 100 || r.Y1 != 200 {
		t.Errorf("NewRect did not normalize edges: %+v", r)
	}
}

func TestRect_Dimensions(t *testing.T) {
	r := Rect{X0: 10, Y0: 20, X1: 110, Y1: 70}

	if !almostEqual(r.Width(), 100) {
		t.Errorf("Width() = %f, want 100", r.Width())
	}
	if !almostEqual(r.Height(), 50) {
		t.Errorf("Height() = %f, want 50", r.Height())
	}
	if !almostEqual(r.Area(), 5000) {
		t.Errorf("Area() = %f, want 5000", r.Area())
	}

	c := r.Center()
	if !almostEqual(c.X, 60) || !almostEqual(c.Y, 45) {
		t.Errorf("Center() = %+v, want (60, 45)", c)
	}
}

func TestRect_Union(t *testing.T) {
	a := Rect{X0: 0, Y0: 0, X1: 50, Y1: 50}
	b := Rect{X0: 30, Y0: 40, X1: 100, Y1: 60}

	u := a.Union(b)
	want := Rect{X0: 0, Y0: 0, X1: 100, Y1: 60}
	if u != want {
		t.Errorf("Union() = %+v, want %+v", u, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "overlapping",
			a:    Rect{X0: 0, Y0: 0, X1: 50, Y1: 50},
			b:    Rect{X0: 30, Y0: 30, X1: 100, Y1: 100},
			want: Rect{X0: 30, Y0: 30, X1: 50, Y1: 50},
		},
		{
			name: "disjoint",
			a:    Rect{X0: 0, Y0: 0, X1: 10, Y1: 10},
			b:    Rect{X0: 20, Y0: 20, X1: 30, Y1: 30},
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRect_Clip(t *testing.T) {
	bounds := Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}

	r := Rect{X0: -10, Y0: 700, X1: 650, Y1: 900}
	clipped := r.Clip(bounds)
	want := Rect{X0: 0, Y0: 700, X1: 612, Y1: 792}
	if clipped != want {
		t.Errorf("Clip() = %+v, want %+v", clipped, want)
	}

	// Fully outside the bounds clips to a degenerate rectangle.
	outside := Rect{X0: 700, Y0: 800, X1: 750, Y1: 900}
	if got := outside.Clip(bounds); got.IsValid() {
		t.Errorf("Clip() of outside rect should be degenerate, got %+v", got)
	}
}

func TestRect_HorizontalOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want float64
	}{
		{"full", Rect{X0: 0, X1: 100}, Rect{X0: 0, X1: 100}, 100},
		{"partial", Rect{X0: 0, X1: 60}, Rect{X0: 40, X1: 100}, 20},
		{"none", Rect{X0: 0, X1: 40}, Rect{X0: 50, X1: 100}, 0},
		{"vertical offset ignored", Rect{X0: 0, Y0: 0, X1: 50, Y1: 10}, Rect{X0: 0, Y0: 500, X1: 50, Y1: 510}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.HorizontalOverlap(tt.b); !almostEqual(got, tt.want) {
				t.Errorf("HorizontalOverlap() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestRect_PadAndValidity(t *testing.T) {
	r := Rect{X0: 10, Y0: 10, X1: 20, Y1: 20}
	p := r.Pad(5)
	want := Rect{X0: 5, Y0: 5, X1: 25, Y1: 25}
	if p != want {
		t.Errorf("Pad() = %+v, want %+v", p, want)
	}

	if (Rect{X0: 5, Y0: 5, X1: 5, Y1: 10}).IsValid() {
		t.Error("zero-width rect should not be valid")
	}
	if !(Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}).IsValid() {
		t.Error("positive rect should be valid")
	}
}

func TestTextBlock_Text(t *testing.T) {
	block := TextBlock{
		Lines: []TextLine{
			{Spans: []TextSpan{{Text: "Figure 1: "}, {Text: "Model overview"}}},
			{Spans: []TextSpan{{Text: "across six benchmarks."}}},
			{Spans: []TextSpan{{Text: ""}}},
		},
	}

	want := "Figure 1: Model overview\nacross six benchmarks."
	if got := block.Text(); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestPage_Spans(t *testing.T) {
	page := &Page{
		TextBlocks: []TextBlock{
			{Lines: []TextLine{{Spans: []TextSpan{{Text: "a"}, {Text: "b"}}}}},
			{Lines: []TextLine{{Spans: []TextSpan{{Text: "c"}}}}},
		},
	}

	spans := page.Spans()
	if len(spans) != 3 {
		t.Fatalf("Spans() returned %d spans, want 3", len(spans))
	}
	if spans[2].Text != "c" {
		t.Errorf("Spans()[2].Text = %q, want %q", spans[2].Text, "c")
	}
}

func TestTable_Dimensions(t *testing.T) {
	table := NewTable(3, 2)
	if table.RowCount() != 3 {
		t.Errorf("RowCount() = %d, want 3", table.RowCount())
	}
	if table.ColCount() != 2 {
		t.Errorf("ColCount() = %d, want 2", table.ColCount())
	}

	if cell := table.GetCell(5, 0); cell != nil {
		t.Error("GetCell() out of bounds should return nil")
	}
	if err := table.SetCell(0, 0, Cell{Text: "x"}); err != nil {
		t.Errorf("SetCell() failed: %v", err)
	}
	if err := table.SetCell(3, 0, Cell{}); err == nil {
		t.Error("SetCell() out of bounds should fail")
	}
}

func TestTable_ContainsDigit(t *testing.T) {
	table := NewTable(2, 2)
	table.Rows[0][0].Text = "Method"
	table.Rows[0][1].Text = "Accuracy"
	if table.ContainsDigit() {
		t.Error("prose-only table should not contain a digit")
	}

	table.Rows[1][1].Text = "94.2"
	if !table.ContainsDigit() {
		t.Error("table with numeric cell should contain a digit")
	}
}

func TestTable_ToCSV(t *testing.T) {
	table := NewTable(2, 2)
	table.Rows[0][0].Text = "Method"
	table.Rows[0][1].Text = "Top-1, Top-5"
	table.Rows[1][0].Text = `baseline "frozen"`
	table.Rows[1][1].Text = "71.8"

	csv := table.ToCSV()
	if !strings.Contains(csv, `"Top-1, Top-5"`) {
		t.Errorf("ToCSV() should quote cells containing commas, got %q", csv)
	}
	if !strings.Contains(csv, `"baseline ""frozen"""`) {
		t.Errorf("ToCSV() should escape quotes, got %q", csv)
	}
	if got := strings.Count(csv, "\n"); got != 2 {
		t.Errorf("ToCSV() produced %d lines, want 2", got)
	}
}

func TestTable_GetText(t *testing.T) {
	table := NewTable(1, 2)
	table.Rows[0][0].Text = "epoch"
	table.Rows[0][1].Text = "12"

	if got := table.GetText(); got != "epoch\t12\n" {
		t.Errorf("GetText() = %q", got)
	}
}

func TestFigure_HasCaption(t *testing.T) {
	f := &Figure{Caption: "Figure 1: pipeline"}
	if !f.HasCaption() {
		t.Error("captioned figure should report HasCaption")
	}
	if (&Figure{}).HasCaption() {
		t.Error("leftover figure should not report HasCaption")
	}
}
