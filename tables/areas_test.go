package tables

import (
	"testing"

	"github.com/tsawler/folio/model"
)

func TestAreasFromCaption_OrderAndConventions(t *testing.T) {
	caption := model.Rect{X0: 100, Y0: 400, X1: 300, Y1: 420}
	areas := AreasFromCaption(caption, 612, 792, 6)

	if len(areas) != 4 {
		t.Fatalf("AreasFromCaption() = %d areas, want 4", len(areas))
	}

	wantOrder := []struct {
		region  Region
		flipped bool
	}{
		{RegionAbove, true},
		{RegionAbove, false},
		{RegionBelow, true},
		{RegionBelow, false},
	}
	for i, want := range wantOrder {
		if areas[i].Region != want.region || areas[i].Flipped != want.flipped {
			t.Errorf("areas[%d] = %s flipped=%v, want %s flipped=%v",
				i, areas[i].Region, areas[i].Flipped, want.region, want.flipped)
		}
	}

	// Both convention variants of a region select the same layout rectangle.
	aboveLayout := model.Rect{X0: 6, Y0: 6, X1: 606, Y1: 394}
	if got := areas[0].LayoutRect(792); got != aboveLayout {
		t.Errorf("above flipped LayoutRect = %+v, want %+v", got, aboveLayout)
	}
	if got := areas[1].LayoutRect(792); got != aboveLayout {
		t.Errorf("above unflipped LayoutRect = %+v, want %+v", got, aboveLayout)
	}

	belowLayout := model.Rect{X0: 6, Y0: 426, X1: 606, Y1: 786}
	if got := areas[2].LayoutRect(792); got != belowLayout {
		t.Errorf("below flipped LayoutRect = %+v, want %+v", got, belowLayout)
	}
	if got := areas[3].LayoutRect(792); got != belowLayout {
		t.Errorf("below unflipped LayoutRect = %+v, want %+v", got, belowLayout)
	}

	// The flipped variant carries bottom-left-origin numbers.
	if areas[0].Y0 != 398 || areas[0].Y1 != 786 {
		t.Errorf("above flipped = Y0 %g, Y1 %g, want 398, 786", areas[0].Y0, areas[0].Y1)
	}
}

func TestAreasFromCaption_ClampedToPage(t *testing.T) {
	// Caption hugging the top edge: the above region collapses against the
	// margin but never leaves the page.
	caption := model.Rect{X0: 100, Y0: 3, X1: 300, Y1: 20}
	areas := AreasFromCaption(caption, 612, 792, 6)

	for i, a := range areas {
		for _, v := range []float64{a.X0, a.X1} {
			if v < 0 || v > 612 {
				t.Errorf("areas[%d] X coordinate %g outside page", i, v)
			}
		}
		for _, v := range []float64{a.Y0, a.Y1} {
			if v < 0 || v > 792 {
				t.Errorf("areas[%d] Y coordinate %g outside page", i, v)
			}
		}
	}
}

func TestFullPageAreas(t *testing.T) {
	areas := FullPageAreas(612, 792, 6)

	if len(areas) != 2 {
		t.Fatalf("FullPageAreas() = %d areas, want 2", len(areas))
	}
	if areas[0].Flipped || !areas[1].Flipped {
		t.Errorf("want plain then flipped variant, got %v, %v", areas[0].Flipped, areas[1].Flipped)
	}

	want := model.Rect{X0: 6, Y0: 6, X1: 606, Y1: 786}
	for i, a := range areas {
		if a.Region != RegionFull {
			t.Errorf("areas[%d].Region = %s, want full", i, a.Region)
		}
		if got := a.LayoutRect(792); got != want {
			t.Errorf("areas[%d].LayoutRect = %+v, want %+v", i, got, want)
		}
	}
}

func TestArea_String(t *testing.T) {
	a := Area{X0: 6, Y0: 398, X1: 606, Y1: 786, Flipped: true, Region: RegionAbove}
	if got := a.String(); got != "above/6,398,606,786" {
		t.Errorf("String() = %q", got)
	}
}

func TestFirstTableCaption(t *testing.T) {
	captions := []model.Caption{
		{Text: "Figure 1: A", Kind: model.CaptionFigure},
		{Text: "Table 2: B", Kind: model.CaptionTable},
		{Text: "Table 3: C", Kind: model.CaptionTable},
	}

	c, ok := FirstTableCaption(captions)
	if !ok {
		t.Fatal("FirstTableCaption() found nothing")
	}
	if c.Text != "Table 2: B" {
		t.Errorf("FirstTableCaption() = %q, want the first table caption", c.Text)
	}

	if _, ok := FirstTableCaption(captions[:1]); ok {
		t.Error("FirstTableCaption() should not match a figure caption")
	}
}
