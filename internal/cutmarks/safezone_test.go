package cutmarks

import "testing"

func TestComputeSafeZone_NoMarks(t *testing.T) {
	sz := computeSafeZone(nil, 200, 100)

	// 5% of the smaller dimension on every edge.
	want := 100 * 0.05
	if sz.Margins.Top != want || sz.Margins.Bottom != want ||
		sz.Margins.Left != want || sz.Margins.Right != want {
		t.Errorf("Margins: got %+v, want uniform %v", sz.Margins, want)
	}
	if sz.X != want || sz.Y != want {
		t.Errorf("Origin: got (%v,%v), want (%v,%v)", sz.X, sz.Y, want, want)
	}
	if sz.Width != 200-2*want || sz.Height != 100-2*want {
		t.Errorf("Size: got %vx%v, want %vx%v", sz.Width, sz.Height, 200-2*want, 100-2*want)
	}
}

func TestComputeSafeZone_MarkPushesNearestEdge(t *testing.T) {
	marks := []Mark{
		{Type: TypeCornerCross, Position: Point{X: 100, Y: 10}, Confidence: 0.8},
	}
	sz := computeSafeZone(marks, 200, 200)

	// The mark is nearest the top edge: top margin = y + 20px buffer.
	if sz.Margins.Top != 30 {
		t.Errorf("Top margin: got %v, want 30", sz.Margins.Top)
	}

	// Other edges keep the 2% floor.
	floor := 200 * 0.02
	if sz.Margins.Bottom != floor || sz.Margins.Left != floor || sz.Margins.Right != floor {
		t.Errorf("Untouched margins: got %+v, want floor %v", sz.Margins, floor)
	}
}

func TestComputeSafeZone_PerEdgeAttribution(t *testing.T) {
	marks := []Mark{
		{Position: Point{X: 10, Y: 100}},  // left
		{Position: Point{X: 190, Y: 100}}, // right
		{Position: Point{X: 100, Y: 195}}, // bottom
	}
	sz := computeSafeZone(marks, 200, 200)

	if sz.Margins.Left != 30 {
		t.Errorf("Left margin: got %v, want 30", sz.Margins.Left)
	}
	if sz.Margins.Right != 30 {
		t.Errorf("Right margin: got %v, want 30", sz.Margins.Right)
	}
	if sz.Margins.Bottom != 25 {
		t.Errorf("Bottom margin: got %v, want 25", sz.Margins.Bottom)
	}
	if sz.Margins.Top != 200*0.02 {
		t.Errorf("Top margin: got %v, want floor %v", sz.Margins.Top, 200*0.02)
	}

	if sz.Width != 200-30-30 {
		t.Errorf("Width: got %v, want 140", sz.Width)
	}
	if sz.Height != 200-200*0.02-25 {
		t.Errorf("Height: got %v, want %v", sz.Height, 200-200*0.02-25)
	}
}

func TestComputeSafeZone_FloorWins(t *testing.T) {
	// A mark hugging the edge still leaves the 20px buffer, which matches
	// the 2% floor on a 1000px page.
	marks := []Mark{{Position: Point{X: 100, Y: 0}}}
	sz := computeSafeZone(marks, 1000, 1000)

	if sz.Margins.Top != 20 {
		t.Errorf("Top margin: got %v, want buffer 20", sz.Margins.Top)
	}
	if sz.Margins.Left != 20 {
		t.Errorf("Left floor: got %v, want 2%% = 20", sz.Margins.Left)
	}
}
