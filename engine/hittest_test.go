package engine

import "testing"

// partitionFixture builds a 20-column line: left "LL" (2), center "CC" (2),
// right "RR" (2). centerStart = ceil(20/2) - floor(2/2) = 9, so the center
// occupies columns [9,11) and the right columns [18,20).
func partitionFixture(t *testing.T) (*Engine, *mockHost) {
	t.Helper()
	host := newMockHost()
	host.Cols = 20
	host.Rows = 10
	e := setupEngine(t, host, Layout{
		Left:   []Item{{Config: Config{Provider: Lit("LL")}}},
		Center: []Item{{Config: Config{Provider: Lit("CC")}}},
		Right:  []Item{{Config: Config{Provider: Lit("RR")}}},
	})
	e.Compose() // establish widths
	return e, host
}

func TestHitTestPartition(t *testing.T) {
	e, _ := partitionFixture(t)
	statusRow := 9

	tests := []struct {
		name string
		col  int
		want ID
		hit  bool
	}{
		{"left first cell", 0, 1, true},
		{"left last cell", 1, 1, true},
		{"gap after left", 2, 0, false},
		{"gap before center", 8, 0, false},
		{"center start", 9, 2, true},
		{"center end", 10, 2, true},
		{"gap after center", 11, 0, false},
		{"gap before right", 17, 0, false},
		{"right start", 18, 3, true},
		{"right last cell", 19, 3, true},
		{"past the edge", 20, 0, false},
		{"negative", -1, 0, false},
	}
	for _, tt := range tests {
		id, ok := e.HitTest(tt.col, statusRow)
		if id != tt.want || ok != tt.hit {
			t.Errorf("%s: HitTest(%d) = (%d, %v), want (%d, %v)",
				tt.name, tt.col, id, ok, tt.want, tt.hit)
		}
	}
}

func TestHitTestWrongRow(t *testing.T) {
	e, _ := partitionFixture(t)
	if _, ok := e.HitTest(0, 3); ok {
		t.Error("rows above the status line must not hit")
	}
}

func TestResolveMousePositionDrivesHover(t *testing.T) {
	e, host := partitionFixture(t)

	e.ResolveMousePosition(0, 9)
	if e.HoveredID() != 1 {
		t.Fatalf("hovered = %d, want 1", e.HoveredID())
	}

	// Moving into a gap leaves.
	e.ResolveMousePosition(5, 9)
	if e.HoveredID() != 0 {
		t.Error("gap column should clear hover")
	}

	// Leaving the status row leaves.
	e.ResolveMousePosition(0, 9)
	e.ResolveMousePosition(0, 2)
	if e.HoveredID() != 0 {
		t.Error("off-row position should clear hover")
	}

	// MouseMoved pulls the position from the host.
	host.MouseCol, host.MouseRow = 18, 9
	e.MouseMoved()
	if e.HoveredID() != 3 {
		t.Errorf("hovered = %d, want 3", e.HoveredID())
	}
}

func TestHitTestWalksCumulativeWidths(t *testing.T) {
	host := newMockHost()
	host.Cols = 40
	host.Rows = 5
	e := setupEngine(t, host, Layout{
		Left: []Item{
			{Config: Config{Provider: Lit("abc")}},  // cols [0,3)
			{Config: Config{Provider: Lit("de")}},   // cols [3,5)
			{Config: Config{Provider: Lit("fghi")}}, // cols [5,9)
		},
	})
	e.Compose()

	for col, want := range map[int]ID{0: 1, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3} {
		if id, ok := e.HitTest(col, 4); !ok || id != want {
			t.Errorf("col %d: got (%d, %v), want %d", col, id, ok, want)
		}
	}
	if _, ok := e.HitTest(9, 4); ok {
		t.Error("column past the left section should miss")
	}
}
