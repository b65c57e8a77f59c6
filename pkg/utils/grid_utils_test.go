package utils

import "testing"

func TestScreenToCell(t *testing.T) {
	g := NewScreenGrid(800, 600, 80, 30) // 10x20 的格子

	tests := []struct {
		name      string
		x, y      float64
		wantCol   int
		wantRow   int
		wantValid bool
	}{
		{"top left", 0, 0, 0, 0, true},
		{"hole 0", 150, 150, 15, 7, true},
		{"last cell", 799.9, 599.9, 79, 29, true},
		{"right edge", 800, 10, 0, 0, false},
		{"negative", -1, 10, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row, ok := g.ScreenToCell(tt.x, tt.y)
			if ok != tt.wantValid {
				t.Fatalf("valid = %v, want %v", ok, tt.wantValid)
			}
			if ok && (col != tt.wantCol || row != tt.wantRow) {
				t.Errorf("cell = (%d, %d), want (%d, %d)", col, row, tt.wantCol, tt.wantRow)
			}
		})
	}
}

func TestCellCenterRoundTrip(t *testing.T) {
	g := NewScreenGrid(800, 600, 100, 40)

	for _, c := range [][2]int{{0, 0}, {42, 17}, {99, 39}} {
		x, y := g.CellCenter(c[0], c[1])
		col, row, ok := g.ScreenToCell(x, y)
		if !ok || col != c[0] || row != c[1] {
			t.Errorf("round trip of %v gave (%d, %d, %v)", c, col, row, ok)
		}
	}
}

func TestNewScreenGridMinimumSize(t *testing.T) {
	g := NewScreenGrid(800, 600, 0, -3)
	if g.Columns != 1 || g.Rows != 1 {
		t.Errorf("grid should be at least 1x1, got %dx%d", g.Columns, g.Rows)
	}
}
