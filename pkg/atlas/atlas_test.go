package atlas

import (
	"testing"

	"github.com/pixelbeat/dotmatrix/pkg/math"
)

const tolerance = 1e-6

func near(a, b float32) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}

func TestTileUVOrigin(t *testing.T) {
	a := Atlas{Cols: 16, Rows: 16}

	tests := []struct {
		idx      uint32
		col, row uint32
	}{
		{0, 0, 0},
		{1, 1, 0},
		{15, 15, 0},
		{16, 0, 1},
		{17, 1, 1},
		{255, 15, 15},
	}
	for _, tt := range tests {
		r := a.TileUV(tt.idx)
		wantU := float32(tt.col) / 16
		wantV := float32(tt.row) / 16
		if !near(r.U0, wantU) || !near(r.V0, wantV) {
			t.Errorf("TileUV(%d) origin = (%v,%v), want (%v,%v)",
				tt.idx, r.U0, r.V0, wantU, wantV)
		}
	}
}

func TestTileUVArea(t *testing.T) {
	for _, a := range []Atlas{{16, 16}, {32, 32}, {8, 4}} {
		want := 1 / float32(a.Capacity())
		for idx := uint32(0); idx < uint32(a.Capacity()); idx += 7 {
			if got := a.TileUV(idx).Area(); !near(got, want) {
				t.Errorf("atlas %v TileUV(%d).Area() = %v, want %v", a, idx, got, want)
			}
		}
	}
}

func TestTileUVWideAtlas(t *testing.T) {
	// Index 5 in a 32-column atlas lands in column 5 of the top row.
	a := Atlas{Cols: 32, Rows: 32}
	r := a.TileUV(5)
	if !near(r.U0, 5.0/32.0) || r.V0 != 0 {
		t.Errorf("TileUV(5) = (%v,%v), want (5/32, 0)", r.U0, r.V0)
	}
}

func TestMapUV(t *testing.T) {
	a := Atlas{Cols: 16, Rows: 16}
	r := a.TileUV(17) // cell (1,1)

	// Quad corners land on the tile's corners.
	tl := r.MapUV(math.Vec2{X: 0, Y: 0})
	br := r.MapUV(math.Vec2{X: 1, Y: 1})
	if !near(tl.X, 1.0/16.0) || !near(tl.Y, 1.0/16.0) {
		t.Errorf("top-left = %v, want (1/16, 1/16)", tl)
	}
	if !near(br.X, 2.0/16.0) || !near(br.Y, 2.0/16.0) {
		t.Errorf("bottom-right = %v, want (2/16, 2/16)", br)
	}
}

func TestTileUVRawIndexPastCapacity(t *testing.T) {
	// The mapper performs no bounds checks: an index past capacity
	// wraps columns and walks off the bottom rows.
	a := Atlas{Cols: 16, Rows: 16}
	r := a.TileUV(256)
	if !near(r.U0, 0) || !near(r.V0, 1) {
		t.Errorf("TileUV(256) = (%v,%v), want (0, 1)", r.U0, r.V0)
	}
}
