package tilemap

import (
	"image"
	"image/color"
	"testing"

	"github.com/pixelbeat/dotmatrix/pkg/atlas"
)

// solidAtlas builds an atlas image where every tile is a solid color
// derived from its index, so composed pixels identify their tile.
func solidAtlas(a atlas.Atlas, tilePx int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.Cols*tilePx, a.Rows*tilePx))
	for idx := 0; idx < a.Capacity(); idx++ {
		col := (idx % a.Cols) * tilePx
		row := (idx / a.Cols) * tilePx
		c := color.RGBA{R: uint8(idx), G: uint8(idx >> 8), A: 255}
		for y := 0; y < tilePx; y++ {
			for x := 0; x < tilePx; x++ {
				img.SetRGBA(col+x, row+y, c)
			}
		}
	}
	return img
}

func tileAt(t *testing.T, plane *image.RGBA, col, row, tilePx int) uint8 {
	t.Helper()
	c := plane.RGBAAt(col*tilePx+tilePx/2, row*tilePx+tilePx/2)
	return c.R
}

func TestCompose(t *testing.T) {
	a := atlas.Atlas{Cols: 4, Rows: 4}
	g := atlas.Grid{Cols: 2, Rows: 2}
	const tilePx = 8

	indices := []uint32{0, 5, 10, 15}
	plane, err := Compose(solidAtlas(a, tilePx), a, g, tilePx, indices)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if b := plane.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Fatalf("plane size %dx%d, want 16x16", b.Dx(), b.Dy())
	}

	// Cells fill left to right, top to bottom.
	for i, idx := range indices {
		col, row := g.Cell(uint32(i))
		if got := tileAt(t, plane, col, row, tilePx); got != uint8(idx) {
			t.Errorf("cell (%d,%d) holds tile %d, want %d", col, row, got, idx)
		}
	}
}

func TestComposeFullPlane(t *testing.T) {
	// The default deployment: a 32x32 map of 8 px tiles fills the
	// 256x256 addressable plane exactly.
	a := atlas.Atlas{Cols: 16, Rows: 16}
	g := atlas.Grid{Cols: 32, Rows: 32}
	const tilePx = 8

	indices := make([]uint32, g.Cells())
	for i := range indices {
		indices[i] = uint32(i % a.Capacity())
	}

	plane, err := Compose(solidAtlas(a, tilePx), a, g, tilePx, indices)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if b := plane.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Errorf("plane size %dx%d, want 256x256", b.Dx(), b.Dy())
	}
}

func TestComposeIndexOutOfRange(t *testing.T) {
	a := atlas.Atlas{Cols: 4, Rows: 4}
	g := atlas.Grid{Cols: 2, Rows: 2}

	_, err := Compose(solidAtlas(a, 8), a, g, 8, []uint32{0, 1, 2, 16})
	if err == nil {
		t.Fatal("expected error for index past atlas capacity")
	}
}

func TestComposeWrongIndexCount(t *testing.T) {
	a := atlas.Atlas{Cols: 4, Rows: 4}
	g := atlas.Grid{Cols: 2, Rows: 2}

	_, err := Compose(solidAtlas(a, 8), a, g, 8, []uint32{0, 1, 2})
	if err == nil {
		t.Fatal("expected error for short index buffer")
	}
}

func TestComposeAtlasSizeMismatch(t *testing.T) {
	a := atlas.Atlas{Cols: 4, Rows: 4}
	g := atlas.Grid{Cols: 2, Rows: 2}

	wrong := image.NewRGBA(image.Rect(0, 0, 24, 32))
	_, err := Compose(wrong, a, g, 8, []uint32{0, 1, 2, 3})
	if err == nil {
		t.Fatal("expected error for atlas image size mismatch")
	}
}
