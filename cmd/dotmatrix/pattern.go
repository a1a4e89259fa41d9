package main

import (
	"image"
	"image/color"

	"github.com/pixelbeat/dotmatrix/pkg/atlas"
)

// Four-shade palette in the style of the original dot-matrix display.
var shades = [4]color.RGBA{
	{R: 0x9b, G: 0xbc, B: 0x0f, A: 0xff},
	{R: 0x8b, G: 0xac, B: 0x0f, A: 0xff},
	{R: 0x30, G: 0x62, B: 0x30, A: 0xff},
	{R: 0x0f, G: 0x38, B: 0x0f, A: 0xff},
}

// buildDemoAtlas fills every atlas tile with a pattern derived from its
// index, so each tile is visually distinguishable on screen.
func buildDemoAtlas(a atlas.Atlas, tilePx int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, a.Cols*tilePx, a.Rows*tilePx))

	for idx := 0; idx < a.Capacity(); idx++ {
		ox := (idx % a.Cols) * tilePx
		oy := (idx / a.Cols) * tilePx
		base := idx % 4
		for y := 0; y < tilePx; y++ {
			for x := 0; x < tilePx; x++ {
				shade := base
				// One-pixel border in the darkest shade, diagonal
				// banding inside keyed to the tile index.
				if x == 0 || y == 0 || x == tilePx-1 || y == tilePx-1 {
					shade = 3
				} else if (x+y+idx)%4 == 0 {
					shade = (base + 2) % 4
				}
				img.SetRGBA(ox+x, oy+y, shades[shade])
			}
		}
	}

	return img
}

// buildDemoMap produces a tile-index buffer with a repeating pattern
// over the whole grid.
func buildDemoMap(g atlas.Grid, a atlas.Atlas) []uint32 {
	indices := make([]uint32, g.Cells())
	for i := range indices {
		col, row := g.Cell(uint32(i))
		indices[i] = uint32((col + row*3) % a.Capacity())
	}
	return indices
}
