// Package tilemap composes the addressable background plane image from
// a tile-index buffer and the atlas image on the CPU. The result is
// uploaded once and re-sampled every frame by the background pipeline,
// so per-tile work is paid only when the map changes. The grid pipeline
// is the alternative: no composition step, every UV recomputed per draw.
package tilemap

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/pixelbeat/dotmatrix/pkg/atlas"
)

// Compose renders the tile-index buffer into a plane image of
// grid-cols*tilePx by grid-rows*tilePx pixels. The atlas image must
// match the atlas grid at the same tile size, the index buffer must
// hold one entry per cell, and every index must fit the atlas.
func Compose(atlasImg image.Image, a atlas.Atlas, g atlas.Grid, tilePx int, indices []uint32) (*image.RGBA, error) {
	if tilePx < 1 {
		return nil, fmt.Errorf("invalid tile size %d", tilePx)
	}

	ab := atlasImg.Bounds()
	if ab.Dx() != a.Cols*tilePx || ab.Dy() != a.Rows*tilePx {
		return nil, fmt.Errorf("atlas image %dx%d does not match %dx%d tiles of %d px",
			ab.Dx(), ab.Dy(), a.Cols, a.Rows, tilePx)
	}
	if len(indices) != g.Cells() {
		return nil, fmt.Errorf("index buffer holds %d entries, grid has %d cells",
			len(indices), g.Cells())
	}

	capacity := uint32(a.Capacity())
	plane := image.NewRGBA(image.Rect(0, 0, g.Cols*tilePx, g.Rows*tilePx))

	for i, idx := range indices {
		if idx >= capacity {
			return nil, fmt.Errorf("cell %d: tile index %d out of range (atlas holds %d tiles)",
				i, idx, capacity)
		}

		col, row := g.Cell(uint32(i))
		srcCol := int(idx) % a.Cols
		srcRow := int(idx) / a.Cols

		dst := image.Rect(col*tilePx, row*tilePx, (col+1)*tilePx, (row+1)*tilePx)
		src := ab.Min.Add(image.Pt(srcCol*tilePx, srcRow*tilePx))
		draw.Draw(plane, dst, atlasImg, src, draw.Src)
	}

	return plane, nil
}
