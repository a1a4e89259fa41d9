// Package atlas maps integer tile indices into UV rectangles of a
// fixed-grid texture atlas, and provides the cell placement math for
// the grid-instanced tilemap pipeline.
package atlas

import "github.com/pixelbeat/dotmatrix/pkg/math"

// Atlas describes a texture divided into Cols x Rows equal tiles.
type Atlas struct {
	Cols, Rows int
}

// Capacity returns the number of tiles the atlas holds.
func (a Atlas) Capacity() int {
	return a.Cols * a.Rows
}

// TileSize returns the UV extent of a single tile.
func (a Atlas) TileSize() math.Vec2 {
	return math.Vec2{X: 1 / float32(a.Cols), Y: 1 / float32(a.Rows)}
}

// UVRect is a tile's normalized texture rectangle.
type UVRect struct {
	U0, V0 float32
	W, H   float32
}

// Area returns the rectangle's UV area.
func (r UVRect) Area() float32 {
	return r.W * r.H
}

// MapUV places a local quad texcoord in [0,1] within the rectangle.
func (r UVRect) MapUV(local math.Vec2) math.Vec2 {
	return math.Vec2{X: r.U0 + local.X*r.W, Y: r.V0 + local.Y*r.H}
}

// TileUV maps a raw tile index to its UV rectangle, filling the atlas
// left to right, top to bottom. Integer division and modulo are on the
// unsigned index. No bounds validation: an index past capacity samples
// outside its tile, and producers must reject it before upload.
func (a Atlas) TileUV(idx uint32) UVRect {
	size := a.TileSize()
	col := idx % uint32(a.Cols)
	row := idx / uint32(a.Cols)
	return UVRect{
		U0: float32(col) * size.X,
		V0: float32(row) * size.Y,
		W:  size.X,
		H:  size.Y,
	}
}
