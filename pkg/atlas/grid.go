package atlas

import "github.com/pixelbeat/dotmatrix/pkg/math"

// Grid arranges Cols x Rows instances over the full NDC square, one
// quad per tilemap cell.
type Grid struct {
	Cols, Rows int
}

// Cells returns the instance count of one full-grid draw.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Cell returns the column and row of instance i, filling left to
// right, top to bottom.
func (g Grid) Cell(i uint32) (col, row int) {
	return int(i % uint32(g.Cols)), int(i / uint32(g.Cols))
}

// CellScale is the per-axis factor shrinking the unit quad to one cell.
func (g Grid) CellScale() math.Vec2 {
	return math.Vec2{X: 1 / float32(g.Cols), Y: 1 / float32(g.Rows)}
}

// CellCenter returns the NDC center of a cell: the square's top-left
// corner inset by half a cell, advanced one cell width per column and
// one cell height per row.
func (g Grid) CellCenter(col, row int) math.Vec2 {
	s := g.CellScale()
	return math.Vec2{
		X: -1 + s.X + float32(col)*2*s.X,
		Y: 1 - s.Y - float32(row)*2*s.Y,
	}
}
