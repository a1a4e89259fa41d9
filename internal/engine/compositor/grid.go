package compositor

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pixelbeat/dotmatrix/internal/engine/compositor/shaders"
	"github.com/pixelbeat/dotmatrix/internal/engine/shader"
	"github.com/pixelbeat/dotmatrix/internal/engine/texture"
	"github.com/pixelbeat/dotmatrix/pkg/atlas"
	"github.com/pixelbeat/dotmatrix/pkg/screen"
)

// GridMap draws a whole tilemap as one instanced draw: one quad per
// grid cell, each sampling the atlas tile its index buffer entry
// selects. Unlike Background, every UV is recomputed from the live
// index buffer each draw, so updates are free but draws touch every
// cell.
type GridMap struct {
	program uint32

	locGrid     int32
	locAtlas    int32
	locAtlasTex int32

	vao uint32
	vbo uint32

	indexVBO uint32
	count    int32

	grid atlas.Grid
	atl  atlas.Atlas
}

// NewGridMap creates the grid-instanced tilemap pipeline.
func NewGridMap(g atlas.Grid, a atlas.Atlas) (*GridMap, error) {
	program, err := shader.CompileProgram(shaders.GridVertexShader, shaders.GridFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grid shader: %w", err)
	}

	gm := &GridMap{program: program, grid: g, atl: a}
	gm.locGrid = shader.GetUniform(program, "uGrid")
	gm.locAtlas = shader.GetUniform(program, "uAtlas")
	gm.locAtlasTex = shader.GetUniform(program, "uAtlasTex")

	gm.vao, gm.vbo = newQuad()

	// Per-instance tile index at attribute 2.
	gl.BindVertexArray(gm.vao)
	gl.GenBuffers(1, &gm.indexVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.indexVBO)
	gl.BufferData(gl.ARRAY_BUFFER, g.Cells()*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribIPointerWithOffset(2, 1, gl.UNSIGNED_INT, 4, 0)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribDivisor(2, 1)
	gl.BindVertexArray(0)

	return gm, nil
}

// SetTiles uploads a full index buffer, one entry per grid cell. The
// length must match the cell count and every index must fit the atlas.
func (gm *GridMap) SetTiles(indices []uint32) error {
	if len(indices) != gm.grid.Cells() {
		return fmt.Errorf("index buffer holds %d entries, grid has %d cells",
			len(indices), gm.grid.Cells())
	}
	capacity := uint32(gm.atl.Capacity())
	for i, idx := range indices {
		if idx >= capacity {
			return fmt.Errorf("cell %d: tile index %d out of range (atlas holds %d tiles)",
				i, idx, capacity)
		}
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, gm.indexVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(indices)*4, gl.Ptr(indices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gm.count = int32(len(indices))
	return nil
}

// Draw renders the tilemap. Nothing is drawn until SetTiles succeeds.
func (gm *GridMap) Draw(atlasTex *texture.Texture) {
	if gm.count == 0 {
		return
	}

	gl.UseProgram(gm.program)
	gl.Uniform2ui(gm.locGrid, uint32(gm.grid.Cols), uint32(gm.grid.Rows))
	gl.Uniform2ui(gm.locAtlas, uint32(gm.atl.Cols), uint32(gm.atl.Rows))

	atlasTex.Bind(0)
	gl.Uniform1i(gm.locAtlasTex, 0)

	gl.BindVertexArray(gm.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, screen.QuadVertexCount, gm.count)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (gm *GridMap) Destroy() {
	destroyQuad(&gm.vao, &gm.vbo)
	if gm.indexVBO != 0 {
		gl.DeleteBuffers(1, &gm.indexVBO)
		gm.indexVBO = 0
	}
	if gm.program != 0 {
		gl.DeleteProgram(gm.program)
		gm.program = 0
	}
}
