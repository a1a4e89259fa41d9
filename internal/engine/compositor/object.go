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

// objectStride is the byte size of one instance: x, y, sprite id.
const objectStride = 3 * 4

// Objects draws one tile-sized quad per sprite instance. Each instance
// is placed from its pixel position and textured from the atlas tile
// its sprite id selects. Instances draw in ascending index order with
// no depth test, so overlap resolves by painter's algorithm.
type Objects struct {
	program uint32

	locScreen   int32
	locObjScale int32
	locAnchor   int32
	locAtlas    int32
	locAtlasTex int32

	vao uint32
	vbo uint32

	instanceVBO uint32
	capacity    int
	count       int32

	scr screen.Screen
	atl atlas.Atlas
}

// NewObjects creates the instanced object pipeline.
func NewObjects(s screen.Screen, a atlas.Atlas) (*Objects, error) {
	program, err := shader.CompileProgram(shaders.ObjectVertexShader, shaders.ObjectFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("object shader: %w", err)
	}

	o := &Objects{program: program, scr: s, atl: a}
	o.locScreen = shader.GetUniform(program, "uScreen")
	o.locObjScale = shader.GetUniform(program, "uObjScale")
	o.locAnchor = shader.GetUniform(program, "uAnchor")
	o.locAtlas = shader.GetUniform(program, "uAtlas")
	o.locAtlasTex = shader.GetUniform(program, "uAtlasTex")

	o.vao, o.vbo = newQuad()

	// Per-instance attributes: pixel position at 2, sprite id at 3,
	// advancing once per instance.
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.instanceVBO)
	gl.VertexAttribIPointerWithOffset(2, 2, gl.UNSIGNED_INT, objectStride, 0)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribDivisor(2, 1)
	gl.VertexAttribIPointerWithOffset(3, 1, gl.UNSIGNED_INT, objectStride, 2*4)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribDivisor(3, 1)
	gl.BindVertexArray(0)

	return o, nil
}

// SetBatch uploads the batch's instance data, growing the GPU buffer
// when the batch outgrows it. The batch is read, never mutated.
func (o *Objects) SetBatch(b *ObjectBatch) {
	o.count = int32(b.Len())
	if o.count == 0 {
		return
	}

	data := b.interleave()
	gl.BindBuffer(gl.ARRAY_BUFFER, o.instanceVBO)
	if b.Len() > o.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
		o.capacity = b.Len()
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders the uploaded instances. Zero instances draw nothing.
func (o *Objects) Draw(atlasTex *texture.Texture) {
	if o.count == 0 {
		return
	}

	gl.UseProgram(o.program)
	gl.Uniform2f(o.locScreen, float32(o.scr.WidthPx), float32(o.scr.HeightPx))
	scale := o.scr.ObjectScale()
	gl.Uniform2f(o.locObjScale, scale.X, scale.Y)
	anchor := o.scr.ObjectAnchorPx()
	gl.Uniform2f(o.locAnchor, anchor.X, anchor.Y)
	gl.Uniform2ui(o.locAtlas, uint32(o.atl.Cols), uint32(o.atl.Rows))

	atlasTex.Bind(0)
	gl.Uniform1i(o.locAtlasTex, 0)

	gl.BindVertexArray(o.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, screen.QuadVertexCount, o.count)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (o *Objects) Destroy() {
	destroyQuad(&o.vao, &o.vbo)
	if o.instanceVBO != 0 {
		gl.DeleteBuffers(1, &o.instanceVBO)
		o.instanceVBO = 0
	}
	if o.program != 0 {
		gl.DeleteProgram(o.program)
		o.program = 0
	}
}
