// Package compositor implements the four render pipelines that
// composite the virtual display: full-screen blit, scrolling
// background, per-instance objects, and the grid-instanced tilemap.
//
// All pipelines share the same unit quad geometry and differ only in
// how they place it and where the atlas index comes from. Buffers are
// read-only inputs to a draw; the host finishes writing them before
// submitting, relying on GL queue ordering.
package compositor

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pixelbeat/dotmatrix/pkg/screen"
)

// newQuad uploads the shared quad into a fresh VAO/VBO pair with
// position at attribute 0 and texcoord at attribute 1.
func newQuad() (vao, vbo uint32) {
	verts := screen.QuadVertices()

	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, screen.QuadStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, screen.QuadStride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return vao, vbo
}

// destroyQuad releases a VAO/VBO pair created by newQuad.
func destroyQuad(vao, vbo *uint32) {
	if *vao != 0 {
		gl.DeleteVertexArrays(1, vao)
		*vao = 0
	}
	if *vbo != 0 {
		gl.DeleteBuffers(1, vbo)
		*vbo = 0
	}
}
