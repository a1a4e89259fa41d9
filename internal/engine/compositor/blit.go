package compositor

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pixelbeat/dotmatrix/internal/engine/compositor/shaders"
	"github.com/pixelbeat/dotmatrix/internal/engine/shader"
	"github.com/pixelbeat/dotmatrix/internal/engine/texture"
	"github.com/pixelbeat/dotmatrix/pkg/screen"
)

// Blit draws one quad sampling an entire bound texture; used to present
// precomposited output. The angle uniform drives the rotation demo; a
// zero angle samples the texture unmodified.
type Blit struct {
	program uint32

	locAngle   int32
	locTexture int32

	vao uint32
	vbo uint32
}

// NewBlit creates the full-screen blit pipeline.
func NewBlit() (*Blit, error) {
	program, err := shader.CompileProgram(shaders.BlitVertexShader, shaders.BlitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("blit shader: %w", err)
	}

	b := &Blit{program: program}
	b.locAngle = shader.GetUniform(program, "uAngle")
	b.locTexture = shader.GetUniform(program, "uTexture")
	b.vao, b.vbo = newQuad()

	return b, nil
}

// Draw writes the full target surface with the texture's contents.
func (b *Blit) Draw(tex *texture.Texture, angle float32) {
	gl.UseProgram(b.program)
	gl.Uniform1f(b.locAngle, angle)

	tex.Bind(0)
	gl.Uniform1i(b.locTexture, 0)

	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, screen.QuadVertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (b *Blit) Destroy() {
	destroyQuad(&b.vao, &b.vbo)
	if b.program != 0 {
		gl.DeleteProgram(b.program)
		b.program = 0
	}
}
