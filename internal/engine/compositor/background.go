package compositor

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pixelbeat/dotmatrix/internal/engine/compositor/shaders"
	"github.com/pixelbeat/dotmatrix/internal/engine/shader"
	"github.com/pixelbeat/dotmatrix/internal/engine/texture"
	"github.com/pixelbeat/dotmatrix/pkg/screen"
)

// Background draws the visible viewport onto the background plane
// texture, biased by a wrapping scroll offset. The plane must be bound
// with repeat addressing; scroll values past the plane boundary wrap
// through the sampler, so offsets equal mod 256 render identically.
//
// This is the amortized tilemap path: the plane is recomposed only when
// the map changes, while the grid pipeline recomputes every UV per draw.
type Background struct {
	program uint32

	locScroll   int32
	locViewport int32
	locPlane    int32

	vao uint32
	vbo uint32

	viewportX float32
	viewportY float32
}

// NewBackground creates the scrolling background pipeline for the given
// display geometry.
func NewBackground(s screen.Screen) (*Background, error) {
	program, err := shader.CompileProgram(shaders.BackgroundVertexShader, shaders.BackgroundFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("background shader: %w", err)
	}

	viewport := s.ViewportUV()
	bg := &Background{
		program:   program,
		viewportX: viewport.X,
		viewportY: viewport.Y,
	}
	bg.locScroll = shader.GetUniform(program, "uScroll")
	bg.locViewport = shader.GetUniform(program, "uViewport")
	bg.locPlane = shader.GetUniform(program, "uPlane")
	bg.vao, bg.vbo = newQuad()

	return bg, nil
}

// Draw renders the viewport at the given scroll offset in texels.
func (bg *Background) Draw(plane *texture.Texture, scrollX, scrollY uint32) {
	gl.UseProgram(bg.program)
	// Reduce before upload: huge raw offsets would lose their
	// fractional texel when the shader converts to float.
	gl.Uniform2ui(bg.locScroll, scrollX%screen.PlanePx, scrollY%screen.PlanePx)
	gl.Uniform2f(bg.locViewport, bg.viewportX, bg.viewportY)

	plane.Bind(0)
	gl.Uniform1i(bg.locPlane, 0)

	gl.BindVertexArray(bg.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, screen.QuadVertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (bg *Background) Destroy() {
	destroyQuad(&bg.vao, &bg.vbo)
	if bg.program != 0 {
		gl.DeleteProgram(bg.program)
		bg.program = 0
	}
}
