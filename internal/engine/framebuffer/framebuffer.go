// Package framebuffer provides the offscreen render target for the
// virtual display. The compositor pipelines draw into it at the native
// resolution; the blit pipeline then presents it scaled to the window.
package framebuffer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pixelbeat/dotmatrix/internal/engine/texture"
)

// Framebuffer is a color-only offscreen target. Compositing uses no
// depth test, so there is no depth attachment.
type Framebuffer struct {
	fbo    uint32
	color  *texture.Texture
	width  int32
	height int32
}

// New creates an offscreen target of the given fixed size.
func New(width, height int) (*Framebuffer, error) {
	color, err := texture.New(width, height, texture.Clamp)
	if err != nil {
		return nil, fmt.Errorf("framebuffer color attachment: %w", err)
	}

	fb := &Framebuffer{
		color:  color,
		width:  int32(width),
		height: int32(height),
	}

	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, color.ID(), 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	return fb, nil
}

// Bind makes this framebuffer the render target and sets the viewport
// to its native size.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Unbind restores the default framebuffer.
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Clear fills the target with the given color. The framebuffer must be
// bound.
func (fb *Framebuffer) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Texture returns the color attachment for sampling. Nearest filtering,
// so presentation at any integer scale stays pixel-exact.
func (fb *Framebuffer) Texture() *texture.Texture {
	return fb.color
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return int(fb.width), int(fb.height)
}

// ReadPixels reads the color attachment into an RGBA image, flipping
// rows so the result has its origin at the top-left.
func (fb *Framebuffer) ReadPixels() *image.RGBA {
	w, h := int(fb.width), int(fb.height)
	raw := make([]byte, w*h*4)

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(raw))
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rowBytes := w * 4
	for y := 0; y < h; y++ {
		src := raw[(h-1-y)*rowBytes : (h-y)*rowBytes]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowBytes], src)
	}
	return img
}

// Destroy releases the framebuffer and its color attachment.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.color != nil {
		fb.color.Destroy()
		fb.color = nil
	}
}
