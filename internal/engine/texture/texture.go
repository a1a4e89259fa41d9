// Package texture provides nearest-filtered 2D textures for pixel-art
// rendering.
package texture

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Wrap selects the sampler addressing mode.
type Wrap int32

const (
	// Repeat wraps coordinates past [0,1]. The scrolling background
	// plane relies on this for its mod-256 wraparound.
	Repeat Wrap = gl.REPEAT

	// Clamp pins coordinates to the edge texel; used for textures that
	// are sampled strictly inside [0,1].
	Clamp Wrap = gl.CLAMP_TO_EDGE
)

// Texture is a GPU 2D texture sampled with nearest filtering, keeping
// tile and sprite pixels crisp at any display scale.
type Texture struct {
	id     uint32
	width  int32
	height int32
}

// New creates an empty RGBA texture of the given size.
func New(width, height int, wrap Wrap) (*Texture, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}

	t := &Texture{width: int32(width), height: int32(height)}

	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.width, t.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(wrap))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(wrap))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

// FromImage creates a texture and uploads img into it.
func FromImage(img image.Image, wrap Wrap) (*Texture, error) {
	b := img.Bounds()
	t, err := New(b.Dx(), b.Dy(), wrap)
	if err != nil {
		return nil, err
	}
	if err := t.Update(img); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

// Update re-uploads pixel data. The image must match the texture size.
func (t *Texture) Update(img image.Image) error {
	b := img.Bounds()
	if int32(b.Dx()) != t.width || int32(b.Dy()) != t.height {
		return fmt.Errorf("image size %dx%d does not match texture %dx%d",
			b.Dx(), b.Dy(), t.width, t.height)
	}

	// Re-draw into a tightly packed RGBA buffer; the source may be a
	// sub-image with a wider stride or a non-RGBA format.
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, t.width, t.height,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// ID returns the GL texture name.
func (t *Texture) ID() uint32 {
	return t.id
}

// Size returns the texture dimensions.
func (t *Texture) Size() (width, height int) {
	return int(t.width), int(t.height)
}

// Destroy releases the GL texture.
func (t *Texture) Destroy() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}
