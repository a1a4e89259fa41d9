// Package display owns the OpenGL state and the compositor pipelines
// for the virtual screen.
package display

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/pixelbeat/dotmatrix/internal/engine/compositor"
	"github.com/pixelbeat/dotmatrix/internal/engine/framebuffer"
	"github.com/pixelbeat/dotmatrix/internal/engine/texture"
	"github.com/pixelbeat/dotmatrix/internal/logger"
	"github.com/pixelbeat/dotmatrix/pkg/atlas"
	"github.com/pixelbeat/dotmatrix/pkg/screen"
)

// Config holds the display geometry.
type Config struct {
	Screen screen.Screen
	Atlas  atlas.Atlas
	Grid   atlas.Grid
}

// Display assembles the four compositor pipelines over one GL context.
// Compositing uses no depth test: draw order is priority order, later
// draws overwrite earlier ones at overlapping pixels. All compositing
// happens at the virtual resolution in an offscreen target; Present
// scales it to the window through the blit pipeline.
type Display struct {
	cfg Config

	blit       *compositor.Blit
	background *compositor.Background
	objects    *compositor.Objects
	gridMap    *compositor.GridMap

	virtual  *framebuffer.Framebuffer
	atlasTex *texture.Texture
	planeTex *texture.Texture
}

// New initializes OpenGL and creates all pipelines.
// Must be called after the GL context exists.
func New(cfg Config) (*Display, error) {
	d := &Display{cfg: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Disable(gl.DEPTH_TEST)

	var err error
	if d.virtual, err = framebuffer.New(cfg.Screen.WidthPx, cfg.Screen.HeightPx); err != nil {
		return nil, err
	}
	if d.blit, err = compositor.NewBlit(); err != nil {
		d.Close()
		return nil, err
	}
	if d.background, err = compositor.NewBackground(cfg.Screen); err != nil {
		d.Close()
		return nil, err
	}
	if d.objects, err = compositor.NewObjects(cfg.Screen, cfg.Atlas); err != nil {
		d.Close()
		return nil, err
	}
	if d.gridMap, err = compositor.NewGridMap(cfg.Grid, cfg.Atlas); err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

// SetAtlas uploads the tile atlas image. Sampled strictly inside [0,1],
// so clamp addressing.
func (d *Display) SetAtlas(img image.Image) error {
	if d.atlasTex != nil {
		d.atlasTex.Destroy()
	}
	tex, err := texture.FromImage(img, texture.Clamp)
	if err != nil {
		return fmt.Errorf("atlas texture: %w", err)
	}
	d.atlasTex = tex
	return nil
}

// SetPlane uploads or replaces the composed background plane. Repeat
// addressing carries the mod-256 scroll wraparound.
func (d *Display) SetPlane(img *image.RGBA) error {
	if d.planeTex != nil {
		if err := d.planeTex.Update(img); err == nil {
			return nil
		}
		d.planeTex.Destroy()
	}
	tex, err := texture.FromImage(img, texture.Repeat)
	if err != nil {
		return fmt.Errorf("plane texture: %w", err)
	}
	d.planeTex = tex
	return nil
}

// Begin targets the virtual framebuffer and clears it for a new frame.
func (d *Display) Begin() {
	d.virtual.Bind()
	d.virtual.Clear(0.1, 0.2, 0.3, 1.0)
}

// Present scales the composited virtual screen onto the window surface
// through the blit pipeline. A non-zero angle drives the rotation demo
// uniform; zero presents unmodified.
func (d *Display) Present(width, height int, angle float32) {
	d.virtual.Unbind()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	d.blit.Draw(d.virtual.Texture(), angle)
}

// Capture reads back the composited virtual screen as an image.
func (d *Display) Capture() *image.RGBA {
	return d.virtual.ReadPixels()
}

// DrawBackground draws the scrolling viewport onto the background plane.
func (d *Display) DrawBackground(scrollX, scrollY uint32) error {
	if d.planeTex == nil {
		return fmt.Errorf("no background plane uploaded")
	}
	d.background.Draw(d.planeTex, scrollX, scrollY)
	return nil
}

// DrawObjects uploads the batch and draws one instance per sprite.
func (d *Display) DrawObjects(batch *compositor.ObjectBatch) error {
	if d.atlasTex == nil {
		return fmt.Errorf("no atlas uploaded")
	}
	d.objects.SetBatch(batch)
	d.objects.Draw(d.atlasTex)
	return nil
}

// SetTiles replaces the grid pipeline's tile index buffer.
func (d *Display) SetTiles(indices []uint32) error {
	return d.gridMap.SetTiles(indices)
}

// DrawTileMap draws the whole tilemap in one instanced draw.
func (d *Display) DrawTileMap() error {
	if d.atlasTex == nil {
		return fmt.Errorf("no atlas uploaded")
	}
	d.gridMap.Draw(d.atlasTex)
	return nil
}

// Close releases all pipelines and textures.
func (d *Display) Close() {
	logger.Info("closing display")
	if d.blit != nil {
		d.blit.Destroy()
		d.blit = nil
	}
	if d.background != nil {
		d.background.Destroy()
		d.background = nil
	}
	if d.objects != nil {
		d.objects.Destroy()
		d.objects = nil
	}
	if d.gridMap != nil {
		d.gridMap.Destroy()
		d.gridMap = nil
	}
	if d.virtual != nil {
		d.virtual.Destroy()
		d.virtual = nil
	}
	if d.atlasTex != nil {
		d.atlasTex.Destroy()
		d.atlasTex = nil
	}
	if d.planeTex != nil {
		d.planeTex.Destroy()
		d.planeTex = nil
	}
}
