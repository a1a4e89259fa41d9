// Package main is the demo host for the dotmatrix compositor. It owns
// the window, uploads per-frame buffers, and issues the draws; the
// compositor pipelines only consume them.
package main

import (
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/pixelbeat/dotmatrix/internal/config"
	"github.com/pixelbeat/dotmatrix/internal/engine/compositor"
	"github.com/pixelbeat/dotmatrix/internal/engine/display"
	"github.com/pixelbeat/dotmatrix/internal/engine/input"
	"github.com/pixelbeat/dotmatrix/internal/engine/tilemap"
	"github.com/pixelbeat/dotmatrix/internal/engine/window"
	"github.com/pixelbeat/dotmatrix/internal/logger"
	"github.com/pixelbeat/dotmatrix/pkg/atlas"
	"github.com/pixelbeat/dotmatrix/pkg/screen"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== dotmatrix ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "dotmatrix",
		VirtualW:   screen.WidthPx,
		VirtualH:   screen.HeightPx,
		Scale:      cfg.Display.Scale,
		Fullscreen: cfg.Display.Fullscreen,
		VSync:      cfg.Display.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	scr := screen.DMG
	atl := atlas.Atlas{Cols: 16, Rows: 16}
	grid := atlas.Grid{Cols: 32, Rows: 32}

	disp, err := display.New(display.Config{Screen: scr, Atlas: atl, Grid: grid})
	if err != nil {
		return err
	}
	defer disp.Close()

	// Synthetic assets standing in for decoded video memory.
	atlasImg := buildDemoAtlas(atl, scr.TilePx)
	if err := disp.SetAtlas(atlasImg); err != nil {
		return err
	}

	indices := buildDemoMap(grid, atl)
	switch cfg.Demo.Pipeline {
	case "plane":
		plane, err := tilemap.Compose(atlasImg, atl, grid, scr.TilePx, indices)
		if err != nil {
			return err
		}
		if err := disp.SetPlane(plane); err != nil {
			return err
		}
	case "grid":
		if err := disp.SetTiles(indices); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown pipeline %q (want plane or grid)", cfg.Demo.Pipeline)
	}

	sprites := newDemoSprites(cfg.Demo.Sprites, atl)
	batch := compositor.NewObjectBatch(atl)
	in := input.New()

	logger.Info("demo running",
		zap.String("pipeline", cfg.Demo.Pipeline),
		zap.Int("sprites", cfg.Demo.Sprites),
		zap.Bool("rotate", cfg.Demo.Rotate),
	)

	var scrollX, scrollY uint32
	var angle float32
	autoScroll := true
	frameMS := uint32(0)
	if cfg.Display.FPSLimit > 0 {
		frameMS = uint32(1000 / cfg.Display.FPSLimit)
	}

	for {
		if in.Update() {
			return nil
		}
		if in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			return nil
		}
		if in.IsKeyPressed(sdl.SCANCODE_SPACE) {
			autoScroll = !autoScroll
		}
		if in.IsKeyPressed(sdl.SCANCODE_F12) {
			if err := saveScreenshot(disp); err != nil {
				logger.Warn("screenshot failed", zap.Error(err))
			}
		}

		// Scroll offsets are raw pixel counts; wraparound is the
		// background sampler's job, not ours.
		if autoScroll {
			scrollX++
			if scrollX%3 == 0 {
				scrollY++
			}
		}
		if in.IsKeyHeld(sdl.SCANCODE_RIGHT) {
			scrollX++
		}
		if in.IsKeyHeld(sdl.SCANCODE_LEFT) {
			scrollX--
		}
		if in.IsKeyHeld(sdl.SCANCODE_DOWN) {
			scrollY++
		}
		if in.IsKeyHeld(sdl.SCANCODE_UP) {
			scrollY--
		}

		sprites.step()
		if err := sprites.fill(batch); err != nil {
			return err
		}

		disp.Begin()
		switch cfg.Demo.Pipeline {
		case "plane":
			if err := disp.DrawBackground(scrollX, scrollY); err != nil {
				return err
			}
		case "grid":
			if err := disp.DrawTileMap(); err != nil {
				return err
			}
		}
		if err := disp.DrawObjects(batch); err != nil {
			return err
		}

		if cfg.Demo.Rotate {
			angle += 0.01
		}
		w, h := win.DrawableSize()
		disp.Present(w, h, angle)

		win.SwapBuffers()
		if frameMS > 0 {
			sdl.Delay(frameMS)
		}
	}
}

// saveScreenshot writes the current virtual screen to a timestamped PNG
// in the working directory.
func saveScreenshot(disp *display.Display) error {
	name := fmt.Sprintf("dotmatrix-%s.png", time.Now().Format("20060102-150405"))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, disp.Capture()); err != nil {
		return err
	}
	logger.Info("screenshot saved", zap.String("file", name))
	return nil
}

// demoSprites animates a set of sprites drifting across the display.
// Positions use the stored-coordinate convention: (8,16) is the
// top-left of the visible area, smaller values hang partly off-screen.
type demoSprites struct {
	x, y   []uint32
	vx, vy []int32
	id     []uint32
}

func newDemoSprites(count int, atl atlas.Atlas) *demoSprites {
	s := &demoSprites{
		x:  make([]uint32, count),
		y:  make([]uint32, count),
		vx: make([]int32, count),
		vy: make([]int32, count),
		id: make([]uint32, count),
	}
	for i := 0; i < count; i++ {
		s.x[i] = uint32(8 + (i*37)%152)
		s.y[i] = uint32(16 + (i*53)%136)
		s.vx[i] = int32(1 + i%3)
		s.vy[i] = int32(1 + (i+1)%2)
		if i%2 == 0 {
			s.vx[i] = -s.vx[i]
		}
		s.id[i] = uint32(i % atl.Capacity())
	}
	return s
}

// step bounces every sprite inside the stored-coordinate window that
// keeps it at least partly visible.
func (s *demoSprites) step() {
	const (
		minX, maxX = 1, 167 // visible span plus the anchor bias
		minY, maxY = 9, 159
	)
	for i := range s.x {
		nx := int32(s.x[i]) + s.vx[i]
		if nx < minX || nx > maxX {
			s.vx[i] = -s.vx[i]
			nx = int32(s.x[i]) + s.vx[i]
		}
		ny := int32(s.y[i]) + s.vy[i]
		if ny < minY || ny > maxY {
			s.vy[i] = -s.vy[i]
			ny = int32(s.y[i]) + s.vy[i]
		}
		s.x[i] = uint32(nx)
		s.y[i] = uint32(ny)
	}
}

// fill rebuilds the batch from the sprite arrays, ascending index
// order; later sprites paint over earlier ones.
func (s *demoSprites) fill(batch *compositor.ObjectBatch) error {
	return batch.Load(s.x, s.y, s.id)
}
