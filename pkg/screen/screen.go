// Package screen provides the pixel-to-NDC coordinate mapping for a
// fixed-size virtual display, plus the shared quad geometry used by
// every render pipeline.
package screen

import "github.com/pixelbeat/dotmatrix/pkg/math"

const (
	// WidthPx and HeightPx are the default virtual display dimensions.
	WidthPx  = 160
	HeightPx = 144

	// TilePx is the edge length in pixels of one atlas tile and one object.
	TilePx = 8

	// PlanePx is the size of the addressable background plane in each axis.
	// Scroll offsets wrap at this boundary.
	PlanePx = 256
)

// Stored object coordinates carry the hardware's fixed anchor bias: a
// sprite written at (0,0) sits fully above and left of the visible area.
// The bias is removed during placement so (x, y) addresses the sprite's
// top-left pixel.
const (
	objectAnchorX = -8
	objectAnchorY = 16
)

// Screen maps pixel-space quantities onto normalized device coordinates
// for a WidthPx x HeightPx virtual display.
type Screen struct {
	WidthPx  int
	HeightPx int
	TilePx   int
}

// DMG is the default handheld display geometry.
var DMG = Screen{WidthPx: WidthPx, HeightPx: HeightPx, TilePx: TilePx}

// BasePosition is the NDC point a zero pixel offset maps to: the
// top-left corner of the display.
func (s Screen) BasePosition() math.Vec2 {
	return math.Vec2{X: -1, Y: 1}
}

// PixelToNDC converts a pixel-space offset into an NDC offset. Pixel Y
// grows downward while NDC Y grows upward, hence the sign flip. The
// result is a delta; callers add BasePosition or an instance origin.
func (s Screen) PixelToNDC(px, py float32) math.Vec2 {
	return math.Vec2{
		X: px / (float32(s.WidthPx) / 2),
		Y: -py / (float32(s.HeightPx) / 2),
	}
}

// NDCToPixel inverts PixelToNDC.
func (s Screen) NDCToPixel(d math.Vec2) (px, py float32) {
	return d.X * float32(s.WidthPx) / 2, -d.Y * float32(s.HeightPx) / 2
}

// ObjectNDC places a sprite's stored position: the anchor bias is
// subtracted so the result is the NDC point of the sprite's top-left
// pixel. No clamping is done; positions outside [-1,1] are clipped by
// the rasterizer, never rejected here.
func (s Screen) ObjectNDC(x, y uint32) math.Vec2 {
	return s.BasePosition().
		Add(s.PixelToNDC(float32(x), float32(y))).
		Sub(s.PixelToNDC(objectAnchorX, objectAnchorY))
}

// ObjectAnchorPx returns the anchor bias carried by stored object
// coordinates, in pixels.
func (s Screen) ObjectAnchorPx() math.Vec2 {
	return math.Vec2{X: objectAnchorX, Y: objectAnchorY}
}

// ObjectScale is the per-axis factor shrinking the unit quad to one
// tile-sized object.
func (s Screen) ObjectScale() math.Vec2 {
	return math.Vec2{
		X: float32(s.TilePx) / float32(s.WidthPx),
		Y: float32(s.TilePx) / float32(s.HeightPx),
	}
}

// ViewportUV is the fraction of the background plane covered by the
// visible display: the crop window the background pipeline samples.
func (s Screen) ViewportUV() math.Vec2 {
	return math.Vec2{
		X: float32(s.WidthPx) / PlanePx,
		Y: float32(s.HeightPx) / PlanePx,
	}
}

// ScrollUV converts a scroll offset in texels into a texcoord bias.
// Offsets wrap at the plane boundary; values equal mod PlanePx produce
// the same bias.
func ScrollUV(sx, sy uint32) math.Vec2 {
	return math.Vec2{
		X: float32(sx%PlanePx) / PlanePx,
		Y: float32(sy%PlanePx) / PlanePx,
	}
}
