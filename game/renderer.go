package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"portfoliohud/hud"
)

// labelFace is the HUD font, shared by the background and the overlay.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

// Renderer draws hud.Canvas primitives onto an ebiten image. Coordinates are
// logical pixels and are multiplied by scale on the way out.
type Renderer struct {
	dst   *ebiten.Image
	scale float64
}

// NewRenderer targets dst. A scale <= 0 is treated as 1.
func NewRenderer(dst *ebiten.Image, scale float64) *Renderer {
	r := &Renderer{}
	r.Retarget(dst, scale)
	return r
}

// Retarget points the renderer at a new destination, e.g. this frame's screen.
func (r *Renderer) Retarget(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	r.dst = dst
	r.scale = scale
}

func (r *Renderer) px(v float64) float32 { return float32(v * r.scale) }

func (r *Renderer) Clear() {
	r.dst.Clear()
}

func (r *Renderer) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(r.dst, r.px(x), r.px(y), r.px(w), r.px(h), clr, true)
}

func (r *Renderer) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(r.dst, r.px(x), r.px(y), r.px(w), r.px(h), r.px(width), clr, true)
}

func (r *Renderer) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(r.dst, r.px(x0), r.px(y0), r.px(x1), r.px(y1), r.px(width), clr, true)
}

func (r *Renderer) StrokePolyline(pts []hud.Point, width float64, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		r.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, clr)
	}
}

func (r *Renderer) FillCircle(cx, cy, radius float64, clr color.Color) {
	vector.DrawFilledCircle(r.dst, r.px(cx), r.px(cy), r.px(radius), clr, true)
}

// DrawText places s with its baseline at y.
func (r *Renderer) DrawText(s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(0, -labelFace.Metrics().HAscent)
	op.GeoM.Scale(r.scale, r.scale)
	op.GeoM.Translate(x*r.scale, y*r.scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.dst, s, labelFace, op)
}

// ImageSurface is a hud.Surface backed by an offscreen ebiten image that the
// game blits to the screen every Draw.
type ImageSurface struct {
	*Renderer
	width, height float64
}

// NewImageSurface creates an empty surface; the first Resize allocates it.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{Renderer: &Renderer{scale: 1}}
}

// Resize reallocates the backing image when its physical size changes.
func (s *ImageSurface) Resize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	pw := max(1, int(math.Ceil(width*scale)))
	ph := max(1, int(math.Ceil(height*scale)))

	s.width, s.height = width, height
	if s.dst != nil {
		b := s.dst.Bounds()
		if b.Dx() == pw && b.Dy() == ph {
			s.scale = scale
			return
		}
		s.dst.Deallocate()
	}
	s.Retarget(ebiten.NewImage(pw, ph), scale)
}

// Image returns the backing image, or nil before the first Resize.
func (s *ImageSurface) Image() *ebiten.Image { return s.dst }

// Size returns the logical size.
func (s *ImageSurface) Size() (float64, float64) { return s.width, s.height }
