// Package raster draws the HUD into an in-memory image, for snapshots and
// tests that must run without a display.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"portfoliohud/hud"
)

// Surface is a hud.Surface backed by an *image.RGBA. Drawing coordinates are
// logical pixels; the backing image is scaled by the device factor.
type Surface struct {
	width, height float64
	scale         float64

	img     *image.RGBA
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

var _ hud.Surface = (*Surface)(nil)

// New creates a surface of the given logical size and scale.
func New(width, height, scale float64) *Surface {
	s := &Surface{}
	s.Resize(width, height, scale)
	return s
}

// Resize reallocates the backing image when the physical size changes.
func (s *Surface) Resize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.width, s.height, s.scale = width, height, scale

	pw, ph := s.PhysicalSize()
	if s.img != nil && s.img.Bounds().Dx() == pw && s.img.Bounds().Dy() == ph {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	scanner := rasterx.NewScannerGV(pw, ph, s.img, s.img.Bounds())
	s.filler = rasterx.NewFiller(pw, ph, scanner)
	s.stroker = rasterx.NewStroker(pw, ph, scanner)
}

// Size returns the logical size.
func (s *Surface) Size() (width, height float64) { return s.width, s.height }

// Scale returns the device scale factor.
func (s *Surface) Scale() float64 { return s.scale }

// PhysicalSize returns the backing image size in pixels.
func (s *Surface) PhysicalSize() (int, int) {
	return int(math.Ceil(s.width * s.scale)), int(math.Ceil(s.height * s.scale))
}

// Image exposes the backing pixels.
func (s *Surface) Image() *image.RGBA { return s.img }

// WritePNG encodes the backing image.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (s *Surface) p(x, y float64) fixed.Point26_6 {
	return rasterx.ToFixedP(x*s.scale, y*s.scale)
}

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	s.filler.Clear()
	s.filler.SetColor(clr)
	rasterx.AddRect(x*s.scale, y*s.scale, (x+w)*s.scale, (y+h)*s.scale, 0, s.filler)
	s.filler.Draw()
}

func (s *Surface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	s.stroke(width, clr, true, []hud.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}})
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	s.stroke(width, clr, false, []hud.Point{{X: x0, Y: y0}, {X: x1, Y: y1}})
}

func (s *Surface) StrokePolyline(pts []hud.Point, width float64, clr color.Color) {
	s.stroke(width, clr, false, pts)
}

func (s *Surface) stroke(width float64, clr color.Color, closed bool, pts []hud.Point) {
	if len(pts) < 2 {
		return
	}
	s.stroker.Clear()
	s.stroker.SetColor(clr)
	s.stroker.SetStroke(fixed.Int26_6(width*s.scale*64), 0, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Round)
	s.stroker.Start(s.p(pts[0].X, pts[0].Y))
	for _, pt := range pts[1:] {
		s.stroker.Line(s.p(pt.X, pt.Y))
	}
	s.stroker.Stop(closed)
	s.stroker.Draw()
}

func (s *Surface) FillCircle(cx, cy, r float64, clr color.Color) {
	if r <= 0 {
		return
	}
	s.filler.Clear()
	s.filler.SetColor(clr)
	rasterx.AddCircle(cx*s.scale, cy*s.scale, r*s.scale, s.filler)
	s.filler.Draw()
}

// DrawText draws s with its baseline at y using the 7x13 face. Glyphs are
// rendered at 1x and scaled by the device factor, so text keeps its logical
// size on dense surfaces.
func (s *Surface) DrawText(str string, x, y float64, clr color.Color) {
	face := basicfont.Face7x13
	adv := font.MeasureString(face, str).Ceil()
	if adv <= 0 {
		return
	}
	m := face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()

	glyphs := image.NewRGBA(image.Rect(0, 0, adv, ascent+descent))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(str)

	dr := image.Rect(
		int(math.Round(x*s.scale)),
		int(math.Round((y-float64(ascent))*s.scale)),
		int(math.Round((x+float64(adv))*s.scale)),
		int(math.Round((y+float64(descent))*s.scale)),
	)
	draw.NearestNeighbor.Scale(s.img, dr, glyphs, glyphs.Bounds(), draw.Over, nil)
}
