package hud

import (
	"image/color"
	"math"
)

// rotatePoint rotates a point around the origin by the given angle (in radians)
func rotatePoint(p Point, angle float64) Point {
	sinA := math.Sin(angle)
	cosA := math.Cos(angle)
	return Point{
		X: p.X*cosA - p.Y*sinA,
		Y: p.X*sinA + p.Y*cosA,
	}
}

// arcPoints samples an arc from start to end (radians, clockwise in screen
// space) into segments+1 points.
func arcPoints(cx, cy, r, start, end float64, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Point, 0, segments+1)
	step := (end - start) / float64(segments)
	for i := 0; i <= segments; i++ {
		a := start + step*float64(i)
		pts = append(pts, Point{X: cx + math.Cos(a)*r, Y: cy + math.Sin(a)*r})
	}
	return pts
}

// strokeArc draws an arc outline.
func strokeArc(c Canvas, cx, cy, r, start, end, width float64, clr color.Color, segments int) {
	c.StrokePolyline(arcPoints(cx, cy, r, start, end, segments), width, clr)
}

// fillVerticalGradient fills a rectangle whose colour runs from bottom at the
// lower edge to top at the upper edge, approximated with horizontal bands.
func fillVerticalGradient(c Canvas, x, y, w, h float64, bottom, top color.NRGBA, bands int) {
	if h <= 0 || w <= 0 {
		return
	}
	if bands < 1 {
		bands = 1
	}
	band := h / float64(bands)
	for i := 0; i < bands; i++ {
		t := (float64(i) + 0.5) / float64(bands)
		by := y + h - band*float64(i+1)
		c.FillRect(x, by, w, band, mix(bottom, top, t))
	}
}
