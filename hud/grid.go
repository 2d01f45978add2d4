package hud

import "math"

// GridOffset is the horizontal scroll of the vertical grid lines at a given
// clock, always in [0,pitch).
func GridOffset(clock uint64, scroll, pitch float64) float64 {
	off := math.Mod(float64(clock)*scroll, pitch)
	if off < 0 {
		off += pitch
	}
	return off
}

// drawGrid strokes the scrolling grid. Vertical lines start at -offset and
// extend one pitch past the right edge so the scroll never shows a seam.
func drawGrid(c Canvas, th Theme, clock uint64, width, height, scroll, pitch float64) {
	clr := Fade(th.Grid, gridAlpha)
	offset := GridOffset(clock, scroll, pitch)

	for x := -offset; x < width+pitch; x += pitch {
		c.StrokeLine(x, 0, x, height, gridWidth, clr)
	}
	for y := 0.0; y < height; y += pitch {
		c.StrokeLine(0, y, width, y, gridWidth, clr)
	}
}
