package hud

import (
	"errors"
	"image/color"
)

// ErrNoSurface is returned by a surface provider that cannot hand out a
// drawing surface. The renderer treats it as "draw nothing".
var ErrNoSurface = errors.New("hud: drawing surface unavailable")

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Canvas is the set of drawing primitives the scene needs. All coordinates
// are logical pixels; implementations apply the device scale themselves.
type Canvas interface {
	Clear()
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
	StrokePolyline(pts []Point, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	DrawText(s string, x, y float64, clr color.Color)
}

// Surface is a Canvas with a resizable backing store.
type Surface interface {
	Canvas

	// Resize sets the logical size and the device scale factor. The backing
	// store becomes width*scale x height*scale physical pixels.
	Resize(width, height, scale float64)
}

// Viewport reports the host window size and notifies about changes.
type Viewport interface {
	Size() (width, height float64)
	DeviceScaleFactor() float64

	// OnResize registers fn and returns a function that removes it.
	OnResize(fn func()) (remove func())
}

// SurfaceProvider acquires the drawing surface at mount.
type SurfaceProvider func() (Surface, error)
