package hud

import "sort"

// WindowViewport is a Viewport whose size the host sets, e.g. from ebiten's
// Layout or from command-line flags.
type WindowViewport struct {
	width, height float64
	scale         float64
	listeners     map[int]func()
	next          int
}

func NewWindowViewport(width, height, scale float64) *WindowViewport {
	return &WindowViewport{
		width:     width,
		height:    height,
		scale:     scale,
		listeners: map[int]func(){},
	}
}

func (v *WindowViewport) Size() (float64, float64) { return v.width, v.height }

func (v *WindowViewport) DeviceScaleFactor() float64 { return v.scale }

func (v *WindowViewport) OnResize(fn func()) func() {
	id := v.next
	v.next++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

// Set updates the size and notifies listeners in registration order. It
// reports whether anything changed.
func (v *WindowViewport) Set(width, height, scale float64) bool {
	if width == v.width && height == v.height && scale == v.scale {
		return false
	}
	v.width, v.height, v.scale = width, height, scale

	ids := make([]int, 0, len(v.listeners))
	for id := range v.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := v.listeners[id]; ok {
			fn()
		}
	}
	return true
}
