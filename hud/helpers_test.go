package hud

import (
	"image/color"
)

// recorder is a Surface that remembers every call.
type recorder struct {
	width, height, scale float64
	resizes              int
	ops                  []op
}

type op struct {
	kind   string
	x0, y0 float64
	x1, y1 float64
	clr    color.NRGBA
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *recorder) Resize(width, height, scale float64) {
	r.width, r.height, r.scale = width, height, scale
	r.resizes++
}

func (r *recorder) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }

func (r *recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.ops = append(r.ops, op{kind: "fillrect", x0: x, y0: y, x1: x + w, y1: y + h, clr: toNRGBA(clr)})
}

func (r *recorder) StrokeRect(x, y, w, h, _ float64, clr color.Color) {
	r.ops = append(r.ops, op{kind: "strokerect", x0: x, y0: y, x1: x + w, y1: y + h, clr: toNRGBA(clr)})
}

func (r *recorder) StrokeLine(x0, y0, x1, y1, _ float64, clr color.Color) {
	r.ops = append(r.ops, op{kind: "line", x0: x0, y0: y0, x1: x1, y1: y1, clr: toNRGBA(clr)})
}

func (r *recorder) StrokePolyline(pts []Point, _ float64, clr color.Color) {
	r.ops = append(r.ops, op{kind: "polyline", clr: toNRGBA(clr)})
}

func (r *recorder) FillCircle(cx, cy, rad float64, clr color.Color) {
	r.ops = append(r.ops, op{kind: "circle", x0: cx, y0: cy, x1: rad, clr: toNRGBA(clr)})
}

func (r *recorder) DrawText(s string, x, y float64, clr color.Color) {
	r.ops = append(r.ops, op{kind: "text", x0: x, y0: y, clr: toNRGBA(clr)})
}

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

// fakeViewport is a Viewport whose size the test controls.
type fakeViewport struct {
	width, height, dpr float64
	listeners          map[int]func()
	nextID             int
}

func newFakeViewport(width, height, dpr float64) *fakeViewport {
	return &fakeViewport{width: width, height: height, dpr: dpr, listeners: map[int]func(){}}
}

func (v *fakeViewport) Size() (float64, float64)   { return v.width, v.height }
func (v *fakeViewport) DeviceScaleFactor() float64 { return v.dpr }

func (v *fakeViewport) OnResize(fn func()) func() {
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

func (v *fakeViewport) resize(width, height float64) {
	v.width, v.height = width, height
	for _, fn := range v.listeners {
		fn()
	}
}
