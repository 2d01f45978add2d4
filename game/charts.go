package game

import (
	"fmt"
	"image/color"
	"math"

	"portfoliohud/content"
	"portfoliohud/hud"
)

const (
	chartPad      = 10
	chartTitleH   = 18
	chartLegendH  = 14
	chartMaxBars  = 12
	bubbleMaxR    = 14
	shareBarH     = 14
	radarRingStep = 4
)

// chartStyle is what a chart needs from the theme.
type chartStyle struct {
	frame   color.NRGBA
	text    color.NRGBA
	series  color.NRGBA
	palette []color.NRGBA
}

// valueRange returns the min and max of vals, widened so the span is never 0.
func valueRange(vals []float64) (lo, hi float64) {
	if len(vals) == 0 {
		return 0, 1
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// shares normalises non-negative values to fractions summing to 1.
func shares(vals []float64) []float64 {
	var total float64
	for _, v := range vals {
		if v > 0 {
			total += v
		}
	}
	out := make([]float64, len(vals))
	if total == 0 {
		return out
	}
	for i, v := range vals {
		if v > 0 {
			out[i] = v / total
		}
	}
	return out
}

func label(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("#%d", i+1)
}

// drawChart renders one project chart inside the given box.
func drawChart(c hud.Canvas, st chartStyle, ch content.Chart, lang content.Language, x, y, w, h float64) {
	c.FillRect(x, y, w, h, color.NRGBA{A: 140})
	c.StrokeRect(x, y, w, h, 1, st.frame)
	c.DrawText(fold(ch.Title.Get(lang)), x+chartPad, y+chartPad+10, st.text)

	if len(ch.Datasets) == 0 {
		return
	}
	ds := ch.Datasets[0]
	labels := ch.Labels.Get(lang)

	px, py := x+chartPad, y+chartPad+chartTitleH
	pw, ph := w-2*chartPad, h-2*chartPad-chartTitleH
	if pw <= 0 || ph <= 0 {
		return
	}

	switch ch.Kind {
	case content.ChartBar:
		drawBarSeries(c, st, ds.Data, px, py, pw, ph)
	case content.ChartLine:
		drawLineSeries(c, st, ds.Data, px, py, pw, ph)
	case content.ChartPie, content.ChartDoughnut:
		drawShares(c, st, ds.Data, labels, px, py, pw, ph)
	case content.ChartBubble:
		drawBubbles(c, st, ds.Points, px, py, pw, ph)
	case content.ChartRadar:
		drawRadarSeries(c, st, ds.Data, px+pw/2, py+ph/2, math.Min(pw, ph)/2)
	}
}

func drawBarSeries(c hud.Canvas, st chartStyle, vals []float64, x, y, w, h float64) {
	if len(vals) > chartMaxBars {
		vals = vals[:chartMaxBars]
	}
	if len(vals) == 0 {
		return
	}
	_, hi := valueRange(vals)
	hi = math.Max(hi, 0)
	if hi == 0 {
		hi = 1
	}
	slot := w / float64(len(vals))
	for i, v := range vals {
		bh := math.Max(v, 0) / hi * h
		bx := x + float64(i)*slot + slot*0.15
		c.FillRect(bx, y+h-bh, slot*0.7, bh, hud.Fade(st.series, 0.7))
		c.StrokeRect(bx, y+h-bh, slot*0.7, bh, 1, st.series)
	}
	c.StrokeLine(x, y+h, x+w, y+h, 1, st.frame)
}

func drawLineSeries(c hud.Canvas, st chartStyle, vals []float64, x, y, w, h float64) {
	if len(vals) == 0 {
		return
	}
	lo, hi := valueRange(vals)
	pts := make([]hud.Point, len(vals))
	for i, v := range vals {
		fx := 0.5
		if len(vals) > 1 {
			fx = float64(i) / float64(len(vals)-1)
		}
		pts[i] = hud.Point{X: x + fx*w, Y: y + h - (v-lo)/(hi-lo)*h}
	}
	c.StrokePolyline(pts, 2, st.series)
	for _, p := range pts {
		c.FillCircle(p.X, p.Y, 3, st.series)
	}
	c.StrokeLine(x, y+h, x+w, y+h, 1, st.frame)
}

// drawShares draws pie and doughnut data as one stacked bar plus a legend.
func drawShares(c hud.Canvas, st chartStyle, vals []float64, labels []string, x, y, w, h float64) {
	if len(st.palette) == 0 {
		st.palette = []color.NRGBA{st.series}
	}
	fr := shares(vals)
	cx := x
	for i, f := range fr {
		clr := st.palette[i%len(st.palette)]
		c.FillRect(cx, y, f*w, shareBarH, clr)
		cx += f * w
	}
	c.StrokeRect(x, y, w, shareBarH, 1, st.frame)

	ly := y + shareBarH + chartLegendH
	for i, f := range fr {
		if ly > y+h {
			break
		}
		clr := st.palette[i%len(st.palette)]
		c.FillRect(x, ly-8, 8, 8, clr)
		c.DrawText(fmt.Sprintf("%s %.1f%%", fold(label(labels, i)), f*100), x+14, ly, st.text)
		ly += chartLegendH
	}
}

func drawBubbles(c hud.Canvas, st chartStyle, pts []content.BubblePoint, x, y, w, h float64) {
	if len(pts) == 0 {
		return
	}
	if len(st.palette) == 0 {
		st.palette = []color.NRGBA{st.series}
	}
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	rs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], rs[i] = p.X, p.Y, p.R
	}
	xlo, xhi := valueRange(xs)
	ylo, yhi := valueRange(ys)
	_, rhi := valueRange(rs)

	inner := float64(bubbleMaxR)
	for i, p := range pts {
		bx := x + inner + (p.X-xlo)/(xhi-xlo)*(w-2*inner)
		by := y + h - inner - (p.Y-ylo)/(yhi-ylo)*(h-2*inner)
		r := math.Max(2, p.R/rhi*bubbleMaxR)
		c.FillCircle(bx, by, r, hud.Fade(st.palette[i%len(st.palette)], 0.6))
	}
}

func drawRadarSeries(c hud.Canvas, st chartStyle, vals []float64, cx, cy, r float64) {
	n := len(vals)
	if n < 3 {
		return
	}
	_, hi := valueRange(vals)
	if hi <= 0 {
		hi = 1
	}
	vertex := func(i int, k float64) hud.Point {
		a := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		return hud.Point{X: cx + math.Cos(a)*r*k, Y: cy + math.Sin(a)*r*k}
	}

	for ring := 1; ring <= radarRingStep; ring++ {
		k := float64(ring) / radarRingStep
		web := make([]hud.Point, 0, n+1)
		for i := 0; i <= n; i++ {
			web = append(web, vertex(i%n, k))
		}
		c.StrokePolyline(web, 1, hud.Fade(st.frame, 0.5))
	}

	poly := make([]hud.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		poly = append(poly, vertex(i%n, math.Max(vals[i%n], 0)/hi))
	}
	c.StrokePolyline(poly, 2, st.series)
}
