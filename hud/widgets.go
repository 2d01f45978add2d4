package hud

import (
	"math"
	"math/rand"
)

// Every widget is a pure function of the scene clock t and its placement;
// none keeps state between frames. The data stream only draws a random glyph.

// drawLineChart draws a travelling sine wave with a wider glow stroke.
func drawLineChart(c Canvas, th Theme, t, x, y, w, h float64) {
	pts := make([]Point, lineChartPoints)
	for i := range pts {
		fi := float64(i)
		pts[i] = Point{
			X: x + fi/float64(lineChartPoints-1)*w,
			Y: y + h/2 + math.Sin(t*lineChartFreq+fi*lineChartStep)*(h*lineChartAmplitude),
		}
	}
	c.StrokePolyline(pts, 2, Fade(th.Accent, lineChartAlpha))
	c.StrokePolyline(pts, 4, Fade(th.Accent, lineChartGlowAlpha))
}

// BarValue is the normalised height of bar i at clock t.
func BarValue(t float64, i int) float64 {
	return (math.Sin(t*barFreq+float64(i)*barStep) + 1) / 2
}

// drawBars draws a bank of vertically oscillating bars.
func drawBars(c Canvas, th Theme, t, x, y, w, h float64) {
	barWidth := (w - barGap*(barCount-1)) / barCount
	bottom := Fade(th.Bar, barBottomAlpha)
	top := Fade(th.Accent, barTopAlpha)
	outline := Fade(th.Accent, barOutlineA)

	for i := 0; i < barCount; i++ {
		bh := BarValue(t, i) * h
		bx := x + float64(i)*(barWidth+barGap)
		by := y + h - bh
		fillVerticalGradient(c, bx, by, barWidth, bh, bottom, top, barBands)
		c.StrokeRect(bx, by, barWidth, bh, 1, outline)
	}
}

// RadarPulse is the radar's radius multiplier at clock t.
func RadarPulse(t float64) float64 {
	return radarPulseBase + math.Sin(t*radarPulseFreq)*radarPulseAmp
}

// SweepAngle is the radar sweep-line angle at clock t, in [0,2π).
func SweepAngle(t float64) float64 {
	return math.Mod(t*radarSweepFreq, 2*math.Pi)
}

// drawRadar draws pulsing hexagonal rings and a rotating sweep line.
func drawRadar(c Canvas, th Theme, t, cx, cy, r float64) {
	pulse := RadarPulse(t)

	for ring := 0; ring < radarRings; ring++ {
		fr := float64(ring)
		ringR := r * pulse * (1 - fr*radarRingShrink)
		pts := arcPoints(cx, cy, ringR, 0, 2*math.Pi, radarVertices)
		c.StrokePolyline(pts, 2-fr*0.5, Fade(th.Accent, 0.3-fr*0.1))
	}

	tip := rotatePoint(Point{X: r * pulse}, SweepAngle(t))
	c.StrokeLine(cx, cy, cx+tip.X, cy+tip.Y, 2, Fade(th.Accent, radarSweepAlpha))
}

// Progress is the circular progress fraction at clock t, in [0,1].
func Progress(t float64) float64 {
	return (math.Sin(t*progressFreq) + 1) / 2
}

// drawCircularProgress draws a track, a progress arc starting at 12 o'clock
// and a centre dot.
func drawCircularProgress(c Canvas, th Theme, cx, cy, r, progress float64) {
	strokeArc(c, cx, cy, r, 0, 2*math.Pi, progressWidth, Fade(th.Grid, 0.2), progressSegments)

	if progress > 0 {
		start := -math.Pi / 2
		segs := int(math.Ceil(progress * progressSegments))
		strokeArc(c, cx, cy, r, start, start+progress*2*math.Pi, progressWidth, Fade(th.Accent, 0.8), segs)
	}

	c.FillCircle(cx, cy, progressDotRadius, Fade(th.Accent, 0.6))
}

// drawScatterPlot draws orbiting points with a soft halo.
func drawScatterPlot(c Canvas, th Theme, t, x, y, w, h float64) {
	for i := 0; i < scatterPoints; i++ {
		fi := float64(i)
		px := x + (math.Sin(t*0.01+fi)*0.3+0.5)*w
		py := y + (math.Cos(t*0.015+fi*0.5)*0.3+0.5)*h
		size := 2 + math.Sin(t*0.05+fi)*1.5

		c.FillCircle(px, py, size, Fade(th.Accent, 0.6))
		c.FillCircle(px, py, size*2, Fade(th.Accent, 0.2))
	}
}

// RingRotation is the start angle of rotating ring i at clock t, in [0,2π).
func RingRotation(t float64, i int) float64 {
	return math.Mod(t*(ringSpeed+float64(i)*ringSpeedStep), 2*math.Pi)
}

// drawRotatingRings draws concentric three-quarter arcs turning at
// different speeds.
func drawRotatingRings(c Canvas, th Theme, t, cx, cy float64) {
	for i := 0; i < ringCount; i++ {
		r := ringBase + float64(i)*ringStep
		rot := RingRotation(t, i)
		strokeArc(c, cx, cy, r, rot, rot+ringSweep, 1.5, Fade(th.Grid, 0.3-float64(i)*0.08), ringSegments)
	}
}

// drawDataStream draws a column of falling binary glyphs that fade with
// distance from the top of the column.
func drawDataStream(c Canvas, th Theme, rng *rand.Rand, t, x, y float64) {
	const glyphs = "01"
	for i := 0; i < streamGlyphs; i++ {
		ch := glyphs[rng.Intn(len(glyphs))]
		yPos := y + float64(i)*streamSpacing + math.Mod(t*streamSpeed, streamSpan)
		alpha := 0.6 - (yPos-y)/streamSpan
		if alpha <= 0 {
			continue
		}
		c.DrawText(string(ch), x, math.Mod(yPos, y+streamSpan), Fade(th.Accent, alpha))
	}
}
