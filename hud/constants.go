package hud

import "math"

// Particle field constants
const (
	particleRadius   = 2.0
	particleMaxAlpha = 0.4
	linkWidth        = 1.0
)

// Grid constants
const (
	gridAlpha = 0.08
	gridWidth = 1.0
)

// Line chart constants
const (
	lineChartPoints    = 30
	lineChartFreq      = 0.02
	lineChartStep      = 0.5
	lineChartAmplitude = 0.35
	lineChartAlpha     = 0.7
	lineChartGlowAlpha = 0.3
)

// Bar bank constants
const (
	barCount       = 10
	barGap         = 4.0
	barFreq        = 0.025
	barStep        = 0.5
	barBottomAlpha = 0.6
	barTopAlpha    = 0.8
	barBands       = 8 // vertical strips used to approximate the gradient
	barOutlineA    = 0.4
)

// Radar geometry constants
const (
	radarRings      = 3
	radarVertices   = 6
	radarPulseBase  = 0.85
	radarPulseAmp   = 0.15
	radarPulseFreq  = 0.03
	radarSweepFreq  = 0.02
	radarRingShrink = 0.15
	radarSweepAlpha = 0.6
)

// Progress ring constants
const (
	progressFreq      = 0.02
	progressWidth     = 3.0
	progressDotRadius = 4.0
	progressSegments  = 64
)

// Scatter plot constants
const (
	scatterPoints = 15
)

// Rotating ring constants
const (
	ringCount     = 3
	ringBase      = 40.0
	ringStep      = 20.0
	ringSpeed     = 0.005
	ringSpeedStep = 0.002
	ringSweep     = math.Pi * 1.5
	ringSegments  = 48
)

// Data stream constants
const (
	streamGlyphs  = 8
	streamSpacing = 16.0
	streamSpan    = 128.0
	streamSpeed   = 2.0
	streamColumns = 5
	streamPitch   = 20.0
)
