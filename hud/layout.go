package hud

// Variant is the widget arrangement chosen from the surface width.
type Variant int

const (
	VariantDesktop Variant = iota
	VariantCompact
)

func (v Variant) String() string {
	switch v {
	case VariantDesktop:
		return "desktop"
	case VariantCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// SelectVariant picks desktop for widths strictly above the breakpoint.
func SelectVariant(width, breakpoint float64) Variant {
	if width > breakpoint {
		return VariantDesktop
	}
	return VariantCompact
}

// WidgetKind names a decorative widget.
type WidgetKind int

const (
	WidgetLineChart WidgetKind = iota
	WidgetBars
	WidgetRadar
	WidgetScatter
	WidgetProgress
	WidgetRings
	WidgetDataStream
)

func (k WidgetKind) String() string {
	switch k {
	case WidgetLineChart:
		return "line-chart"
	case WidgetBars:
		return "bars"
	case WidgetRadar:
		return "radar"
	case WidgetScatter:
		return "scatter"
	case WidgetProgress:
		return "progress"
	case WidgetRings:
		return "rings"
	case WidgetDataStream:
		return "data-stream"
	default:
		return "unknown"
	}
}

// Placement positions one widget. Box widgets use X, Y, W, H; round widgets
// use X, Y as the centre and R as the radius.
type Placement struct {
	Kind       WidgetKind
	X, Y, W, H float64
	R          float64
}

// Arrange returns the layout variant and widget placements for a surface.
func Arrange(width, height, breakpoint float64) (Variant, []Placement) {
	v := SelectVariant(width, breakpoint)
	if v == VariantCompact {
		return v, []Placement{
			{Kind: WidgetRadar, X: width / 2, Y: height / 2, R: 100},
			{Kind: WidgetProgress, X: width / 2, Y: height - 100, R: 40},
			{Kind: WidgetRings, X: width / 2, Y: 120},
		}
	}

	ps := []Placement{
		{Kind: WidgetLineChart, X: 100, Y: 100, W: 450, H: 180},
		{Kind: WidgetBars, X: width - 450, Y: 140, W: 350, H: 200},
		{Kind: WidgetRadar, X: width / 2, Y: height - 220, R: 140},
		{Kind: WidgetScatter, X: 100, Y: height - 280, W: 300, H: 200},
		{Kind: WidgetProgress, X: width - 120, Y: height - 120, R: 50},
		{Kind: WidgetRings, X: 140, Y: height - 140},
	}
	for i := 0; i < streamColumns; i++ {
		ps = append(ps, Placement{Kind: WidgetDataStream, X: width - 100 + float64(i)*streamPitch, Y: 100})
	}
	return v, ps
}
