package svg

// Defs wraps definition nodes in a <defs> element.
func Defs(children ...Node) *Element {
	return El("defs").Add(children...)
}

// Stop creates an opaque gradient stop.
func Stop(offset, color string) *Element {
	return El("stop", A("offset", offset), A("stop-color", color))
}

// StopAlpha creates a gradient stop with an explicit opacity.
func StopAlpha(offset, color string, opacity float64) *Element {
	return Stop(offset, color).Set(N("stop-opacity", opacity))
}

// LinearGradient creates a <linearGradient>. Coordinates are percentages or
// user-space values as accepted by SVG.
func LinearGradient(id, x1, y1, x2, y2 string, stops ...Node) *Element {
	return El("linearGradient", A("id", id), A("x1", x1), A("y1", y1), A("x2", x2), A("y2", y2)).Add(stops...)
}

// RadialGradient creates a <radialGradient>.
func RadialGradient(id, cx, cy, r string, stops ...Node) *Element {
	return El("radialGradient", A("id", id), A("cx", cx), A("cy", cy), A("r", r)).Add(stops...)
}

// Filter creates a <filter> holding the given primitives.
func Filter(id string, primitives ...Node) *Element {
	return El("filter", A("id", id)).Add(primitives...)
}

// GaussianBlur creates an <feGaussianBlur> on the source graphic.
func GaussianBlur(stdDeviation float64, attrs ...Attr) *Element {
	return El("feGaussianBlur", append([]Attr{A("in", "SourceGraphic"), N("stdDeviation", stdDeviation)}, attrs...)...)
}

// Turbulence creates an <feTurbulence> fractal noise source.
func Turbulence(baseFrequency float64, octaves int, seed int, attrs ...Attr) *Element {
	return El("feTurbulence", append([]Attr{
		A("type", "fractalNoise"),
		N("baseFrequency", baseFrequency),
		N("numOctaves", float64(octaves)),
		N("seed", float64(seed)),
	}, attrs...)...)
}

// ColorMatrix creates an <feColorMatrix>.
func ColorMatrix(kind, values string, attrs ...Attr) *Element {
	return El("feColorMatrix", append([]Attr{A("type", kind), A("values", values)}, attrs...)...)
}

// Merge creates an <feMerge> stacking the named filter results in order.
func Merge(inputs ...string) *Element {
	m := El("feMerge")
	for _, in := range inputs {
		m.Add(El("feMergeNode", A("in", in)))
	}
	return m
}

// Mask creates a <mask>.
func Mask(id string, children ...Node) *Element {
	return El("mask", A("id", id)).Add(children...)
}
