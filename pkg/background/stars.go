package background

import (
	"math"

	"github.com/matzehuels/svgbanner/pkg/svg"
)

// Stars draws a tilted galaxy: a deep-space gradient, two elliptical nebula
// glows, a band of stardust along the galactic plane, scattered small and
// glowing stars, and a few meteor streaks.
type Stars struct {
	Rotation float64 // galaxy tilt in degrees

	BaseRX, BaseRY float64 // outer nebula radii as fractions of the canvas
	CoreRX, CoreRY float64 // inner nebula radii as fractions of the canvas
	BandScale      float64 // stardust band thickness as a fraction of the height

	StardustCount int
	SmallCount    int
	GlowingCount  int
	MinMeteors    int
	MaxMeteors    int

	// Clouds masks the nebula with fractal noise for ragged edges.
	Clouds bool
}

// NewStars returns the default galaxy theme.
func NewStars() *Stars {
	return &Stars{
		Rotation:      -35,
		BaseRX:        0.8,
		BaseRY:        0.4,
		CoreRX:        0.6,
		CoreRY:        0.15,
		BandScale:     0.3,
		StardustCount: 1500,
		SmallCount:    150,
		GlowingCount:  15,
		MinMeteors:    2,
		MaxMeteors:    4,
		Clouds:        true,
	}
}

// Render implements [Renderer].
func (s *Stars) Render(c Canvas, rng Rand) svg.Fragment {
	scope := newScope(ThemeStars, rng)
	cx, cy := c.Width/2, c.Height/2

	f := svg.Fragment{Defs: s.defs(scope)}
	f.Body = append(f.Body, svg.Rect(0, 0, c.Width, c.Height, svg.A("fill", scope.URL("deepSpace"))))

	nebula := svg.Group(svg.A("transform", svg.Rotate(s.Rotation, cx, cy)))
	if s.Clouds {
		f.Defs = append(f.Defs, cloudMask(scope, c, rng))
		nebula.Set(svg.A("mask", scope.URL("cloudMask")))
	}
	nebula.Add(
		svg.Ellipse(cx, cy, c.Width*s.BaseRX, c.Height*s.BaseRY, svg.A("fill", scope.URL("galaxyBaseGlow"))),
		svg.Ellipse(cx, cy, c.Width*s.CoreRX, c.Height*s.CoreRY, svg.A("fill", scope.URL("galaxyCoreGlow"))),
	)
	f.Body = append(f.Body, nebula)

	f.Body = append(f.Body, s.stardust(c, rng))
	f.Body = append(f.Body, s.smallStars(c, rng)...)
	f.Body = append(f.Body, s.glowingStars(c, rng, scope)...)

	defs, meteors := s.meteors(c, rng, scope)
	f.Defs = append(f.Defs, defs...)
	f.Body = append(f.Body, meteors...)
	return f
}

func (s *Stars) defs(scope svg.Scope) []svg.Node {
	return []svg.Node{
		svg.RadialGradient(scope.ID("deepSpace"), "50%", "50%", "70%",
			svg.Stop("0%", "#2a0d45"),
			svg.Stop("100%", "#000000"),
		),
		svg.RadialGradient(scope.ID("galaxyBaseGlow"), "50%", "50%", "50%",
			svg.StopAlpha("0%", "#4b0082", 0.5),
			svg.StopAlpha("100%", "#4b0082", 0),
		),
		svg.RadialGradient(scope.ID("galaxyCoreGlow"), "50%", "50%", "50%",
			svg.StopAlpha("0%", "#8ec5ff", 0.6),
			svg.StopAlpha("100%", "#8ec5ff", 0),
		),
		svg.Filter(scope.ID("starGlow"), svg.GaussianBlur(1.8)),
	}
}

// cloudMask turns fractal noise into an alpha mask covering the canvas.
func cloudMask(scope svg.Scope, c Canvas, rng Rand) svg.Node {
	noise := svg.Filter(scope.ID("clouds"),
		svg.Turbulence(0.012, 4, rng.IntN(1000)),
		svg.ColorMatrix("matrix", "0 0 0 0 1  0 0 0 0 1  0 0 0 0 1  0 0 0 1.6 -0.25"),
	).Set(svg.A("x", "0"), svg.A("y", "0"), svg.A("width", "100%"), svg.A("height", "100%"))

	return svg.Mask(scope.ID("cloudMask"),
		noise,
		svg.Rect(0, 0, c.Width, c.Height, svg.A("fill", "#ffffff"), svg.A("filter", scope.URL("clouds"))),
	)
}

// stardust scatters points around the center, squashed into a band and
// rotated with the galaxy. All points share one path.
func (s *Stars) stardust(c Canvas, rng Rand) svg.Node {
	cx, cy := c.Width/2, c.Height/2
	band := c.Height * s.BandScale
	sin, cos := math.Sincos(s.Rotation * math.Pi / 180)

	var d svg.PathData
	for range s.StardustCount {
		angle := rng.Float64() * 2 * math.Pi
		radius := rng.Float64() * c.Width * 0.5
		offset := centered(rng) * band

		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius + offset

		rx := cx + cos*(x-cx) - sin*(y-cy)
		ry := cy + sin*(x-cx) + cos*(y-cy)
		d.MoveTo(rx, ry).Dot()
	}

	return svg.Path(d.String(),
		svg.A("stroke", "#ffffff"),
		svg.N("stroke-width", 0.6),
		svg.A("stroke-linecap", "round"),
		svg.N("opacity", 0.6),
		svg.A("fill", "none"),
	)
}

func (s *Stars) smallStars(c Canvas, rng Rand) []svg.Node {
	nodes := make([]svg.Node, 0, s.SmallCount)
	for range s.SmallCount {
		nodes = append(nodes, svg.Circle(
			rng.Float64()*c.Width,
			rng.Float64()*c.Height,
			between(rng, 0.1, 0.9),
			svg.A("fill", "#ffffff"),
			svg.N("opacity", between(rng, 0.2, 0.7)),
		))
	}
	return nodes
}

// glowingStars are the few prominent stars, kept within the central 80% of
// the height.
func (s *Stars) glowingStars(c Canvas, rng Rand, scope svg.Scope) []svg.Node {
	nodes := make([]svg.Node, 0, s.GlowingCount)
	for range s.GlowingCount {
		r := between(rng, 0.8, 2.0)
		nodes = append(nodes, svg.Circle(
			rng.Float64()*c.Width,
			c.Height/2+centered(rng)*c.Height*0.8,
			r,
			svg.A("fill", "#ffffff"),
			svg.A("filter", scope.URL("starGlow")),
			svg.N("opacity", between(rng, 0.5, 1.0)),
		))
	}
	return nodes
}

// meteors draws short streaks roughly aligned with the galaxy. Each streak
// gets its own user-space gradient; a horizontal line has a zero-height
// bounding box, which would disable a bounding-box gradient.
func (s *Stars) meteors(c Canvas, rng Rand, scope svg.Scope) ([]svg.Node, []svg.Node) {
	count := s.MinMeteors
	if span := s.MaxMeteors - s.MinMeteors; span > 0 {
		count += rng.IntN(span + 1)
	}

	defs := make([]svg.Node, 0, count)
	lines := make([]svg.Node, 0, count)
	for i := range count {
		x := rng.Float64() * c.Width
		y := rng.Float64() * c.Height
		length := between(rng, 40, 160)
		angle := centered(rng)*60 + s.Rotation

		id := "meteor" + svg.Num(float64(i))
		defs = append(defs, svg.LinearGradient(scope.ID(id), svg.Num(x), svg.Num(y), svg.Num(x+length), svg.Num(y),
			svg.StopAlpha("0%", "#c8e1ff", 0),
			svg.StopAlpha("50%", "#c8e1ff", 0.8),
			svg.Stop("100%", "#ffffff"),
		).Set(svg.A("gradientUnits", "userSpaceOnUse")))

		lines = append(lines, svg.Line(x, y, x+length, y,
			svg.A("stroke", scope.URL(id)),
			svg.N("stroke-width", 1.5),
			svg.A("stroke-linecap", "round"),
			svg.A("transform", svg.Rotate(angle, x, y)),
		))
	}
	return defs, lines
}
