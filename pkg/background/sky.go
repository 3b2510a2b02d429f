package background

import "github.com/matzehuels/svgbanner/pkg/svg"

// Sky is a vertical night gradient sprinkled with faint stars.
type Sky struct {
	Top, Bottom string
	StarColor   string
	StarCount   int
}

// NewSky returns the default sky theme.
func NewSky() *Sky {
	return &Sky{Top: "#0d1b2a", Bottom: "#1b263b", StarColor: "#f0f8ff", StarCount: 200}
}

// Render implements [Renderer].
func (s *Sky) Render(c Canvas, rng Rand) svg.Fragment {
	scope := newScope(ThemeSky, rng)

	f := svg.Fragment{
		Defs: []svg.Node{
			svg.LinearGradient(scope.ID("sky"), "50%", "0%", "50%", "100%",
				svg.Stop("0%", s.Top),
				svg.Stop("100%", s.Bottom),
			),
		},
	}
	f.Body = append(f.Body, svg.Rect(0, 0, c.Width, c.Height, svg.A("fill", scope.URL("sky"))))

	for range s.StarCount {
		f.Body = append(f.Body, svg.Circle(
			rng.Float64()*c.Width,
			rng.Float64()*c.Height,
			between(rng, 0.1, 1.0),
			svg.A("fill", s.StarColor),
			svg.N("opacity", between(rng, 0.2, 0.9)),
		))
	}
	return f
}
