package background

import "github.com/matzehuels/svgbanner/pkg/svg"

// Plain fills the canvas with a single color.
type Plain struct {
	Fill string
}

// NewPlain returns the default plain theme.
func NewPlain() *Plain {
	return &Plain{Fill: "#0d1b2a"}
}

// Render implements [Renderer].
func (p *Plain) Render(c Canvas, _ Rand) svg.Fragment {
	return svg.Fragment{
		Body: []svg.Node{svg.Rect(0, 0, c.Width, c.Height, svg.A("fill", p.Fill))},
	}
}
