package background

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/svgbanner/pkg/svg"
)

// KuroMode selects how the kuro path network is generated.
type KuroMode int

const (
	// KuroRandom picks a walk or the template with equal probability.
	KuroRandom KuroMode = iota
	// KuroWalk grows the network with a recursive branching walk.
	KuroWalk
	// KuroTemplate scales a fixed set of axis-aligned segments.
	KuroTemplate
)

// Point is a canvas position.
type Point struct {
	X, Y float64
}

// Segment is one straight piece of the path network.
type Segment struct {
	From, To Point
}

// Kuro draws a neon maze: a path network stroked several times with layered
// blur, from a wide soft glow down to a thin bright core.
type Kuro struct {
	Mode KuroMode

	MinStep, MaxStep float64 // walk step length
	StopChance       float64 // probability that a branch ends at each step
	MaxDepth         int     // walk recursion limit
	Margin           float64 // distance kept from the canvas edge
	Attempts         int     // walks tried before falling back to the template

	// Template holds segments in unit coordinates, scaled to the canvas.
	Template []Segment
}

// DefaultTemplate is a circuit-like layout in unit coordinates.
var DefaultTemplate = []Segment{
	{Point{0.05, 0.2}, Point{0.3, 0.2}},
	{Point{0.3, 0.2}, Point{0.3, 0.8}},
	{Point{0.3, 0.5}, Point{0.55, 0.5}},
	{Point{0.55, 0.15}, Point{0.55, 0.85}},
	{Point{0.55, 0.85}, Point{0.8, 0.85}},
	{Point{0.8, 0.85}, Point{0.8, 0.3}},
	{Point{0.8, 0.3}, Point{0.95, 0.3}},
	{Point{0.05, 0.8}, Point{0.2, 0.8}},
	{Point{0.2, 0.8}, Point{0.2, 0.6}},
	{Point{0.65, 0.15}, Point{0.9, 0.15}},
	{Point{0.9, 0.15}, Point{0.9, 0.6}},
}

// NewKuro returns the default kuro theme.
func NewKuro() *Kuro {
	return &Kuro{
		Mode:       KuroRandom,
		MinStep:    40,
		MaxStep:    120,
		StopChance: 0.25,
		MaxDepth:   6,
		Margin:     8,
		Attempts:   5,
		Template:   DefaultTemplate,
	}
}

// axis directions: right, down, left, up.
var directions = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Render implements [Renderer].
func (k *Kuro) Render(c Canvas, rng Rand) svg.Fragment {
	scope := newScope(ThemeKuro, rng)
	hue := rng.Float64() * 360
	glow := colorful.Hsv(hue, 0.85, 1).Hex()
	core := colorful.Hsv(hue, 0.15, 1).Hex()
	backdrop := colorful.Hsv(hue, 0.6, 0.08).Hex()

	segments := k.Segments(c, rng)
	var d svg.PathData
	for _, s := range segments {
		d.MoveTo(s.From.X, s.From.Y).LineTo(s.To.X, s.To.Y)
	}
	path := d.String()

	f := svg.Fragment{
		Defs: []svg.Node{
			svg.RadialGradient(scope.ID("backdrop"), "50%", "50%", "75%",
				svg.Stop("0%", backdrop),
				svg.Stop("100%", "#000000"),
			),
			svg.Filter(scope.ID("outerGlow"), svg.GaussianBlur(6)).
				Set(svg.A("x", "-20%"), svg.A("y", "-20%"), svg.A("width", "140%"), svg.A("height", "140%")),
			svg.Filter(scope.ID("innerGlow"), svg.GaussianBlur(2)),
		},
	}
	f.Body = append(f.Body, svg.Rect(0, 0, c.Width, c.Height, svg.A("fill", scope.URL("backdrop"))))
	if len(segments) == 0 {
		return f
	}

	stroke := func(color string, width, opacity float64, filter string) *svg.Element {
		p := svg.Path(path,
			svg.A("fill", "none"),
			svg.A("stroke", color),
			svg.N("stroke-width", width),
			svg.A("stroke-linecap", "round"),
			svg.A("stroke-linejoin", "round"),
			svg.N("opacity", opacity),
		)
		if filter != "" {
			p.Set(svg.A("filter", filter))
		}
		return p
	}
	f.Body = append(f.Body,
		stroke(glow, 8, 0.35, scope.URL("outerGlow")),
		stroke(glow, 3, 0.7, scope.URL("innerGlow")),
		stroke(core, 1.2, 1, ""),
	)

	nodes := svg.Group(svg.A("fill", core), svg.A("filter", scope.URL("innerGlow")))
	for _, p := range junctions(segments) {
		nodes.Add(svg.Circle(p.X, p.Y, 2.2))
	}
	f.Body = append(f.Body, nodes)
	return f
}

// Segments builds the path network for the configured mode.
func (k *Kuro) Segments(c Canvas, rng Rand) []Segment {
	mode := k.Mode
	if mode == KuroRandom {
		mode = KuroTemplate
		if rng.Float64() < 0.5 {
			mode = KuroWalk
		}
	}

	if mode == KuroWalk {
		for range max(k.Attempts, 1) {
			if segs := k.Walk(c, rng); len(segs) > 0 {
				return segs
			}
		}
	}
	return k.scaledTemplate(c)
}

// Walk grows a network from a random start point. Each step extends the
// current branch by a random length and forks into two new directions;
// branches end at random, at MaxDepth, or when a step would leave the canvas.
func (k *Kuro) Walk(c Canvas, rng Rand) []Segment {
	start := Point{
		X: between(rng, k.Margin, c.Width-k.Margin),
		Y: between(rng, k.Margin, c.Height-k.Margin),
	}
	var segs []Segment
	k.branch(c, rng, start, rng.IntN(len(directions)), 0, &segs)
	return segs
}

func (k *Kuro) branch(c Canvas, rng Rand, from Point, dir, depth int, segs *[]Segment) {
	if depth >= k.MaxDepth {
		return
	}
	if depth > 0 && rng.Float64() < k.StopChance {
		return
	}

	step := between(rng, k.MinStep, k.MaxStep)
	to := Point{X: from.X + directions[dir].X*step, Y: from.Y + directions[dir].Y*step}
	if !k.inside(c, to) {
		return
	}
	*segs = append(*segs, Segment{From: from, To: to})

	left, right := (dir+3)%4, (dir+1)%4
	if rng.Float64() < 0.5 {
		k.branch(c, rng, to, left, depth+1, segs)
		k.branch(c, rng, to, right, depth+1, segs)
		return
	}
	turn := left
	if rng.Float64() < 0.5 {
		turn = right
	}
	k.branch(c, rng, to, dir, depth+1, segs)
	k.branch(c, rng, to, turn, depth+1, segs)
}

func (k *Kuro) inside(c Canvas, p Point) bool {
	return p.X >= k.Margin && p.X <= c.Width-k.Margin &&
		p.Y >= k.Margin && p.Y <= c.Height-k.Margin
}

func (k *Kuro) scaledTemplate(c Canvas) []Segment {
	segs := make([]Segment, len(k.Template))
	for i, s := range k.Template {
		segs[i] = Segment{
			From: Point{s.From.X * c.Width, s.From.Y * c.Height},
			To:   Point{s.To.X * c.Width, s.To.Y * c.Height},
		}
	}
	return segs
}

// junctions returns the distinct segment end points in first-seen order.
func junctions(segs []Segment) []Point {
	seen := make(map[Point]bool, 2*len(segs))
	var pts []Point
	for _, s := range segs {
		for _, p := range [2]Point{s.From, s.To} {
			if !seen[p] {
				seen[p] = true
				pts = append(pts, p)
			}
		}
	}
	return pts
}
