package raster

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/svgbanner/pkg/svg"
)

// textStyle is the resolved presentation of one text run. Values inherit
// from the enclosing <text> element.
type textStyle struct {
	size        float64
	fill        string
	opacity     float64
	bold        bool
	anchor      string
	stroke      string
	strokeWidth float64
}

// span is a run of text with its own style and optional absolute position.
type span struct {
	text  string
	style textStyle
	x, y  float64
	abs   bool
}

// faceKey identifies a cached face within one draw pass.
type faceKey struct {
	bold bool
	size float64
}

// textPainter draws text for one image. truetype faces are not safe for
// concurrent use, so each painter owns its cache.
type textPainter struct {
	r     *Rasterizer
	img   *image.RGBA
	faces map[faceKey]font.Face
}

func (r *Rasterizer) drawText(img *image.RGBA, doc *svg.Document) error {
	p := &textPainter{r: r, img: img, faces: make(map[faceKey]font.Face)}

	var err error
	doc.Walk(func(e *svg.Element, _ []*svg.Element) bool {
		if err != nil {
			return false
		}
		switch e.Tag {
		case "defs", "mask", "style":
			return false
		case "text":
			err = p.drawElement(e)
			return false
		}
		return true
	})
	return err
}

func (p *textPainter) drawElement(e *svg.Element) error {
	base := textStyle{size: 16, fill: "#000000", opacity: 1, anchor: "start"}
	base = inherit(base, e)
	x, _ := e.FloatAttr("x")
	y, _ := e.FloatAttr("y")

	var spans []span
	if e.Content != "" {
		spans = append(spans, span{text: e.Content, style: base})
	}
	for _, c := range e.Children {
		child, ok := c.(*svg.Element)
		if !ok || child.Tag != "tspan" {
			continue
		}
		s := span{text: child.Content, style: inherit(base, child)}
		sx, okX := child.FloatAttr("x")
		sy, okY := child.FloatAttr("y")
		if okX || okY {
			s.abs = true
			s.x, s.y = x, y
			if okX {
				s.x = sx
			}
			if okY {
				s.y = sy
			}
		}
		spans = append(spans, s)
	}

	// Consecutive spans without their own position form one line that is
	// anchored as a whole.
	var line []span
	flush := func() error {
		if len(line) == 0 {
			return nil
		}
		err := p.drawLine(line, x, y, base.anchor)
		line = line[:0]
		return err
	}
	for _, s := range spans {
		if s.abs {
			if err := flush(); err != nil {
				return err
			}
			if err := p.drawLine([]span{s}, s.x, s.y, s.style.anchor); err != nil {
				return err
			}
			continue
		}
		line = append(line, s)
	}
	return flush()
}

func (p *textPainter) drawLine(spans []span, x, y float64, anchor string) error {
	for i := range spans {
		spans[i].text = p.supported(spans[i].text, spans[i].style.bold)
	}

	var width fixed.Int26_6
	for _, s := range spans {
		width += font.MeasureString(p.face(s.style), s.text)
	}
	switch anchor {
	case "middle":
		x -= float64(width) / 64 / 2
	case "end":
		x -= float64(width) / 64
	}

	// Outline first, as with paint-order="stroke". Spans of one line share
	// the stroke of their <text>.
	if st := spans[0].style; st.stroke != "" && st.stroke != "none" && st.strokeWidth > 0 {
		d := float64(max(1, int(math.Round(st.strokeWidth/2))))
		stroke := p.color(st.stroke, st.opacity)
		for _, off := range [][2]float64{{-d, 0}, {d, 0}, {0, -d}, {0, d}} {
			if err := p.drawSpans(spans, x+off[0], y+off[1], stroke); err != nil {
				return err
			}
		}
	}
	return p.drawSpans(spans, x, y, nil)
}

// drawSpans draws spans left to right from (x, y). A nil override uses each
// span's own fill.
func (p *textPainter) drawSpans(spans []span, x, y float64, override color.Color) error {
	pt := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	for _, s := range spans {
		if s.text == "" {
			continue
		}
		c := freetype.NewContext()
		c.SetDPI(72)
		c.SetFont(p.font(s.style.bold))
		c.SetFontSize(s.style.size)
		c.SetClip(p.img.Bounds())
		c.SetDst(p.img)
		c.SetHinting(font.HintingNone)
		src := override
		if src == nil {
			src = p.color(s.style.fill, s.style.opacity)
		}
		c.SetSrc(image.NewUniform(src))

		next, err := c.DrawString(s.text, pt)
		if err != nil {
			return err
		}
		pt = next
	}
	return nil
}

// supported drops runes the font has no glyph for.
func (p *textPainter) supported(s string, bold bool) string {
	f := p.font(bold)
	return strings.Map(func(r rune) rune {
		if f.Index(r) == 0 {
			return -1
		}
		return r
	}, s)
}

func (p *textPainter) font(bold bool) *truetype.Font {
	if bold {
		return p.r.bold
	}
	return p.r.regular
}

func (p *textPainter) face(st textStyle) font.Face {
	key := faceKey{bold: st.bold, size: st.size}
	if f, ok := p.faces[key]; ok {
		return f
	}
	f := truetype.NewFace(p.font(st.bold), &truetype.Options{Size: st.size, DPI: 72})
	p.faces[key] = f
	return f
}

func (p *textPainter) color(s string, opacity float64) color.Color {
	c, alpha := parseColor(s)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(opacity*alpha) * 255))}
}

func inherit(st textStyle, e *svg.Element) textStyle {
	if v, ok := e.FloatAttr("font-size"); ok && v > 0 {
		st.size = v
	}
	if v, ok := e.Attr("fill"); ok {
		st.fill = v
	}
	if v, ok := e.FloatAttr("opacity"); ok {
		st.opacity *= v
	}
	if v, ok := e.Attr("font-weight"); ok {
		n, err := strconv.Atoi(v)
		st.bold = v == "bold" || v == "bolder" || (err == nil && n >= 600)
	}
	if v, ok := e.Attr("text-anchor"); ok {
		st.anchor = v
	}
	if v, ok := e.Attr("stroke"); ok {
		st.stroke = v
	}
	if v, ok := e.FloatAttr("stroke-width"); ok {
		st.strokeWidth = v
	}
	return st
}

// white is the default banner text color.
var white = colorful.Color{R: 1, G: 1, B: 1}

// parseColor reads a CSS color as accepted by a fill attribute: a hex
// value, an SVG color keyword, or rgb()/rgba() with numeric or percentage
// channels. It returns the color and its alpha. Anything else paints
// opaque white.
func parseColor(s string) (colorful.Color, float64) {
	s = strings.ToLower(strings.TrimSpace(s))
	if named, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(named)
		return c, 1
	}
	if c, alpha, ok := parseRGBFunc(s); ok {
		return c, alpha
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return white, 1
	}
	return c, 1
}

// parseRGBFunc reads rgb(r, g, b) and rgba(r, g, b, a). Channels and alpha
// are clamped; separators may be commas, spaces or a slash before alpha.
func parseRGBFunc(s string) (colorful.Color, float64, bool) {
	var body string
	switch {
	case strings.HasPrefix(s, "rgba("):
		body = s[len("rgba("):]
	case strings.HasPrefix(s, "rgb("):
		body = s[len("rgb("):]
	default:
		return colorful.Color{}, 0, false
	}
	body, ok := strings.CutSuffix(body, ")")
	if !ok {
		return colorful.Color{}, 0, false
	}
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return colorful.Color{}, 0, false
	}

	var ch [3]float64
	for i := range ch {
		v, ok := cssNumber(fields[i], 255)
		if !ok {
			return colorful.Color{}, 0, false
		}
		ch[i] = v
	}
	alpha := 1.0
	if len(fields) == 4 {
		if alpha, ok = cssNumber(fields[3], 1); !ok {
			return colorful.Color{}, 0, false
		}
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, alpha, true
}

// cssNumber parses a number or percentage and scales it to [0, 1], with
// full as the full-scale plain number.
func cssNumber(f string, full float64) (float64, bool) {
	if pct, ok := strings.CutSuffix(f, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		return clamp01(v / 100), err == nil
	}
	v, err := strconv.ParseFloat(f, 64)
	return clamp01(v / full), err == nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
