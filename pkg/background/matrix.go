package background

import (
	"math"
	"strings"

	"github.com/matzehuels/svgbanner/pkg/svg"
)

// Glyph sets mixed into the falling streams. Latin letters and digits are
// repeated to make them more frequent than the other scripts.
const (
	latinGlyphs    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitGlyphs    = "0123456789"
	katakanaGlyphs = "アイウエオカキクケコサシスセソタチツテトナニヌネノ"
	hangulGlyphs   = "가나다라마바사아자차카타파하"
	symbolGlyphs   = "-=/<>+*&%$#@!"
)

// DefaultAlphabet is the glyph pool of the matrix theme.
var DefaultAlphabet = []rune(strings.Repeat(latinGlyphs, 5) + strings.Repeat(digitGlyphs, 2) +
	hangulGlyphs + katakanaGlyphs + symbolGlyphs)

// Matrix draws columns of falling glyphs. Each stream fades in from its
// tail; its last glyph is the leading character, brighter and more blurred.
type Matrix struct {
	GlyphSize   float64 // font size and row height
	ColumnRatio float64 // column width as a fraction of GlyphSize
	SkipChance  float64 // probability that a column stays empty
	MinStream   int     // shortest stream length

	Backdrop     string
	TrailColor   string
	LeadingColor string
	TrailBlur    float64
	LeadingBlur  float64

	Alphabet []rune
}

// NewMatrix returns the default matrix theme.
func NewMatrix() *Matrix {
	return &Matrix{
		GlyphSize:    18,
		ColumnRatio:  0.9,
		SkipChance:   0.1,
		MinStream:    10,
		Backdrop:     "#000000",
		TrailColor:   "#00e030",
		LeadingColor: "#c0ffc0",
		TrailBlur:    1.0,
		LeadingBlur:  2.0,
		Alphabet:     DefaultAlphabet,
	}
}

// Glyph is one character placed in a stream.
type Glyph struct {
	Char    rune
	X, Y    float64
	Opacity float64
	Leading bool
}

// Render implements [Renderer].
func (m *Matrix) Render(c Canvas, rng Rand) svg.Fragment {
	scope := newScope(ThemeMatrix, rng)

	f := svg.Fragment{
		Defs: []svg.Node{
			svg.Filter(scope.ID("trailGlow"), svg.GaussianBlur(m.TrailBlur, svg.A("result", "blur"))),
			svg.Filter(scope.ID("leadingGlow"), svg.GaussianBlur(m.LeadingBlur, svg.A("result", "blur"))),
		},
	}
	f.Body = append(f.Body, svg.Rect(0, 0, c.Width, c.Height, svg.A("fill", m.Backdrop)))

	for _, stream := range m.Streams(c, rng) {
		var trail, leading []svg.Node
		for _, g := range stream {
			color := m.TrailColor
			if g.Leading {
				color = m.LeadingColor
			}
			span := svg.TSpan(string(g.Char),
				svg.N("x", g.X),
				svg.N("y", g.Y),
				svg.A("fill", color),
				svg.N("opacity", g.Opacity),
			)
			if g.Leading {
				leading = append(leading, span)
			} else {
				trail = append(trail, span)
			}
		}
		if len(trail) > 0 {
			f.Body = append(f.Body, m.text(scope.URL("trailGlow")).Add(trail...))
		}
		if len(leading) > 0 {
			f.Body = append(f.Body, m.text(scope.URL("leadingGlow")).Add(leading...))
		}
	}
	return f
}

func (m *Matrix) text(filter string) *svg.Element {
	return svg.El("text",
		svg.A("font-family", "monospace"),
		svg.A("font-size", svg.Num(m.GlyphSize)+"px"),
		svg.A("filter", filter),
	)
}

// Streams generates the visible glyphs of every column. Rows that fall
// outside the canvas are dropped without moving the others.
func (m *Matrix) Streams(c Canvas, rng Rand) [][]Glyph {
	colWidth := m.GlyphSize * m.ColumnRatio
	columns := int(math.Floor(c.Width / colWidth))
	maxExtra := int(c.Height / m.GlyphSize * 0.8)

	var streams [][]Glyph
	for i := range columns {
		if rng.Float64() < m.SkipChance {
			continue
		}
		x := float64(i)*colWidth + centered(rng)*colWidth
		startY := rng.Float64()*c.Height*1.5 - c.Height*0.5
		length := m.MinStream
		if maxExtra > 0 {
			length += rng.IntN(maxExtra)
		}

		var stream []Glyph
		for j := range length {
			char := m.Alphabet[rng.IntN(len(m.Alphabet))]
			y := startY + float64(j)*m.GlyphSize
			if y < 0 || y > c.Height {
				continue
			}
			stream = append(stream, Glyph{
				Char:    char,
				X:       x,
				Y:       y,
				Opacity: 0.1 + float64(j)/float64(length)*0.9,
				Leading: j == length-1,
			})
		}
		if len(stream) > 0 {
			streams = append(streams, stream)
		}
	}
	return streams
}
