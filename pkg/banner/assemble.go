package banner

import (
	"github.com/matzehuels/svgbanner/pkg/layout"
	"github.com/matzehuels/svgbanner/pkg/markup"
	"github.com/matzehuels/svgbanner/pkg/svg"
)

// WhitespaceStyle keeps runs of spaces in banner text visible.
const WhitespaceStyle = "text { white-space: pre; }"

// Outline of the banner text, painted below the fill.
const (
	OutlineColor = "#000000"
	OutlineWidth = "2px"
)

// BoldWeight is the font-weight of bold runs.
const BoldWeight = "700"

// Input is everything needed to assemble one banner.
type Input struct {
	Layout     layout.Layout
	Text       string         // raw request text, used for the accessible label
	Lines      [][]markup.Run // parsed lines, one per baseline
	TextColor  string
	FontSize   float64
	Background svg.Fragment
}

// Assemble builds the banner document. Text is escaped when the document is
// serialized, so Input holds raw strings.
func Assemble(in Input) *svg.Document {
	doc := svg.NewDocument(in.Layout.Width, in.Layout.Height,
		svg.A("role", "img"),
		svg.A("aria-label", in.Text),
	)
	doc.Add(svg.Style(WhitespaceStyle))
	doc.AddFragment(in.Background)
	doc.Add(TextNodes(in.Layout, in.Lines, in.TextColor, in.FontSize)...)
	return doc
}

// TextNodes renders one <text> element per line at its absolute baseline.
// Lines beyond the layout's baselines are dropped.
func TextNodes(l layout.Layout, lines [][]markup.Run, color string, fontSize float64) []svg.Node {
	n := min(len(lines), len(l.Baselines))
	nodes := make([]svg.Node, 0, n)
	for i := range n {
		text := svg.Text(l.X, l.Baselines[i],
			svg.A("font-family", "sans-serif"),
			svg.A("font-size", svg.Num(fontSize)+"px"),
			svg.A("fill", color),
			svg.A("text-anchor", l.Anchor),
			svg.A("paint-order", "stroke"),
			svg.A("stroke", OutlineColor),
			svg.A("stroke-width", OutlineWidth),
			svg.A("stroke-linejoin", "round"),
		)
		for _, run := range lines[i] {
			span := svg.TSpan(run.Text)
			if run.Bold {
				span.Set(svg.A("font-weight", BoldWeight))
			}
			text.Add(span)
		}
		nodes = append(nodes, text)
	}
	return nodes
}
