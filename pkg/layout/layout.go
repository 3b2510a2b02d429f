// Package layout computes banner geometry: canvas height, line baselines and
// the horizontal text anchor.
//
// The geometry depends on the line count, the font size and a per-deployment
// [Config]. With n lines, font size f, line-height multiplier λ and vertical
// padding p:
//
//	block    = (n-1)·λ·f + f
//	height   = round(block + 2p)
//	baseline = round(height/2 - block/2 + 0.8f) + i·λ·f
package layout

import "math"

// Align is the horizontal alignment of banner text.
type Align string

// Supported alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParseAlign resolves s to an alignment, falling back to [AlignLeft].
func ParseAlign(s string) Align {
	a, _ := LookupAlign(s)
	return a
}

// LookupAlign resolves s and reports whether it named a known alignment.
func LookupAlign(s string) (Align, bool) {
	switch a := Align(s); a {
	case AlignLeft, AlignCenter, AlignRight:
		return a, true
	default:
		return AlignLeft, false
	}
}

// Anchor values for the SVG text-anchor attribute.
const (
	AnchorStart  = "start"
	AnchorMiddle = "middle"
	AnchorEnd    = "end"
)

// baselineShift moves the first baseline down from the top of the text
// block, as a fraction of the font size.
const baselineShift = 0.8

// Config holds the canvas constants of one deployment profile.
type Config struct {
	Width      float64 // canvas width
	PaddingX   float64 // left and right text padding
	PaddingY   float64 // top and bottom padding around the text block
	LineHeight float64 // line advance as a multiple of the font size
}

// Layout is the computed geometry of one banner.
type Layout struct {
	Width, Height   float64
	TextBlockHeight float64
	LineAdvance     float64
	Baselines       []float64 // absolute y of each line
	X               float64   // horizontal anchor position
	Anchor          string    // start, middle or end
}

// Compute returns the layout for lines lines of text at fontSize.
// A line count below one is treated as one.
func Compute(cfg Config, lines int, fontSize float64, align Align) Layout {
	n := max(lines, 1)
	advance := cfg.LineHeight * fontSize
	block := float64(n-1)*advance + fontSize
	height := math.Round(block + 2*cfg.PaddingY)
	first := math.Round(height/2 - block/2 + baselineShift*fontSize)

	baselines := make([]float64, n)
	for i := range baselines {
		baselines[i] = first + float64(i)*advance
	}

	x, anchor := Anchor(cfg, align)
	return Layout{
		Width:           cfg.Width,
		Height:          height,
		TextBlockHeight: block,
		LineAdvance:     advance,
		Baselines:       baselines,
		X:               x,
		Anchor:          anchor,
	}
}

// Anchor returns the x position and text-anchor for an alignment.
func Anchor(cfg Config, align Align) (float64, string) {
	switch align {
	case AlignCenter:
		return cfg.Width / 2, AnchorMiddle
	case AlignRight:
		return cfg.Width - cfg.PaddingX, AnchorEnd
	default:
		return cfg.PaddingX, AnchorStart
	}
}

// FirstBaseline returns the baseline of the first line.
func (l Layout) FirstBaseline() float64 {
	if len(l.Baselines) == 0 {
		return 0
	}
	return l.Baselines[0]
}
