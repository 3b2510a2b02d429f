package svg

import "strings"

// PathData builds the d attribute of a <path>.
type PathData struct {
	b strings.Builder
}

// MoveTo starts a new subpath at (x, y).
func (p *PathData) MoveTo(x, y float64) *PathData {
	p.b.WriteString("M" + Num(x) + "," + Num(y))
	return p
}

// LineTo draws a straight line to (x, y).
func (p *PathData) LineTo(x, y float64) *PathData {
	p.b.WriteString("L" + Num(x) + "," + Num(y))
	return p
}

// Dot draws a zero-length segment at the current point. With a round or
// square line cap it renders as a single point.
func (p *PathData) Dot() *PathData {
	p.b.WriteString("h0")
	return p
}

// Close closes the current subpath.
func (p *PathData) Close() *PathData {
	p.b.WriteString("Z")
	return p
}

// Len reports the length of the path data written so far.
func (p *PathData) Len() int { return p.b.Len() }

// String returns the path data.
func (p *PathData) String() string { return p.b.String() }
