package svg

import (
	"math"
	"strconv"
)

// Node is anything that can appear in a document tree.
type Node interface {
	write(w *writer, depth int, inline bool)
}

// Attr is one attribute of an element.
type Attr struct {
	Name  string
	Value string

	num   float64
	isNum bool
}

// A returns a string attribute.
func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// N returns a numeric attribute formatted with at most two decimals.
func N(name string, v float64) Attr {
	return Attr{Name: name, Value: Num(v), num: v, isNum: true}
}

// Float returns the numeric value of an attribute created with [N].
func (a Attr) Float() (float64, bool) { return a.num, a.isNum }

// Num formats v with at most two decimals and no trailing zeros.
func Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Element is a generic SVG element.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []Node
	Content  string // character data, escaped on write
}

// El creates an element with the given tag and attributes.
func El(tag string, attrs ...Attr) *Element {
	return &Element{Tag: tag, Attrs: attrs}
}

// Set appends attributes and returns e.
func (e *Element) Set(attrs ...Attr) *Element {
	e.Attrs = append(e.Attrs, attrs...)
	return e
}

// Add appends children and returns e.
func (e *Element) Add(children ...Node) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Attr returns the value of the last attribute called name.
func (e *Element) Attr(name string) (string, bool) {
	for i := len(e.Attrs) - 1; i >= 0; i-- {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// FloatAttr returns the value of a numeric attribute, parsing string
// attributes when needed.
func (e *Element) FloatAttr(name string) (float64, bool) {
	for i := len(e.Attrs) - 1; i >= 0; i-- {
		a := e.Attrs[i]
		if a.Name != name {
			continue
		}
		if a.isNum {
			return a.num, true
		}
		v, err := strconv.ParseFloat(trimUnit(a.Value), 64)
		return v, err == nil
	}
	return 0, false
}

func trimUnit(s string) string {
	for _, u := range []string{"px", "em", "%"} {
		if len(s) > len(u) && s[len(s)-len(u):] == u {
			return s[:len(s)-len(u)]
		}
	}
	return s
}

// Rect creates a <rect>.
func Rect(x, y, w, h float64, attrs ...Attr) *Element {
	return El("rect", append([]Attr{N("x", x), N("y", y), N("width", w), N("height", h)}, attrs...)...)
}

// Circle creates a <circle>.
func Circle(cx, cy, r float64, attrs ...Attr) *Element {
	return El("circle", append([]Attr{N("cx", cx), N("cy", cy), N("r", r)}, attrs...)...)
}

// Ellipse creates an <ellipse>.
func Ellipse(cx, cy, rx, ry float64, attrs ...Attr) *Element {
	return El("ellipse", append([]Attr{N("cx", cx), N("cy", cy), N("rx", rx), N("ry", ry)}, attrs...)...)
}

// Line creates a <line>.
func Line(x1, y1, x2, y2 float64, attrs ...Attr) *Element {
	return El("line", append([]Attr{N("x1", x1), N("y1", y1), N("x2", x2), N("y2", y2)}, attrs...)...)
}

// Path creates a <path> with the given path data.
func Path(d string, attrs ...Attr) *Element {
	return El("path", append([]Attr{A("d", d)}, attrs...)...)
}

// Group creates a <g>.
func Group(attrs ...Attr) *Element { return El("g", attrs...) }

// Text creates a <text> positioned at (x, y).
func Text(x, y float64, attrs ...Attr) *Element {
	return El("text", append([]Attr{N("x", x), N("y", y)}, attrs...)...)
}

// TSpan creates a <tspan> holding content.
func TSpan(content string, attrs ...Attr) *Element {
	e := El("tspan", attrs...)
	e.Content = content
	return e
}

// Style creates a <style> element.
func Style(css string) *Element {
	e := El("style")
	e.Content = css
	return e
}

// Rotate formats an SVG rotate transform around (cx, cy).
func Rotate(deg, cx, cy float64) string {
	return "rotate(" + Num(deg) + " " + Num(cx) + " " + Num(cy) + ")"
}
