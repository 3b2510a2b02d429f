package svg

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Fragment is a self-contained piece of a document: definitions plus the
// drawable nodes that reference them.
type Fragment struct {
	Defs []Node
	Body []Node
}

// Nodes returns the fragment as document nodes, with definitions wrapped in
// a single <defs> element.
func (f Fragment) Nodes() []Node {
	nodes := make([]Node, 0, len(f.Body)+1)
	if len(f.Defs) > 0 {
		nodes = append(nodes, Defs(f.Defs...))
	}
	return append(nodes, f.Body...)
}

// Document is the root <svg> element.
type Document struct {
	Width, Height float64
	Attrs         []Attr
	Children      []Node
}

// NewDocument creates an empty document of the given size.
func NewDocument(width, height float64, attrs ...Attr) *Document {
	return &Document{Width: width, Height: height, Attrs: attrs}
}

// Add appends nodes to the document root.
func (d *Document) Add(nodes ...Node) *Document {
	d.Children = append(d.Children, nodes...)
	return d
}

// AddFragment appends all nodes of f.
func (d *Document) AddFragment(f Fragment) *Document {
	return d.Add(f.Nodes()...)
}

// Root returns the document as an <svg> element.
func (d *Document) Root() *Element {
	attrs := append([]Attr{N("width", d.Width), N("height", d.Height), A("xmlns", Namespace)}, d.Attrs...)
	return &Element{Tag: "svg", Attrs: attrs, Children: d.Children}
}

// MarshalSVG serializes the document.
func (d *Document) MarshalSVG() ([]byte, error) {
	w := newWriter()
	d.Root().write(w, 0, false)
	if w.err != nil {
		return nil, w.err
	}
	return w.buf.Bytes(), nil
}

// Walk visits every element depth-first. Returning false from fn skips the
// element's children.
func (d *Document) Walk(fn func(e *Element, parents []*Element) bool) {
	walk(d.Children, nil, fn)
}

func walk(nodes []Node, parents []*Element, fn func(*Element, []*Element) bool) {
	for _, n := range nodes {
		e, ok := n.(*Element)
		if !ok {
			continue
		}
		if !fn(e, parents) {
			continue
		}
		walk(e.Children, append(parents, e), fn)
	}
}
