package svg

import (
	"bytes"
	"math"
	"strings"

	"github.com/matzehuels/svgbanner/pkg/errors"
	"github.com/matzehuels/svgbanner/pkg/markup"
)

type writer struct {
	buf bytes.Buffer
	err error
}

func newWriter() *writer { return &writer{} }

// inlineTags hold text; their children are written without whitespace.
var inlineTags = map[string]bool{"text": true, "tspan": true}

func (e *Element) write(w *writer, depth int, inline bool) {
	if w.err != nil {
		return
	}
	if !inline {
		w.buf.WriteString(strings.Repeat("  ", depth))
	}

	w.buf.WriteByte('<')
	w.buf.WriteString(e.Tag)
	for _, a := range e.Attrs {
		if a.isNum && (math.IsNaN(a.num) || math.IsInf(a.num, 0)) {
			w.err = errors.New(errors.ErrCodeAssemblyFailed, "attribute %s of <%s> is not a finite number", a.Name, e.Tag)
			return
		}
		w.buf.WriteByte(' ')
		w.buf.WriteString(a.Name)
		w.buf.WriteString(`="`)
		w.buf.WriteString(markup.Escape(a.Value))
		w.buf.WriteByte('"')
	}

	if len(e.Children) == 0 && e.Content == "" {
		w.buf.WriteString("/>")
		if !inline {
			w.buf.WriteByte('\n')
		}
		return
	}
	w.buf.WriteByte('>')

	childInline := inline || inlineTags[e.Tag]
	w.buf.WriteString(markup.Escape(e.Content))
	if len(e.Children) > 0 && !childInline {
		w.buf.WriteByte('\n')
	}
	for _, c := range e.Children {
		c.write(w, depth+1, childInline)
	}
	if len(e.Children) > 0 && !childInline {
		w.buf.WriteString(strings.Repeat("  ", depth))
	}

	w.buf.WriteString("</")
	w.buf.WriteString(e.Tag)
	w.buf.WriteByte('>')
	if !inline {
		w.buf.WriteByte('\n')
	}
}
