package svg

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/svgbanner/pkg/errors"
)

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{800, "800"},
		{1.5, "1.5"},
		{1.234567, "1.23"},
		{1.999, "2"},
		{-0.001, "0"},
		{-35, "-35"},
	}

	for _, tt := range tests {
		if got := Num(tt.in); got != tt.want {
			t.Errorf("Num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDocumentMarshal(t *testing.T) {
	doc := NewDocument(800, 136, A("role", "img"), A("aria-label", `Tom & "Jerry"`))
	doc.Add(Style("text { white-space: pre; }"))
	doc.Add(Rect(0, 0, 800, 136, A("fill", "#0d1b2a")))

	data, err := doc.MarshalSVG()
	if err != nil {
		t.Fatalf("MarshalSVG() error: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`<svg width="800" height="136" xmlns="http://www.w3.org/2000/svg" role="img" aria-label="Tom &amp; &quot;Jerry&quot;">`,
		`<style>text { white-space: pre; }</style>`,
		`<rect x="0" y="0" width="800" height="136" fill="#0d1b2a"/>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("MarshalSVG() missing %q in:\n%s", want, out)
		}
	}
}

func TestTextIsWrittenInline(t *testing.T) {
	doc := NewDocument(100, 50)
	doc.Add(Text(10, 20, A("fill", "#fff")).Add(
		TSpan("Hello "),
		TSpan("<World>", A("font-weight", "700")),
	))

	data, err := doc.MarshalSVG()
	if err != nil {
		t.Fatalf("MarshalSVG() error: %v", err)
	}
	want := `<text x="10" y="20" fill="#fff"><tspan>Hello </tspan><tspan font-weight="700">&lt;World&gt;</tspan></text>`
	if !bytes.Contains(data, []byte(want)) {
		t.Errorf("MarshalSVG() = %s\nwant substring %s", data, want)
	}
}

func TestMarshalRejectsNonFiniteNumbers(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		doc := NewDocument(100, 100)
		doc.Add(Group().Add(Circle(v, 10, 2)))

		_, err := doc.MarshalSVG()
		if err == nil {
			t.Fatalf("MarshalSVG() with %v should fail", v)
		}
		if !errors.Is(err, errors.ErrCodeAssemblyFailed) {
			t.Errorf("MarshalSVG() code = %v, want %v", errors.GetCode(err), errors.ErrCodeAssemblyFailed)
		}
	}
}

func TestFragmentNodes(t *testing.T) {
	empty := Fragment{Body: []Node{Rect(0, 0, 1, 1)}}
	if n := len(empty.Nodes()); n != 1 {
		t.Errorf("Nodes() without defs = %d nodes, want 1", n)
	}

	f := Fragment{
		Defs: []Node{LinearGradient("g", "0%", "0%", "0%", "100%", Stop("0%", "#000"), StopAlpha("100%", "#fff", 0))},
		Body: []Node{Rect(0, 0, 1, 1, A("fill", "url(#g)"))},
	}
	nodes := f.Nodes()
	if len(nodes) != 2 {
		t.Fatalf("Nodes() = %d nodes, want 2", len(nodes))
	}
	if e := nodes[0].(*Element); e.Tag != "defs" {
		t.Errorf("first node = <%s>, want <defs>", e.Tag)
	}

	data, err := NewDocument(1, 1).AddFragment(f).MarshalSVG()
	if err != nil {
		t.Fatalf("MarshalSVG() error: %v", err)
	}
	if !bytes.Contains(data, []byte(`<stop offset="100%" stop-color="#fff" stop-opacity="0"/>`)) {
		t.Errorf("missing transparent stop in:\n%s", data)
	}
}

func TestElementAttrs(t *testing.T) {
	e := Text(40, 90.5, A("font-size", "16px"), A("fill", "red"))

	if v, ok := e.Attr("fill"); !ok || v != "red" {
		t.Errorf("Attr(fill) = %q, %v", v, ok)
	}
	if _, ok := e.Attr("stroke"); ok {
		t.Error("Attr(stroke) should be missing")
	}
	if v, ok := e.FloatAttr("y"); !ok || v != 90.5 {
		t.Errorf("FloatAttr(y) = %v, %v", v, ok)
	}
	if v, ok := e.FloatAttr("font-size"); !ok || v != 16 {
		t.Errorf("FloatAttr(font-size) = %v, %v", v, ok)
	}
}

func TestWalk(t *testing.T) {
	doc := NewDocument(10, 10)
	doc.Add(
		Defs(Filter("f", GaussianBlur(1))),
		Group().Add(Text(1, 2).Add(TSpan("a"), TSpan("b"))),
	)

	var tags []string
	doc.Walk(func(e *Element, parents []*Element) bool {
		tags = append(tags, e.Tag)
		return e.Tag != "defs"
	})

	want := "defs,g,text,tspan,tspan"
	if got := strings.Join(tags, ","); got != want {
		t.Errorf("Walk() visited %s, want %s", got, want)
	}
}

func TestPathData(t *testing.T) {
	var p PathData
	p.MoveTo(1.234, 5).Dot().MoveTo(10, 10).LineTo(20, 10.5).Close()

	if got, want := p.String(), "M1.23,5h0M10,10L20,10.5Z"; got != want {
		t.Errorf("PathData = %q, want %q", got, want)
	}
}

func TestScope(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 16)
	a := NewScope("stars", bytes.NewReader(seed))
	b := NewScope("stars", bytes.NewReader(seed))

	if a.ID("glow") != b.ID("glow") {
		t.Errorf("same reader should give same ids: %s vs %s", a.ID("glow"), b.ID("glow"))
	}
	if !strings.HasPrefix(a.ID("glow"), "stars-") || !strings.HasSuffix(a.ID("glow"), "-glow") {
		t.Errorf("ID() = %q, want stars-<uuid>-glow", a.ID("glow"))
	}
	if got := a.URL("glow"); got != "url(#"+a.ID("glow")+")" {
		t.Errorf("URL() = %q", got)
	}

	c := NewScope("stars", bytes.NewReader(bytes.Repeat([]byte{9}, 16)))
	if c.ID("glow") == a.ID("glow") {
		t.Error("different readers should give different ids")
	}
}

func TestRotate(t *testing.T) {
	if got := Rotate(-35, 400, 68); got != "rotate(-35 400 68)" {
		t.Errorf("Rotate() = %q", got)
	}
}
