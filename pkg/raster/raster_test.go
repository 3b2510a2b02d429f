package raster

import (
	"bytes"
	"context"
	"image/color"
	"math"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/svgbanner/pkg/errors"
	"github.com/matzehuels/svgbanner/pkg/svg"
)

func newRasterizer(t *testing.T) *Rasterizer {
	t.Helper()
	r, err := NewRasterizer()
	if err != nil {
		t.Fatalf("NewRasterizer() = %v", err)
	}
	return r
}

func solidDoc() *svg.Document {
	return svg.NewDocument(200, 100).Add(svg.Rect(0, 0, 200, 100, svg.A("fill", "#0000ff")))
}

func TestRasterizeShapes(t *testing.T) {
	img, err := newRasterizer(t).Rasterize(context.Background(), solidDoc())
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("bounds = %v", b)
	}
	got := img.RGBAAt(100, 50)
	if got.B < 250 || got.R > 5 || got.G > 5 {
		t.Errorf("center pixel = %v, want blue", got)
	}
}

func TestRasterizeText(t *testing.T) {
	doc := solidDoc().Add(
		svg.Text(100, 60,
			svg.A("font-size", "32px"),
			svg.A("fill", "#ffffff"),
			svg.A("text-anchor", "middle"),
		).Add(svg.TSpan("Hi "), svg.TSpan("there", svg.A("font-weight", "700"))),
	)

	img, err := newRasterizer(t).Rasterize(context.Background(), doc)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}

	white := 0
	for y := 30; y < 70; y++ {
		for x := 0; x < 200; x++ {
			if c := img.RGBAAt(x, y); c.R > 200 && c.G > 200 {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("no text pixels drawn")
	}
}

func TestRasterizeKeywordTextColor(t *testing.T) {
	for _, fill := range []string{"crimson", "rgb(220, 20, 60)"} {
		doc := solidDoc().Add(
			svg.Text(100, 70, svg.A("font-size", "48px"), svg.A("fill", fill), svg.A("text-anchor", "middle")).
				Add(svg.TSpan("HH", svg.A("font-weight", "700"))),
		)
		img, err := newRasterizer(t).Rasterize(context.Background(), doc)
		if err != nil {
			t.Fatalf("Rasterize() = %v", err)
		}

		crimson := 0
		for y := 20; y < 80; y++ {
			for x := 0; x < 200; x++ {
				if c := img.RGBAAt(x, y); c.R > 180 && c.G < 60 && c.B < 100 {
					crimson++
				}
			}
		}
		if crimson == 0 {
			t.Errorf("fill %q: no crimson text pixels drawn", fill)
		}
	}
}

func TestRasterizeSkipsMissingGlyphs(t *testing.T) {
	doc := solidDoc().Add(svg.Text(10, 50, svg.A("fill", "#ffffff")).Add(svg.TSpan("은하수")))
	img, err := newRasterizer(t).Rasterize(context.Background(), doc)
	if err != nil {
		t.Fatalf("Rasterize() = %v", err)
	}
	for x := 0; x < 200; x++ {
		if c := img.RGBAAt(x, 45); c.R > 5 {
			t.Fatalf("pixel %d painted for glyphs the font lacks: %v", x, c)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	for _, quality := range []int{10, 60, 100} {
		data, err := newRasterizer(t).Encode(context.Background(), solidDoc(), FormatPNG, quality)
		if err != nil {
			t.Fatalf("Encode(png, %d) = %v", quality, err)
		}
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decode png: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
			t.Errorf("bounds = %v", b)
		}
		r, g, b, _ := img.At(10, 10).RGBA()
		if got := (color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b)}); got.B < 0xf000 {
			t.Errorf("pixel = %v, want blue", got)
		}
	}
}

func TestEncodeWebP(t *testing.T) {
	data, err := newRasterizer(t).Encode(context.Background(), solidDoc(), FormatWebP, 80)
	if err != nil {
		t.Fatalf("Encode(webp) = %v", err)
	}
	if len(data) < 12 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("not a webp container: % x", data[:min(len(data), 12)])
	}
}

func TestEncodeErrors(t *testing.T) {
	r := newRasterizer(t)

	if _, err := r.Encode(context.Background(), solidDoc(), "gif", 80); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Encode(gif) = %v, want unsupported", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Encode(ctx, solidDoc(), FormatPNG, 80); !errors.Is(err, errors.ErrCodeEncodeFailed) {
		t.Errorf("Encode(canceled) = %v, want encode failure", err)
	}

	if _, err := r.Encode(context.Background(), svg.NewDocument(0, 0), FormatPNG, 80); !errors.Is(err, errors.ErrCodeEncodeFailed) {
		t.Errorf("Encode(empty) = %v, want encode failure", err)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		FormatPNG:  "image/png",
		FormatWebP: "image/webp",
		"svg":      "",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		alpha   float64
	}{
		{"#ff0000", 255, 0, 0, 1},
		{"#fff", 255, 255, 255, 1},
		{"White", 255, 255, 255, 1},
		{" gold ", 255, 215, 0, 1},
		{"navy", 0, 0, 128, 1},
		{"teal", 0, 128, 128, 1},
		{"crimson", 220, 20, 60, 1},
		{"rebeccapurple", 102, 51, 153, 1},
		{"rgb(255,0,0)", 255, 0, 0, 1},
		{"rgb( 0, 128 ,255 )", 0, 128, 255, 1},
		{"RGB(100%, 50%, 0%)", 255, 128, 0, 1},
		{"rgba(0, 0, 255, 0.5)", 0, 0, 255, 0.5},
		{"rgb(0 255 0 / 25%)", 0, 255, 0, 0.25},
		{"rgb(300, -5, 0)", 255, 0, 0, 1},
		{"rgb(1, 2)", 255, 255, 255, 1},
		{"rgb(a, b, c)", 255, 255, 255, 1},
		{"not-a-color", 255, 255, 255, 1},
		{"", 255, 255, 255, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, alpha := parseColor(tt.in)
			r, g, b := c.RGB255()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("parseColor(%q) = %d,%d,%d; want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
			}
			if math.Abs(alpha-tt.alpha) > 1e-9 {
				t.Errorf("parseColor(%q) alpha = %v, want %v", tt.in, alpha, tt.alpha)
			}
		})
	}
}
