package raster

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
	"github.com/golang/freetype/truetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/svgbanner/pkg/errors"
	"github.com/matzehuels/svgbanner/pkg/svg"
)

// Raster output formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// ContentType returns the MIME type of a raster format.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	default:
		return ""
	}
}

// Encoder turns a document into encoded image bytes.
type Encoder interface {
	Encode(ctx context.Context, doc *svg.Document, format string, quality int) ([]byte, error)
}

// Rasterizer is the oksvg and freetype based [Encoder].
// It is safe for concurrent use.
type Rasterizer struct {
	regular *truetype.Font
	bold    *truetype.Font
}

// NewRasterizer parses the embedded Go fonts.
func NewRasterizer() (*Rasterizer, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse regular font")
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse bold font")
	}
	return &Rasterizer{regular: regular, bold: bold}, nil
}

// Encode implements [Encoder]. Quality ranges from 10 to 100; for PNG it
// selects the compression level.
func (r *Rasterizer) Encode(ctx context.Context, doc *svg.Document, format string, quality int) ([]byte, error) {
	if ContentType(format) == "" {
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported raster format %q", format)
	}

	img, err := r.Rasterize(ctx, doc)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %s", format)
	}

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(pngCompression(quality)))
	case FormatWebP:
		err = webp.Encode(&buf, img, webp.Options{Quality: quality})
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %s", format)
	}
	return buf.Bytes(), nil
}

// Rasterize draws doc into an RGBA image of the document's size.
func (r *Rasterizer) Rasterize(ctx context.Context, doc *svg.Document) (*image.RGBA, error) {
	w, h := int(math.Round(doc.Width)), int(math.Round(doc.Height))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeEncodeFailed, "invalid document size %vx%v", doc.Width, doc.Height)
	}

	data, err := doc.MarshalSVG()
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "parse document")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "rasterize")
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	if err := r.drawText(img, doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "draw text")
	}
	return img, nil
}

func pngCompression(quality int) png.CompressionLevel {
	switch {
	case quality < 40:
		return png.BestSpeed
	case quality < 80:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}
