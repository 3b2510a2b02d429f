package background

import (
	"encoding/binary"

	"github.com/matzehuels/svgbanner/pkg/svg"
)

// Rand is the random source used by renderers.
type Rand interface {
	Float64() float64
	IntN(n int) int
	Uint64() uint64
}

// Canvas is the drawing area of one banner.
type Canvas struct {
	Width, Height float64
}

// Renderer draws one background theme.
type Renderer interface {
	Render(c Canvas, rng Rand) svg.Fragment
}

// RendererFunc adapts a function to [Renderer].
type RendererFunc func(c Canvas, rng Rand) svg.Fragment

// Render calls f.
func (f RendererFunc) Render(c Canvas, rng Rand) svg.Fragment { return f(c, rng) }

// between returns a uniform value in [lo, hi).
func between(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// centered returns a uniform value in [-0.5, 0.5).
func centered(rng Rand) float64 {
	return rng.Float64() - 0.5
}

// randReader exposes a Rand as an io.Reader for scope ids.
type randReader struct {
	rng Rand
}

func (r randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(buf[:], r.rng.Uint64())
		copy(p[i:], buf[:])
	}
	return len(p), nil
}

func newScope(name string, rng Rand) svg.Scope {
	return svg.NewScope(name, randReader{rng: rng})
}
