package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var classic = Config{Width: 800, PaddingX: 40, PaddingY: 60, LineHeight: 1.6}

func TestComputeSingleLine(t *testing.T) {
	got := Compute(classic, 1, 16, AlignLeft)
	want := Layout{
		Width:           800,
		Height:          136,
		TextBlockHeight: 16,
		LineAdvance:     25.6,
		Baselines:       []float64{73},
		X:               40,
		Anchor:          AnchorStart,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeMultiLine(t *testing.T) {
	got := Compute(classic, 3, 20, AlignCenter)

	// block = 2*32 + 20 = 84, height = 84 + 120 = 204
	// first = round(102 - 42 + 16) = 76
	want := Layout{
		Width:           800,
		Height:          204,
		TextBlockHeight: 84,
		LineAdvance:     32,
		Baselines:       []float64{76, 108, 140},
		X:               400,
		Anchor:          AnchorMiddle,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestBaselinesMatchRelativeAdvance(t *testing.T) {
	l := Compute(classic, 5, 17, AlignLeft)
	y := l.FirstBaseline()
	for i, b := range l.Baselines {
		if diff := b - y; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("baseline %d = %v, want %v", i, b, y)
		}
		y += l.LineAdvance
	}
}

func TestHeightIncreasesWithLines(t *testing.T) {
	for _, fontSize := range []float64{10, 16, 47, 120} {
		prev := Compute(classic, 1, fontSize, AlignLeft).Height
		for n := 2; n <= 20; n++ {
			h := Compute(classic, n, fontSize, AlignLeft).Height
			if h <= prev {
				t.Errorf("fontSize %v: height(%d) = %v, not greater than height(%d) = %v", fontSize, n, h, n-1, prev)
			}
			prev = h
		}
	}
}

func TestAnchor(t *testing.T) {
	wide := Config{Width: 1200, PaddingX: 50, PaddingY: 60, LineHeight: 1.6}

	tests := []struct {
		align      string
		wantX      float64
		wantAnchor string
	}{
		{"left", 50, AnchorStart},
		{"center", 600, AnchorMiddle},
		{"right", 1150, AnchorEnd},
		{"justify", 50, AnchorStart},
		{"", 50, AnchorStart},
		{"CENTER", 50, AnchorStart},
	}

	for _, tt := range tests {
		t.Run(tt.align, func(t *testing.T) {
			l := Compute(wide, 1, 16, ParseAlign(tt.align))
			if l.X != tt.wantX || l.Anchor != tt.wantAnchor {
				t.Errorf("align %q: x=%v anchor=%s, want x=%v anchor=%s", tt.align, l.X, l.Anchor, tt.wantX, tt.wantAnchor)
			}
		})
	}
}

func TestComputeZeroLines(t *testing.T) {
	l := Compute(classic, 0, 16, AlignLeft)
	if len(l.Baselines) != 1 {
		t.Errorf("Compute(0 lines) baselines = %d, want 1", len(l.Baselines))
	}
}
