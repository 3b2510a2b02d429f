package banner

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/svgbanner/pkg/background"
	"github.com/matzehuels/svgbanner/pkg/errors"
	"github.com/matzehuels/svgbanner/pkg/layout"
	"github.com/matzehuels/svgbanner/pkg/markup"
	"github.com/matzehuels/svgbanner/pkg/observability"
	"github.com/matzehuels/svgbanner/pkg/svg"
)

// Request holds resolved banner parameters. Every field is expected to be
// defaulted and clamped already.
type Request struct {
	Text      string
	TextColor string
	FontSize  float64
	Align     layout.Align
	Theme     string
}

// Result is a rendered banner.
type Result struct {
	Document *svg.Document
	Theme    string // canonical id of the theme that drew the background
	Layout   layout.Layout
	Duration time.Duration
}

// Renderer produces banner documents for one deployment profile.
//
// A Renderer holds no per-request state; one instance can serve concurrent
// requests as long as each call gets its own random source.
type Renderer struct {
	Layout layout.Config
	Themes *background.Registry
	Logger *log.Logger
}

// NewRenderer creates a renderer. A nil registry uses [background.Default]
// and a nil logger uses log.Default().
func NewRenderer(cfg layout.Config, themes *background.Registry, logger *log.Logger) *Renderer {
	if themes == nil {
		themes = background.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{Layout: cfg, Themes: themes, Logger: logger}
}

// Render lays out the text, draws the background and the text concurrently
// and assembles the document. Panics in either branch are returned as
// errors.
func (r *Renderer) Render(ctx context.Context, req Request, rng background.Rand) (*Result, error) {
	start := time.Now()

	rawLines := markup.SplitLines(req.Text)
	l := layout.Compute(r.Layout, len(rawLines), req.FontSize, req.Align)
	theme, renderer := r.Themes.Lookup(req.Theme)
	if renderer == nil {
		return nil, errors.New(errors.ErrCodeRenderFailed, "no renderer for theme %q", theme)
	}

	observability.Render().OnRenderStart(ctx, theme)

	var (
		bg    svg.Fragment
		lines [][]markup.Run
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		defer recoverInto(&err)
		if err := gctx.Err(); err != nil {
			return err
		}
		bg = renderer.Render(background.Canvas{Width: l.Width, Height: l.Height}, rng)
		return nil
	})
	g.Go(func() (err error) {
		defer recoverInto(&err)
		lines = make([][]markup.Run, len(rawLines))
		for i, line := range rawLines {
			lines[i] = markup.ParseBold(line)
		}
		return nil
	})
	err := g.Wait()

	duration := time.Since(start)
	observability.Render().OnRenderComplete(ctx, theme, duration, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s background", theme)
	}

	doc := Assemble(Input{
		Layout:     l,
		Text:       req.Text,
		Lines:      lines,
		TextColor:  req.TextColor,
		FontSize:   req.FontSize,
		Background: bg,
	})

	r.Logger.Debug("rendered banner",
		"theme", theme,
		"lines", len(lines),
		"width", l.Width,
		"height", l.Height,
		"duration", duration)

	return &Result{Document: doc, Theme: theme, Layout: l, Duration: duration}, nil
}

func recoverInto(err *error) {
	if rec := recover(); rec != nil {
		*err = errors.Recovered(rec)
	}
}
