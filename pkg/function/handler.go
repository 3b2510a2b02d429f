package function

import (
	"context"
	"encoding/base64"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/svgbanner/pkg/background"
	"github.com/matzehuels/svgbanner/pkg/banner"
	"github.com/matzehuels/svgbanner/pkg/config"
	"github.com/matzehuels/svgbanner/pkg/errors"
	"github.com/matzehuels/svgbanner/pkg/observability"
	"github.com/matzehuels/svgbanner/pkg/raster"
)

// Handler renders banners for one deployment profile.
// It is safe for concurrent use.
type Handler struct {
	Profile  config.Profile
	Renderer *banner.Renderer
	Encoder  raster.Encoder // nil disables raster output
	Logger   *log.Logger
}

// NewHandler creates a handler. A nil registry uses [background.Default]
// and a nil logger uses log.Default().
func NewHandler(profile config.Profile, themes *background.Registry, enc raster.Encoder, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		Profile:  profile,
		Renderer: banner.NewRenderer(profile.Layout(), themes, logger),
		Encoder:  enc,
		Logger:   logger,
	}
}

// Handle serves one request. It never returns an error: failures become
// the error image with status 500.
func (h *Handler) Handle(ctx context.Context, ev Event) (resp Response) {
	start := time.Now()
	logger := h.Logger.With("request_id", requestID(ctx), "profile", h.Profile.Name)
	var (
		params Params
		theme  string
	)
	defer func() {
		if rec := recover(); rec != nil {
			resp = h.fail(logger, errors.Recovered(rec))
		}
		observability.Request().OnResponse(ctx, theme, params.Format, resp.StatusCode, time.Since(start))
	}()

	params = ResolveParams(h.Profile, ev.QueryStringParameters)
	theme, _ = h.Renderer.Themes.Resolve(params.Background)

	res, err := h.Renderer.Render(ctx, bannerRequest(params), newRand(params))
	if err != nil {
		return h.fail(logger, err)
	}
	theme = res.Theme

	body, err := res.Document.MarshalSVG()
	if err != nil {
		return h.fail(logger, errors.Wrap(errors.ErrCodeAssemblyFailed, err, "assemble document"))
	}

	resp = Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			HeaderContentType:  ContentTypeSVG,
			HeaderCacheControl: h.Profile.CacheControl,
		},
		Body: string(body),
	}

	if params.Format != config.FormatSVG {
		data, err := h.encode(ctx, res, params)
		if err != nil {
			return h.fail(logger, err)
		}
		resp.Headers[HeaderContentType] = raster.ContentType(params.Format)
		resp.Body = base64.StdEncoding.EncodeToString(data)
		resp.IsBase64Encoded = true
	}

	logger.Info("rendered banner",
		"theme", theme,
		"format", params.Format,
		"lines", len(res.Layout.Baselines),
		"bytes", len(resp.Body),
		"duration", time.Since(start))
	return resp
}

func (h *Handler) encode(ctx context.Context, res *banner.Result, params Params) ([]byte, error) {
	if h.Encoder == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s output is not available", params.Format)
	}

	start := time.Now()
	observability.Encode().OnEncodeStart(ctx, params.Format)
	data, err := h.Encoder.Encode(ctx, res.Document, params.Format, params.Quality)
	if err == nil && len(data) == 0 {
		err = errors.New(errors.ErrCodeEncodeFailed, "encoder returned no data")
	}
	observability.Encode().OnEncodeComplete(ctx, params.Format, len(data), time.Since(start), err)
	if err != nil {
		if errors.GetCode(err) == "" {
			err = errors.Wrap(errors.ErrCodeEncodeFailed, err, "encode %s", params.Format)
		}
		return nil, err
	}
	return data, nil
}

func (h *Handler) fail(logger *log.Logger, err error) Response {
	logger.Error("render failed", "code", errors.GetCode(err), "err", err)
	return errorResponse(errors.UserMessage(err))
}

func bannerRequest(p Params) banner.Request {
	return banner.Request{
		Text:      p.Text,
		TextColor: p.TextColor,
		FontSize:  float64(p.FontSize),
		Align:     p.Align,
		Theme:     p.Background,
	}
}

// newRand returns the request's random source. Unseeded requests draw a
// seed from the global generator.
func newRand(p Params) *rand.Rand {
	seed := p.Seed
	if !p.Seeded {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type requestIDKey struct{}

// WithRequestID attaches a request id to ctx for the handler's logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// requestID returns the id attached to ctx, or a new random one.
func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
