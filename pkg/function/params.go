package function

import (
	"strconv"
	"strings"

	"github.com/matzehuels/svgbanner/pkg/config"
	"github.com/matzehuels/svgbanner/pkg/layout"
)

// Query parameter names.
const (
	ParamText      = "text"
	ParamTextColor = "textColor"
	ParamFontSize  = "fontSize"
	ParamAlign     = "align"
	ParamBg        = "bg"
	ParamFormat    = "format"
	ParamQuality   = "quality"
	ParamSeed      = "seed"
)

// Params are the resolved parameters of one request.
type Params struct {
	Text       string
	TextColor  string
	FontSize   int
	Align      layout.Align
	Background string
	Format     string
	Quality    int

	Seed   uint64
	Seeded bool // Seed came from the request
}

// ResolveParams applies query overrides to the profile defaults.
//
// text and textColor are taken verbatim when present, even if empty.
// fontSize and quality read a leading integer; a missing, malformed or zero
// value means the default, and the result is clamped to its range. align
// falls back to left, and format to svg, for unknown values. format is
// ignored unless the profile enables raster output. Unknown themes are
// passed through; the theme registry resolves them to its fallback.
func ResolveParams(p config.Profile, q map[string]string) Params {
	params := Params{
		Text:       p.Text,
		TextColor:  p.TextColor,
		FontSize:   p.FontSize,
		Align:      layout.ParseAlign(p.Align),
		Background: p.Background,
		Format:     config.FormatSVG,
		Quality:    p.Quality,
	}
	if p.Raster {
		params.Format = p.Format
	}

	if v, ok := q[ParamText]; ok {
		params.Text = v
	}
	if v, ok := q[ParamTextColor]; ok {
		params.TextColor = v
	}
	params.FontSize = clamp(leadingInt(q[ParamFontSize], p.FontSize), config.MinFontSize, config.MaxFontSize)
	if v, ok := q[ParamAlign]; ok {
		params.Align = layout.ParseAlign(strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := q[ParamBg]; ok && strings.TrimSpace(v) != "" {
		params.Background = v
	}
	if v, ok := q[ParamFormat]; ok && p.Raster {
		params.Format = parseFormat(v)
	}
	params.Quality = clamp(leadingInt(q[ParamQuality], p.Quality), config.MinQuality, config.MaxQuality)
	if v, err := strconv.ParseUint(strings.TrimSpace(q[ParamSeed]), 10, 64); err == nil {
		params.Seed, params.Seeded = v, true
	}
	return params
}

func parseFormat(s string) string {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case config.FormatPNG, config.FormatWebP:
		return f
	default:
		return config.FormatSVG
	}
}

// leadingInt parses an optional sign and the digits that follow, ignoring
// leading whitespace and anything after the digits, so "24px" reads as 24.
// It returns def when there are no digits or the value is zero.
func leadingInt(s string, def int) int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of int range; the sign decides which bound it clamps to.
		if s[0] == '-' {
			return -1
		}
		return int(^uint(0) >> 1)
	}
	if v == 0 {
		return def
	}
	return v
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
