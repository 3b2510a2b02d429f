// Package config holds deployment profiles and server settings.
//
// A profile is the immutable constant set of one deployed banner variant:
// canvas width, paddings, default parameters, cache policy and whether
// raster output is enabled. Two profiles are built in:
//
//   - classic: 800 wide, starfield default, long-lived public cache, SVG only
//   - kuro: 1200 wide, generative-maze default, no-cache, PNG and WebP enabled
//
// Both can be overridden, and new profiles added, from a TOML file:
//
//	[server]
//	addr = ":8080"
//	profile = "kuro"
//	read_timeout = "5s"
//
//	[profiles.kuro]
//	width = 1000
//	background = "matrix"
//
//	[profiles.docs]
//	base = "classic"
//	text = "Docs {online}"
package config

import (
	"maps"
	"slices"
	"time"

	"github.com/matzehuels/svgbanner/pkg/errors"
	"github.com/matzehuels/svgbanner/pkg/layout"
)

// Built-in profile names.
const (
	ProfileClassic = "classic"
	ProfileKuro    = "kuro"
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Request parameter bounds.
const (
	MinFontSize = 10
	MaxFontSize = 120
	MinQuality  = 10
	MaxQuality  = 100
)

// Profile is the configuration of one deployed variant.
type Profile struct {
	Name string `toml:"-"`

	Width      float64 `toml:"width"`
	PaddingX   float64 `toml:"padding_x"`
	PaddingY   float64 `toml:"padding_y"`
	LineHeight float64 `toml:"line_height"`

	Text       string `toml:"text"`
	TextColor  string `toml:"text_color"`
	FontSize   int    `toml:"font_size"`
	Align      string `toml:"align"`
	Background string `toml:"background"`
	Format     string `toml:"format"`
	Quality    int    `toml:"quality"`

	CacheControl string `toml:"cache_control"`
	Raster       bool   `toml:"raster"` // honor png and webp requests
}

// Layout returns the layout constants of the profile.
func (p Profile) Layout() layout.Config {
	return layout.Config{
		Width:      p.Width,
		PaddingX:   p.PaddingX,
		PaddingY:   p.PaddingY,
		LineHeight: p.LineHeight,
	}
}

// Validate checks the profile for values no request could repair.
func (p Profile) Validate() error {
	if err := errors.ValidateProfileName(p.Name); err != nil {
		return err
	}
	checks := []error{
		errors.ValidateRange("width", p.Width, 100, 4096),
		errors.ValidateRange("padding_x", p.PaddingX, 0, p.Width/2),
		errors.ValidateRange("padding_y", p.PaddingY, 0, 1000),
		errors.ValidateRange("line_height", p.LineHeight, 0.5, 5),
		errors.ValidateRange("font_size", float64(p.FontSize), MinFontSize, MaxFontSize),
		errors.ValidateRange("quality", float64(p.Quality), MinQuality, MaxQuality),
		errors.ValidateThemeID(p.Background),
		errors.ValidateCacheControl(p.CacheControl),
	}
	for _, err := range checks {
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidProfile, err, "profile %s", p.Name)
		}
	}
	switch p.Format {
	case FormatSVG:
	case FormatPNG, FormatWebP:
		if !p.Raster {
			return errors.New(errors.ErrCodeInvalidProfile, "profile %s: default format %s requires raster = true", p.Name, p.Format)
		}
	default:
		return errors.New(errors.ErrCodeInvalidProfile, "profile %s: unknown format %q", p.Name, p.Format)
	}
	if _, ok := layout.LookupAlign(p.Align); !ok {
		return errors.New(errors.ErrCodeInvalidProfile, "profile %s: unknown align %q", p.Name, p.Align)
	}
	return nil
}

// Classic returns the original 800-wide starfield profile.
func Classic() Profile {
	return Profile{
		Name:         ProfileClassic,
		Width:        800,
		PaddingX:     40,
		PaddingY:     60,
		LineHeight:   1.6,
		Text:         "대역폭이 최적화된 {은하수} 배경입니다.",
		TextColor:    "#ffffff",
		FontSize:     16,
		Align:        "left",
		Background:   "stars",
		Format:       FormatSVG,
		Quality:      80,
		CacheControl: "public, max-age=3600, s-maxage=3600",
	}
}

// Kuro returns the 1200-wide generative-maze profile with raster output.
func Kuro() Profile {
	p := Classic()
	p.Name = ProfileKuro
	p.Width = 1200
	p.Text = "{KURO} | generative neon maze"
	p.FontSize = 28
	p.Align = "center"
	p.Background = "kuro"
	p.CacheControl = "no-cache, no-store, must-revalidate"
	p.Raster = true
	return p
}

// Server holds the HTTP server settings.
type Server struct {
	Addr         string        `toml:"addr"`
	Profile      string        `toml:"profile"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// Config is the complete configuration of a deployment.
type Config struct {
	Server   Server
	Profiles map[string]Profile
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:         ":8080",
			Profile:      ProfileClassic,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Profiles: map[string]Profile{
			ProfileClassic: Classic(),
			ProfileKuro:    Kuro(),
		},
	}
}

// Profile returns the named profile.
func (c *Config) Profile(name string) (Profile, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, errors.New(errors.ErrCodeInvalidProfile, "unknown profile %q (available: %v)", name, c.Names())
	}
	return p, nil
}

// Active returns the profile selected in the server settings.
func (c *Config) Active() (Profile, error) {
	return c.Profile(c.Server.Profile)
}

// Names lists the profile names in sorted order.
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.Profiles))
}

// Validate checks the server settings and every profile.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server addr cannot be empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server timeouts cannot be negative")
	}
	for _, name := range c.Names() {
		if err := c.Profiles[name].Validate(); err != nil {
			return err
		}
	}
	if _, err := c.Active(); err != nil {
		return err
	}
	return nil
}
