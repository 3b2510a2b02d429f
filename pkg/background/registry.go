package background

import (
	"slices"
	"strings"
)

// Theme ids of the built-in renderers.
const (
	ThemePlain  = "plain"
	ThemeSky    = "sky"
	ThemeStars  = "stars"
	ThemeMatrix = "matrix"
	ThemeKuro   = "kuro"
)

// ThemeInfo describes a registered theme.
type ThemeInfo struct {
	ID      string
	Aliases []string
}

// Registry maps theme ids and aliases to renderers.
// A Registry is not safe for concurrent registration; build it at startup
// and only call Lookup afterwards.
type Registry struct {
	renderers map[string]Renderer
	aliases   map[string]string
	infos     []ThemeInfo
	fallback  string
}

// NewRegistry creates an empty registry. Lookups of unknown ids resolve to
// fallback, which must be registered before the first lookup.
func NewRegistry(fallback string) *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
		aliases:   make(map[string]string),
		fallback:  fallback,
	}
}

// Register adds a renderer under id and any aliases. Registering an existing
// id replaces its renderer.
func (r *Registry) Register(id string, renderer Renderer, aliases ...string) {
	if _, exists := r.renderers[id]; !exists {
		r.infos = append(r.infos, ThemeInfo{ID: id, Aliases: aliases})
	}
	r.renderers[id] = renderer
	for _, a := range aliases {
		r.aliases[a] = id
	}
}

// Resolve returns the canonical id for id or an alias, and whether it is known.
func (r *Registry) Resolve(id string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	if _, ok := r.renderers[key]; ok {
		return key, true
	}
	if canonical, ok := r.aliases[key]; ok {
		return canonical, true
	}
	return r.fallback, false
}

// Lookup returns the canonical id and renderer for id, falling back to the
// registry's fallback theme for unknown ids.
func (r *Registry) Lookup(id string) (string, Renderer) {
	canonical, _ := r.Resolve(id)
	return canonical, r.renderers[canonical]
}

// Has reports whether id or an alias is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.Resolve(id)
	return ok
}

// Fallback returns the id used for unknown themes.
func (r *Registry) Fallback() string { return r.fallback }

// Themes lists the registered themes in registration order.
func (r *Registry) Themes() []ThemeInfo {
	out := make([]ThemeInfo, len(r.infos))
	for i, info := range r.infos {
		out[i] = ThemeInfo{ID: info.ID, Aliases: slices.Clone(info.Aliases)}
	}
	return out
}

// Default returns a registry with all built-in themes and plain as fallback.
func Default() *Registry {
	r := NewRegistry(ThemePlain)
	r.Register(ThemePlain, NewPlain(), "default", "solid")
	r.Register(ThemeSky, NewSky(), "night")
	r.Register(ThemeStars, NewStars(), "starfield", "galaxy")
	r.Register(ThemeMatrix, NewMatrix(), "character-rain", "rain")
	r.Register(ThemeKuro, NewKuro(), "maze", "generative-maze", "neon")
	return r
}
