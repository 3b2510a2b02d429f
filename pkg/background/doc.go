// Package background renders the procedural backdrops drawn behind banner
// text.
//
// Every theme implements [Renderer]: given the canvas size and a random
// source it returns a self-contained [svg.Fragment] holding its own
// definitions (gradients, filters, masks) and drawable nodes. Renderers keep
// no state between calls; all procedural entities (stars, meteors, glyph
// streams, maze segments) live only while the fragment is built.
//
// Themes are looked up by id in a [Registry]. Unknown ids resolve to the
// registry's fallback theme rather than failing:
//
//	reg := background.Default()
//	id, r := reg.Lookup("starfield") // "stars", *Stars
//	frag := r.Render(background.Canvas{Width: 800, Height: 136}, rng)
//
// # Randomness
//
// The random source is injected through [Rand], which *math/rand/v2.Rand
// satisfies. A seeded source gives byte-identical output, including the
// scoped definition ids, so tests and the seed request parameter can pin a
// rendering.
//
// # Themes
//
//   - plain: a solid rectangle
//   - sky: a vertical night gradient with faint stars
//   - stars: a galaxy with nebula glow, a stardust band, glowing stars and meteors
//   - matrix: falling glyph streams with a bright leading character
//   - kuro: a neon path network from a branching walk or a fixed template
package background
