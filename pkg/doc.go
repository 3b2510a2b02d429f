// Package pkg provides the libraries behind svgbanner.
//
// # Overview
//
// svgbanner turns a short piece of text into an SVG banner drawn over a
// procedurally generated background. Text is split into lines at "|" and
// runs wrapped in {braces} are set in bold. The pkg directory is organized
// by stage:
//
//  1. [markup] - Escaping, line splitting and the bold parser
//  2. [background] - Theme renderers (plain, sky, stars, matrix, kuro) and their registry
//  3. [layout] - Canvas height, baselines and anchors
//  4. [svg] - A small element tree and writer
//  5. [banner] - Assembles background and text into one document
//  6. [raster] - PNG and WebP output
//  7. [function] - The request handler shared by the HTTP server and the CLI
//
// Supporting packages are [config] (TOML profiles), [errors] (coded errors),
// [observability] (render and encode hooks) and [buildinfo].
//
// # Data flow
//
//	query parameters
//	       ↓
//	  [function] resolve params against the profile
//	       ↓
//	  [layout] + [markup]       [background] (concurrently)
//	       ↓                         ↓
//	  [banner] assemble one svg document
//	       ↓
//	  svg text, or [raster] PNG/WebP (base64)
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/svgbanner/pkg/config"
//	    "github.com/matzehuels/svgbanner/pkg/function"
//	)
//
//	h := function.NewHandler(config.Classic(), nil, nil, nil)
//	resp := h.Handle(context.Background(), function.Event{
//	    QueryStringParameters: map[string]string{"text": "Hello {World}", "bg": "stars"},
//	})
//	// resp.Body holds the SVG document
//
// [markup]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/markup
// [background]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/background
// [layout]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/layout
// [svg]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/svg
// [banner]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/banner
// [raster]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/raster
// [function]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/function
// [config]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/svgbanner/pkg/buildinfo
package pkg
