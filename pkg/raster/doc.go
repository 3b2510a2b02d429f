// Package raster converts banner documents to PNG or WebP.
//
// Vector shapes are rasterized with oksvg and rasterx. oksvg has no text
// support and skips filters, so after the shapes are drawn every <text>
// element is painted on top with freetype using the Go fonts. Glyphs the
// fonts lack (CJK in the matrix theme, for example) are left out, and blur
// filters are not reproduced.
//
// The function handler depends only on the [Encoder] interface; [Rasterizer]
// is the implementation wired into the server and the CLI.
package raster
