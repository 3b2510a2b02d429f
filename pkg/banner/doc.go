// Package banner assembles complete banner documents.
//
// [Assemble] composes a computed layout, a background fragment and the
// parsed text lines into one [svg.Document]. [Renderer] runs the whole
// sequence for one request: split and parse the text, compute the layout,
// render the background and the text concurrently, then assemble.
//
// The assembled document has this shape:
//
//	<svg width height xmlns role="img" aria-label="raw text">
//	  <style>text { white-space: pre; }</style>
//	  <defs>...background definitions...</defs>
//	  ...background body...
//	  <text x y font-family font-size fill text-anchor ...><tspan>..</tspan></text>
//	  ...one <text> per line...
//	</svg>
package banner
