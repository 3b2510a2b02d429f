// Package svg is a small typed builder for SVG documents.
//
// Renderers build a tree of [Element] values through constructors such as
// [Rect], [Circle], [Path], [Text] and [LinearGradient], group them into a
// [Fragment] and hand them to a [Document]. The tree is serialized once by
// [Document.MarshalSVG]:
//
//	doc := svg.NewDocument(800, 136)
//	doc.Add(svg.Rect(0, 0, 800, 136, svg.A("fill", "#0d1b2a")))
//	doc.Add(svg.Text(40, 90, svg.A("fill", "#fff")).Add(svg.TSpan("Hello")))
//	data, err := doc.MarshalSVG()
//
// All attribute values and text content are escaped during serialization,
// so callers always pass raw strings. Numeric attributes are rounded to two
// decimals; a NaN or infinite number makes MarshalSVG fail with an
// ASSEMBLY_FAILED error instead of emitting a broken document.
//
// Content inside <text> and <tspan> is written without indentation because
// banner text is rendered with white-space: pre.
package svg
