// Package markup handles the inline text syntax accepted by the banner endpoint.
//
// Banner text is a single string where "|" separates lines and "{...}"
// marks a bold span:
//
//	Hello {World}|second line
//
// [SplitLines] cuts the text into lines, [ParseBold] turns one line into a
// sequence of [Run] values, and [Escape] makes any string safe to embed in
// SVG text content or attribute values.
//
// Parsing never fails. An unterminated "{" or an empty "{}" is kept as
// literal text.
package markup
