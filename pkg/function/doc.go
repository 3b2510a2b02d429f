// Package function is the banner request handler.
//
// [Handler.Handle] takes the query parameters of one request as an [Event]
// and returns a [Response] carrying a status, headers and a body, in the
// shape serverless platforms use for HTTP functions. The HTTP server in
// internal/server and the CLI render command both drive it.
//
// Parameters never cause errors: unknown or malformed values fall back to
// the active profile's defaults. Any failure while rendering or encoding,
// including a panic, produces a small error image with status 500 instead
// of a bare error.
package function
