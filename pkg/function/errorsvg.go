package function

import (
	"bytes"

	svgo "github.com/ajstarks/svgo"

	"github.com/matzehuels/svgbanner/pkg/markup"
)

// Error image geometry and colors.
const (
	errorWidth      = 400
	errorHeight     = 200
	errorBackground = "#f8d7da"
	errorForeground = "#721c24"
)

// ErrorDocument renders the fixed-size image shown for failed requests.
// The message is sanitized to XML characters and escaped by the SVG writer.
func ErrorDocument(message string) []byte {
	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Start(errorWidth, errorHeight)
	canvas.Rect(0, 0, errorWidth, errorHeight, `fill="`+errorBackground+`"`)
	canvas.Text(10, errorHeight/2, "Error: "+markup.Sanitize(message),
		`font-family="monospace"`,
		`font-size="16"`,
		`fill="`+errorForeground+`"`,
		`dominant-baseline="middle"`,
	)
	canvas.End()
	return buf.Bytes()
}

func errorResponse(message string) Response {
	return Response{
		StatusCode: 500,
		Headers:    map[string]string{HeaderContentType: ContentTypeSVG},
		Body:       string(ErrorDocument(message)),
	}
}
