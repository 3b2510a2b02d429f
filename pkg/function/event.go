package function

// Event is one incoming request.
type Event struct {
	QueryStringParameters map[string]string `json:"queryStringParameters"`
}

// Response is the handler result. Binary bodies are base64 encoded and
// flagged with IsBase64Encoded.
type Response struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Header names set on responses.
const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
)

// ContentTypeSVG is the MIME type of vector responses.
const ContentTypeSVG = "image/svg+xml"
