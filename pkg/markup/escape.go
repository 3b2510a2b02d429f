package markup

import "strings"

// escaper replaces the five XML reserved characters. strings.Replacer scans
// the input once, so an ampersand produced by one replacement is never
// escaped again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape returns s as XML character data: invalid UTF-8 and characters
// XML does not allow are handled as in [Sanitize], and &, <, >, " and '
// are replaced by their entities.
func Escape(s string) string {
	return escaper.Replace(Sanitize(s))
}

// Sanitize returns s as valid UTF-8 holding only characters allowed in an
// XML 1.0 document. Each run of invalid bytes becomes U+FFFD; control
// characters other than tab, newline and carriage return, surrogates and
// the noncharacters U+FFFE and U+FFFF are dropped.
func Sanitize(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	if strings.IndexFunc(s, func(r rune) bool { return !isXMLChar(r) }) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, s)
}

// isXMLChar reports whether r matches the Char production of XML 1.0.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

// EscapeValue escapes v when it is a string and returns "" for anything else.
func EscapeValue(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Escape(s)
}
