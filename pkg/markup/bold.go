package markup

import (
	"regexp"
	"strings"
)

// LineSeparator splits banner text into lines.
const LineSeparator = "|"

// boldSpan matches a non-empty brace-delimited span. The inner text is
// captured so that it survives the split.
var boldSpan = regexp.MustCompile(`\{([^}]+)\}`)

// Run is a piece of a line rendered with a single weight.
type Run struct {
	Text string
	Bold bool
}

// SplitLines splits text on [LineSeparator]. Empty text yields one empty line.
func SplitLines(text string) []string {
	return strings.Split(text, LineSeparator)
}

// ParseBold splits one line into styled runs.
//
// The line is cut around every {...} span, keeping the captured text. Empty
// pieces are dropped first and the remaining pieces alternate in weight by
// their position in the filtered sequence. The first run is bold when it
// came from a span, so a line opening with "{" starts bold:
//
//	"Hello {World}" -> "Hello " plain, "World" bold
//	"{bold}"        -> "bold" bold
//	"{a}{b}"        -> "a" bold, "b" plain
//
// Run text is not escaped.
func ParseBold(line string) []Run {
	parts := splitKeepingCaptures(line)

	runs := make([]Run, 0, len(parts))
	startBold := false
	for _, p := range parts {
		if p.text == "" {
			continue
		}
		if len(runs) == 0 {
			startBold = p.captured
		}
		runs = append(runs, Run{Text: p.text, Bold: startBold != (len(runs)%2 == 1)})
	}
	return runs
}

type piece struct {
	text     string
	captured bool
}

// splitKeepingCaptures cuts line around each bold span and interleaves the
// captured group between the surrounding text, like a split on a regexp
// with one capturing group.
func splitKeepingCaptures(line string) []piece {
	matches := boldSpan.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return []piece{{text: line}}
	}

	parts := make([]piece, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		parts = append(parts,
			piece{text: line[last:m[0]]},
			piece{text: line[m[2]:m[3]], captured: true},
		)
		last = m[1]
	}
	return append(parts, piece{text: line[last:]})
}

// PlainText returns the line with bold markers removed.
func PlainText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}
