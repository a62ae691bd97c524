package render

import (
	"regexp"
	"strings"
)

var (
	nonEmptyLine = regexp.MustCompile(`[^\r\n]+`)
	blankLine    = regexp.MustCompile(`(?m)^[\s\v\p{Z}\x{FEFF}]*[\r\n]`)

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// WrapLines wraps every non-empty line in <span class="line">...</span> and
// replaces each run of blank lines with a single empty line span.
// CRLF and lone CR line endings are normalized to LF first.
func WrapLines(content string) string {
	content = lineEndings.Replace(content)
	out := nonEmptyLine.ReplaceAllString(content, `<span class="line">$0</span>`)
	return blankLine.ReplaceAllString(out, "<span class=\"line\"></span>\n")
}
