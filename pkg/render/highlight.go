package render

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/aretw0/haste/pkg/core"
)

// Highlighter renders source code as class-based HTML spans, without a
// surrounding <pre>, so the result can be embedded line by line.
type Highlighter struct {
	Language string // "auto" or "" detects the language from the content
	Style    string
}

// NewHighlighter creates a highlighter for language ("auto" to detect).
func NewHighlighter(language, style string) *Highlighter {
	return &Highlighter{Language: language, Style: style}
}

// Format implements core.Formatter.
func (h *Highlighter) Format(content string) (string, error) {
	lexer := h.lexer(content)

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise: %w", err)
	}

	formatter := html.New(html.WithClasses(true), html.PreventSurroundingPre(true))

	var buf strings.Builder
	if err := formatter.Format(&buf, styles.Get(h.Style), iterator); err != nil {
		return "", fmt.Errorf("failed to format: %w", err)
	}
	return buf.String(), nil
}

func (h *Highlighter) lexer(content string) chroma.Lexer {
	var lexer chroma.Lexer
	if h.Language != "" && h.Language != core.HighlightAuto {
		lexer = lexers.Get(h.Language)
	}
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
