package render

import "github.com/aretw0/haste/pkg/core"

// Pipeline highlights then wraps lines, each step optional.
type Pipeline struct {
	Highlighter core.Formatter
	HTML        bool
}

// FromConfig builds the formatter selected by cfg.
// It returns nil when no post-processing is configured.
func FromConfig(cfg core.Config) core.Formatter {
	if cfg.Highlight == core.HighlightNone && !cfg.HTML {
		return nil
	}
	p := &Pipeline{HTML: cfg.HTML}
	if cfg.Highlight != core.HighlightNone {
		p.Highlighter = NewHighlighter(cfg.Highlight, cfg.HighlightStyle)
	}
	return p
}

// Format implements core.Formatter.
func (p *Pipeline) Format(content string) (string, error) {
	value := content
	if p.Highlighter != nil {
		var err error
		if value, err = p.Highlighter.Format(value); err != nil {
			return "", err
		}
	}
	if p.HTML {
		value = WrapLines(value)
	}
	return value, nil
}
