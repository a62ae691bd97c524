package platform

import (
	"github.com/aretw0/haste/pkg/core"
	"github.com/aretw0/haste/pkg/render"
)

// New creates a Session showing a blank document.
//
//	session, err := haste.New(haste.WithBaseURL("https://paste.example"), haste.WithHighlight("auto"))
func New(opts ...Option) (*core.Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store, err := initStore(o)
	if err != nil {
		return nil, err
	}

	formatter := o.formatter
	if formatter == nil {
		formatter = render.FromConfig(o.config)
	}

	if o.logger != nil {
		o.logger.Debug("session created", "adapter", o.adapter, "base_url", o.config.BaseURL)
	}

	return core.NewSession(store, core.SessionConfig{
		Config:    o.config,
		Formatter: formatter,
		View:      o.view,
		UI:        o.ui,
		Logger:    o.logger,
		Events:    o.events,
	}), nil
}
