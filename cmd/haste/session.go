package main

import (
	"log/slog"

	"github.com/aretw0/haste"
	"github.com/aretw0/haste/internal/config"
	"github.com/aretw0/haste/pkg/ui"
)

// client is a session with the recorder and toolbar a page would have.
type client struct {
	session  *haste.Session
	recorder *ui.Recorder
	toolbar  *ui.Toolbar
	rawURL   string
}

// newClient builds a session from the loaded configuration.
// mutate may adjust the configuration for a single command.
func newClient(mutate func(*haste.Config)) (*client, error) {
	cfg, err := config.Load(settings)
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(&cfg)
	}

	c := &client{recorder: ui.NewRecorder(cfg.BaseURL)}
	c.session, err = haste.New(
		haste.WithConfig(cfg),
		haste.WithUI(c.recorder),
		haste.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, err
	}
	c.toolbar = ui.NewToolbar(c.session, c.recorder, func(url string) {
		c.rawURL = url
	})

	slog.Debug("session ready", "state", c.session.State())
	return c, nil
}
