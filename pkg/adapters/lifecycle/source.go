// Package lifecycle exposes haste events as a lifecycle.Source.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/haste/pkg/core"
)

type eventSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource bridges a channel of session or watcher events to the generic
// lifecycle Event interface. The output closes when events closes or the
// context given to Start is done.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &eventSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *eventSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *eventSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
