package platform

import (
	"fmt"

	"github.com/aretw0/haste/pkg/adapters/memory"
	"github.com/aretw0/haste/pkg/adapters/remote"
	"github.com/aretw0/haste/pkg/core"
)

// Init builds the store selected by the options.
func Init(opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initStore(o)
}

func initStore(o *options) (core.Store, error) {
	if o.store != nil {
		return o.store, nil
	}

	switch o.adapter {
	case "remote":
		return remote.NewStore(remote.Config{
			BaseURL: o.config.BaseURL,
			Client:  o.httpClient,
			Logger:  o.logger,
		}), nil
	case "memory":
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
}
