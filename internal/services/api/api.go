// Package api provides the HTTP API over archived scan runs
package api

import (
	"handoff/internal/platform/config"
	"handoff/internal/platform/logger"
	phttp "handoff/internal/platform/net/http"
	"handoff/internal/platform/store"

	"handoff/internal/modkit"
	"handoff/internal/modkit/httpkit"

	metamod "handoff/internal/services/api/meta/module"
	reportsmod "handoff/internal/services/api/reports/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []modkit.Module{
		metamod.New(deps),
		reportsmod.New(deps),
	}

	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	httpkit.MountUnder(r, "/v1", httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}
