// Package module mounts the reports endpoints as a modkit module.
package module

import (
	"net/http"

	"handoff/internal/core/triggers"
	modkit "handoff/internal/modkit"
	"handoff/internal/modkit/httpkit"
	str "handoff/internal/platform/strings"
	reportshttp "handoff/internal/services/api/reports/http"
	reportsrepo "handoff/internal/services/api/reports/repo"
	reportssvc "handoff/internal/services/api/reports/service"
)

// Module exposes the archived scan runs and incidents read API.
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New builds the reports module. The trigger pack ships with the binary,
// so a load failure is a packaging defect and panics at boot.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("reports"),
		modkit.WithPrefix("/reports"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	pack, err := triggers.Load()
	if err != nil {
		panic(err)
	}

	svc := reportssvc.New(deps.PG, reportsrepo.NewPG(), pack, reportssvc.Config{
		RunsLimit:    cfg.RunsLimit,
		DefaultLimit: cfg.DefaultLimit,
	})

	external := b.Register
	return &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     Ports{Reports: svc},
		subrouter: b.Subrouter,
		register: func(r httpkit.Router) {
			reportshttp.Register(r, svc)
			external(r)
		},
	}
}

// MountRoutes mounts the reports routes under the module prefix.
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		m.register(m.subrouter(rr))
	})
}

// Name reports the module name for registry listings.
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Ports exports the reports service for in-process callers.
func (m *Module) Ports() any { return m.ports }
