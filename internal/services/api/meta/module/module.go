// Package module mounts the meta endpoints as a modkit module.
package module

import (
	"net/http"
	"time"

	modkit "handoff/internal/modkit"
	"handoff/internal/modkit/httpkit"
	str "handoff/internal/platform/strings"

	metahttp "handoff/internal/services/api/meta/http"
)

// Module exposes /meta/health, /meta/ready, and /meta/service.
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New builds the meta module. StartedAt is pinned at construction so
// uptime counts from process boot, not first request.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	startedAt := time.Now()
	external := b.Register

	return &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		register: func(r httpkit.Router) {
			metahttp.Register(r, metahttp.Deps{
				ServiceName: "handoff-api",
				StartedAt:   startedAt,
				PG:          deps.PG,
				CH:          deps.CH,
			})
			external(r)
		},
	}
}

// MountRoutes mounts the meta routes under the module prefix.
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		m.register(m.subrouter(rr))
	})
}

// Name reports the module name for registry listings.
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Ports is nil; the meta module exports no programmatic surface.
func (m *Module) Ports() any { return nil }
