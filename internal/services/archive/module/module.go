// Package module wires the archive service
package module

import (
	"handoff/internal/modkit"
	"handoff/internal/modkit/httpkit"
	"handoff/internal/services/archive/domain"
	"handoff/internal/services/archive/repo"
	"handoff/internal/services/archive/service"
)

// Ports exposed by the archive module
type Ports struct {
	Archiver domain.ArchiverPort
}

// Module implements modkit.Module
type Module struct {
	name  string
	ports Ports
}

// New constructs a new archive module.
// Nil deps.PG or deps.CH simply disable that backend
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("archive"),
	}, opts...)...)

	svc := service.New(deps.PG, repo.NewPG(), deps.CH)

	m := &Module{name: b.Name}
	m.ports = Ports{Archiver: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op; the archiver is headless.
func (m *Module) MountRoutes(_ httpkit.Router) {}
