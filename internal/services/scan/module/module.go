// Package module wires the scan service
package module

import (
	"handoff/internal/core/triggers"
	"handoff/internal/modkit"
	"handoff/internal/modkit/httpkit"
	"handoff/internal/services/scan/domain"
	"handoff/internal/services/scan/repo"
	"handoff/internal/services/scan/service"
)

// Ports exposed by the scan module
type Ports struct {
	Scanner domain.ScannerPort
}

// Module implements modkit.Module
type Module struct {
	name  string
	ports Ports
}

// New constructs a new scan module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("scan"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.Workers != 0 {
		cfg.Workers = overrides.Workers
	}

	pack, err := triggers.Load()
	if err != nil {
		panic(err)
	}

	var src domain.SourcePort = repo.NewFSSource()
	if overrides.Source != nil {
		src = overrides.Source
	}

	scanner := service.New(src, pack, service.Config{Workers: cfg.Workers})

	m := &Module{name: b.Name}
	m.ports = Ports{Scanner: scanner}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op; the scanner is headless.
func (m *Module) MountRoutes(_ httpkit.Router) {}
