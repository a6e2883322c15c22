// Package module wires the report service
package module

import (
	"os"

	"handoff/internal/core/triggers"
	"handoff/internal/modkit"
	"handoff/internal/modkit/httpkit"
	"handoff/internal/services/report/domain"
	"handoff/internal/services/report/service"
)

// Ports exposed by the report module
type Ports struct {
	Writer domain.WriterPort
}

// Module implements modkit.Module
type Module struct {
	name  string
	ports Ports
}

// New constructs a new report module
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("report"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)
	if overrides.OutputDir != "" {
		cfg.OutputDir = overrides.OutputDir
	}

	pack, err := triggers.Load()
	if err != nil {
		panic(err)
	}

	writer := service.New(pack, service.Config{
		OutputDir: cfg.OutputDir,
		Console:   os.Stdout,
	})

	m := &Module{name: b.Name}
	m.ports = Ports{Writer: writer}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op; the report writer is headless.
func (m *Module) MountRoutes(_ httpkit.Router) {}
