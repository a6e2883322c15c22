package modkit

import (
	phttp "handoff/internal/platform/net/http"
)

// Module is what a binary needs from a feature module. The surface is kept
// small so modules only couple through Ports
type Module interface {
	// MountRoutes attaches the module's endpoints to the router seam
	MountRoutes(r phttp.Router)

	// Ports returns the module's exported interface set for cross wiring.
	// Callers assert to the concrete Ports type the module declares
	Ports() any

	Name() string
}
