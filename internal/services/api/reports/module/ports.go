package module

import (
	"handoff/internal/services/api/reports/domain"
)

// Ports exposed by the reports module for cross-module lookups
type Ports struct {
	Reports domain.ServicePort
}
