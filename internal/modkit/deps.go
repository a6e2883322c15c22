// Package modkit wires feature modules together: shared deps, build options,
// and the Module surface the binaries mount
package modkit

import (
	"handoff/internal/modkit/repokit"
	"handoff/internal/platform/config"
	"handoff/internal/platform/logger"
	"handoff/internal/platform/store"
)

// Deps are the shared dependencies handed to every module constructor.
// PG and CH may be nil when a binary runs without that backend
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
