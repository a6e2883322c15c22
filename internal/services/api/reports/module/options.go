package module

import (
	"handoff/internal/platform/config"
)

// Options holds configuration settings for the reports module
type Options struct {
	RunsLimit    int
	DefaultLimit int
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_REPORTS_")
	return Options{
		RunsLimit:    rf.MayInt("RUNS_LIMIT", 50),
		DefaultLimit: rf.MayInt("DEFAULT_LIMIT", 50),
	}
}
