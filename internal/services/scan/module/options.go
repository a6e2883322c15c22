package module

import (
	"handoff/internal/platform/config"
	"handoff/internal/services/scan/domain"
)

// Options holds configuration settings for the scan module
type Options struct {
	Workers int

	// Source overrides the filesystem source, mainly for tests
	Source domain.SourcePort
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("CORE_SCAN_")
	return Options{
		Workers: sf.MayInt("WORKERS", 4),
	}
}
