package module

import (
	"handoff/internal/platform/config"
)

// Options holds configuration settings for the report module
type Options struct {
	OutputDir string
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("CORE_REPORT_")
	return Options{
		OutputDir: rf.MayString("OUTPUT_DIR", "incident_reports"),
	}
}
