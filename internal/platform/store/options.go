package store

import "handoff/internal/platform/logger"

// Option adjusts the Store during Open
type Option func(*Store) error

// WithLogger routes subclient logging, including the SQL tracer, through log
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}
