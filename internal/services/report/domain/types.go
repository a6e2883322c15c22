// Package domain defines report types and ports
package domain

import (
	"context"

	scandom "handoff/internal/services/scan/domain"
)

// TypeReport is one problem type section inside a conversation report.
// Triggers unions the triggers of all its messages, sorted
type TypeReport struct {
	Type     string                   `json:"type"`
	TypeName string                   `json:"type_name"`
	Triggers []string                 `json:"triggers"`
	Messages []scandom.MatchedMessage `json:"messages"`
}

// ConversationReport is the per-dialog JSON payload written to disk
type ConversationReport struct {
	DialogID       string       `json:"dialog_id"`
	SourcePath     string       `json:"source_path"`
	MatchedTypes   []TypeReport `json:"matched_types"`
	UniqueTriggers []string     `json:"unique_triggers"`
}

// WriterPort renders scan results into report files
type WriterPort interface {
	// WriteAll writes one JSON report per conversation plus the INDEX.md
	WriteAll(ctx context.Context, matches []*scandom.ConversationMatches) error

	// Summarize logs the per-type match counts for a finished run
	Summarize(ctx context.Context, matches []*scandom.ConversationMatches, stats *scandom.ScanStats)
}
