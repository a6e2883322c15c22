// Package domain defines archive types and ports
package domain

import (
	"context"
	"time"

	scandom "handoff/internal/services/scan/domain"
)

// Run identifies one scan execution persisted to storage
type Run struct {
	ID         string // uuid
	InputRoot  string
	StartedAt  time.Time
	FinishedAt time.Time

	TotalConversations   int
	MatchedConversations int
}

// ConversationRow is one matched dialog as stored in Postgres
type ConversationRow struct {
	RunID      string
	DialogID   string
	SourcePath string

	// TypeKeys are the problem type keys the dialog fired, first-seen order
	TypeKeys []string

	// TriggerCount is the number of distinct triggers across all types
	TriggerCount int
}

// HitRow is one (dialog, type, message, trigger) fact for columnar storage
type HitRow struct {
	RunID        string
	DialogID     string
	TypeKey      string
	MessageIndex int
	UserID       string
	Trigger      string
	DetectedAt   time.Time
}

// ArchiverPort persists a finished scan run
type ArchiverPort interface {
	Archive(ctx context.Context, run Run, matches []*scandom.ConversationMatches) error
}
