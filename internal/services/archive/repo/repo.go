// Package repo provides the archive repository implementation.
package repo

import (
	"context"
	"fmt"
	"strings"

	"handoff/internal/modkit/repokit"
	perr "handoff/internal/platform/errors"
	"handoff/internal/services/archive/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the archive repository
type Storage interface {
	InsertRun(ctx context.Context, r domain.Run) error
	WriteConversations(ctx context.Context, xs []domain.ConversationRow) error
}

// InsertRun implements Storage
func (s *pg) InsertRun(ctx context.Context, r domain.Run) error {
	_, err := s.q.Exec(ctx, `INSERT INTO scan_runs
		(id, input_root, started_at, finished_at, total_conversations, matched_conversations)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO NOTHING`,
		r.ID, r.InputRoot, r.StartedAt, r.FinishedAt,
		r.TotalConversations, r.MatchedConversations,
	)
	return perr.FromPostgresf(err, "insert run %s", r.ID)
}

// WriteConversations implements Storage
func (s *pg) WriteConversations(ctx context.Context, xs []domain.ConversationRow) error {
	if len(xs) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO incident_conversations
		(run_id, dialog_id, source_path, matched_types, trigger_count) VALUES `)

	args := make([]any, 0, len(xs)*5)
	for i, c := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		base := i*5 + 1
		fmt.Fprintf(&sb, "($%d,$%d,$%d,$%d,$%d)",
			base, base+1, base+2, base+3, base+4)

		args = append(args,
			c.RunID, c.DialogID, c.SourcePath, c.TypeKeys, c.TriggerCount,
		)
	}
	// Re-running over the same tree must not duplicate dialogs
	sb.WriteString(` ON CONFLICT (run_id, dialog_id) DO NOTHING`)
	_, err := s.q.Exec(ctx, sb.String(), args...)
	return perr.FromPostgresf(err, "archive %d conversations", len(xs))
}
