// Package service persists scan runs to the configured backends
package service

import (
	"context"

	"handoff/internal/modkit/repokit"
	"handoff/internal/platform/logger"
	"handoff/internal/platform/store"
	"handoff/internal/services/archive/domain"
	"handoff/internal/services/archive/repo"
	scandom "handoff/internal/services/scan/domain"
)

// HitsTable is the ClickHouse destination for per-trigger facts
const HitsTable = "handoff_hits"

// Service implements domain.ArchiverPort.
// Both backends are optional; a nil backend is skipped, so a run without
// storage configured is a no-op
type Service struct {
	TX repokit.TxRunner
	CH store.Clickhouse

	binder repokit.Binder[repo.Storage]
}

// New constructs an archive service; tx and chDB may be nil
func New(tx repokit.TxRunner, binder repokit.Binder[repo.Storage], chDB store.Clickhouse) *Service {
	return &Service{TX: tx, CH: chDB, binder: binder}
}

// Archive implements domain.ArchiverPort
func (s *Service) Archive(ctx context.Context, run domain.Run, matches []*scandom.ConversationMatches) error {
	log := logger.C(ctx)
	if s.TX == nil && s.CH == nil {
		log.Debug().Str("run_id", run.ID).Msg("archive disabled, no backends")
		return nil
	}

	if s.TX != nil {
		rows := conversationRows(run.ID, matches)
		err := store.RunInScan(ctx, s.TX, run.ID, func(ctx context.Context, q store.RowQuerier) error {
			st := s.binder.Bind(q)
			if err := st.InsertRun(ctx, run); err != nil {
				return err
			}
			return st.WriteConversations(ctx, rows)
		})
		if err != nil {
			return err
		}
		log.Info().Str("run_id", run.ID).Int("conversations", len(rows)).Msg("run archived to postgres")
	}

	if s.CH != nil {
		rows := hitRows(run, matches)
		if err := s.CH.Insert(ctx, HitsTable, rows); err != nil {
			return err
		}
		log.Info().Str("run_id", run.ID).Int("hits", len(rows)).Msg("hits archived to clickhouse")
	}
	return nil
}

func conversationRows(runID string, matches []*scandom.ConversationMatches) []domain.ConversationRow {
	rows := make([]domain.ConversationRow, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, domain.ConversationRow{
			RunID:        runID,
			DialogID:     m.DialogID,
			SourcePath:   m.SourcePath,
			TypeKeys:     m.TypeKeys(),
			TriggerCount: len(m.FlatTriggers()),
		})
	}
	return rows
}

// hitRows flattens matches into (run, dialog, type, message, trigger) facts.
// Column order must match the handoff_hits table
func hitRows(run domain.Run, matches []*scandom.ConversationMatches) [][]any {
	var rows [][]any
	for _, m := range matches {
		for _, key := range m.TypeKeys() {
			for _, msg := range m.MatchedTypes[key] {
				for _, tr := range msg.Triggers {
					rows = append(rows, []any{
						run.ID, m.DialogID, key,
						int32(msg.Index), msg.UserID, tr,
						run.FinishedAt,
					})
				}
			}
		}
	}
	return rows
}
