// Package service contains reports workflows
package service

import (
	"context"
	"time"

	"handoff/internal/core/triggers"
	"handoff/internal/modkit/repokit"
	"handoff/internal/services/api/reports/domain"
	"handoff/internal/services/api/reports/repo"
)

// Service defines the reports service contract
type Service interface {
	domain.ServicePort
}

// Config for the reports service
type Config struct {
	// RunsLimit caps the /runs listing
	RunsLimit int

	// DefaultLimit applies when a conversations query carries no limit
	DefaultLimit int
}

// Svc implements the reports service
type Svc struct {
	Repo   repo.Repo
	Pack   *triggers.Pack
	Cfg    Config
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New constructs a reports service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], pack *triggers.Pack, cfg Config) *Svc {
	if db == nil {
		panic("reports.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("reports.Service requires a non nil Repo binder")
	}
	if cfg.RunsLimit <= 0 {
		cfg.RunsLimit = 50
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 50
	}
	return &Svc{Repo: binder.Bind(db), Pack: pack, Cfg: cfg, binder: binder, db: db}
}

// Runs lists archived scan runs, newest first
func (s *Svc) Runs(ctx context.Context) ([]domain.RunRow, error) {
	recs, err := s.Repo.ListRuns(ctx, s.Cfg.RunsLimit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RunRow, 0, len(recs))
	for _, r := range recs {
		out = append(out, domain.RunRow{
			ID:                   r.ID,
			InputRoot:            r.InputRoot,
			StartedAt:            r.StartedAt.UTC().Format(time.RFC3339),
			FinishedAt:           r.FinishedAt.UTC().Format(time.RFC3339),
			TotalConversations:   r.TotalConversations,
			MatchedConversations: r.MatchedConversations,
		})
	}
	return out, nil
}

// Stats returns per-type dialog counts for a run.
// Types with zero dialogs are included so the row set is stable across runs
func (s *Svc) Stats(ctx context.Context, in domain.StatsInput) ([]domain.StatsRow, error) {
	runID, err := s.resolveRun(ctx, in.RunID)
	if err != nil {
		return nil, err
	}
	if runID == "" {
		return []domain.StatsRow{}, nil
	}

	recs, err := s.Repo.StatsByType(ctx, runID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(recs))
	for _, r := range recs {
		counts[r.TypeKey] = r.Dialogs
	}

	out := make([]domain.StatsRow, 0, len(s.Pack.Keys()))
	for _, key := range s.Pack.Keys() {
		out = append(out, domain.StatsRow{
			Type:     key,
			TypeName: s.Pack.TypeName(key),
			Dialogs:  counts[key],
		})
	}
	return out, nil
}

// Conversations lists archived dialogs for a run, optionally by problem type
func (s *Svc) Conversations(ctx context.Context, in domain.ConversationsInput) ([]domain.ConversationRow, error) {
	runID, err := s.resolveRun(ctx, in.RunID)
	if err != nil {
		return nil, err
	}
	if runID == "" {
		return []domain.ConversationRow{}, nil
	}

	limit := in.Limit
	if limit <= 0 {
		limit = s.Cfg.DefaultLimit
	}

	recs, err := s.Repo.ListConversations(ctx, runID, in.Type, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ConversationRow, 0, len(recs))
	for _, r := range recs {
		names := make([]string, 0, len(r.TypeKeys))
		for _, key := range r.TypeKeys {
			names = append(names, s.Pack.TypeName(key))
		}
		out = append(out, domain.ConversationRow{
			DialogID:     r.DialogID,
			SourcePath:   r.SourcePath,
			MatchedTypes: names,
			TriggerCount: r.TriggerCount,
		})
	}
	return out, nil
}

// resolveRun picks the explicit run or falls back to the latest archived one
func (s *Svc) resolveRun(ctx context.Context, runID string) (string, error) {
	if runID != "" {
		return runID, nil
	}
	return s.Repo.LatestRunID(ctx)
}
