// Package repo provides postgres access for reports
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"handoff/internal/modkit/repokit"
	"handoff/internal/platform/store"
)

// Repo is the minimal persistence surface for reports
type Repo interface {
	LatestRunID(ctx context.Context) (string, error)
	ListRuns(ctx context.Context, limit int) ([]RunRecord, error)
	StatsByType(ctx context.Context, runID string) ([]StatRecord, error)
	ListConversations(ctx context.Context, runID, typeKey string, limit int) ([]ConvRecord, error)
}

// RunRecord represents one scan_runs row
type RunRecord struct {
	ID         string
	InputRoot  string
	StartedAt  time.Time
	FinishedAt time.Time

	TotalConversations   int
	MatchedConversations int
}

// StatRecord represents a dialog count for one problem type key
type StatRecord struct {
	TypeKey string
	Dialogs int64
}

// ConvRecord represents one incident_conversations row
type ConvRecord struct {
	DialogID     string
	SourcePath   string
	TypeKeys     []string
	TriggerCount int
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) LatestRunID(ctx context.Context) (string, error) {
	const sql = `
select id::text
from scan_runs
order by finished_at desc
limit 1
`
	id, err := store.Scalar[string](ctx, r.q, sql)
	if err != nil {
		// an empty scan_runs table is not an error, just nothing to report on
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return id, nil
}

func (r *queries) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	const sql = `
select id::text, input_root, started_at, finished_at, total_conversations, matched_conversations
from scan_runs
order by finished_at desc
limit $1
`
	return store.Many(ctx, r.q, func(row store.Row) (RunRecord, error) {
		var rr RunRecord
		err := row.Scan(
			&rr.ID, &rr.InputRoot, &rr.StartedAt, &rr.FinishedAt,
			&rr.TotalConversations, &rr.MatchedConversations,
		)
		return rr, err
	}, sql, limit)
}

func (r *queries) StatsByType(ctx context.Context, runID string) ([]StatRecord, error) {
	const sql = `
select t.type_key, count(1) as dialogs
from incident_conversations c
cross join unnest(c.matched_types) as t(type_key)
where c.run_id = $1::uuid
group by t.type_key
order by t.type_key asc
`
	return store.Many(ctx, r.q, func(row store.Row) (StatRecord, error) {
		var rr StatRecord
		err := row.Scan(&rr.TypeKey, &rr.Dialogs)
		return rr, err
	}, sql, runID)
}

func (r *queries) ListConversations(ctx context.Context, runID, typeKey string, limit int) ([]ConvRecord, error) {
	const sql = `
select dialog_id, source_path, matched_types, trigger_count
from incident_conversations
where run_id = $1::uuid
and ($2 = '' or $2 = any(matched_types))
order by dialog_id asc
limit $3
`
	return store.Many(ctx, r.q, func(row store.Row) (ConvRecord, error) {
		var rr ConvRecord
		err := row.Scan(&rr.DialogID, &rr.SourcePath, &rr.TypeKeys, &rr.TriggerCount)
		return rr, err
	}, sql, runID, typeKey, limit)
}
