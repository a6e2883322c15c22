package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"handoff/internal/platform/store"
	"handoff/internal/services/archive/domain"
	"handoff/internal/services/archive/repo"
	scandom "handoff/internal/services/scan/domain"
)

type fakeTag struct{}

func (fakeTag) String() string      { return "INSERT 0 1" }
func (fakeTag) RowsAffected() int64 { return 1 }

type fakeTx struct {
	sqls []string
	err  error
}

func (f *fakeTx) Exec(_ context.Context, sql string, _ ...any) (store.CommandTag, error) {
	f.sqls = append(f.sqls, sql)
	return fakeTag{}, f.err
}

func (f *fakeTx) Query(_ context.Context, _ string, _ ...any) (store.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRow(_ context.Context, _ string, _ ...any) store.Row { return nil }

func (f *fakeTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(f)
}

type fakeCH struct {
	table string
	rows  [][]any
	err   error
}

func (f *fakeCH) Insert(_ context.Context, table string, data any) error {
	f.table = table
	f.rows = data.([][]any)
	return f.err
}

func (f *fakeCH) Query(_ context.Context, _ string, _ ...any) (store.Rows, error) {
	return nil, nil
}

func (f *fakeCH) Close() error { return nil }

func runFixture() (domain.Run, []*scandom.ConversationMatches) {
	run := domain.Run{
		ID:                   "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		InputRoot:            "chats",
		StartedAt:            time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt:           time.Date(2026, 8, 1, 10, 0, 5, 0, time.UTC),
		TotalConversations:   2,
		MatchedConversations: 1,
	}

	m := scandom.NewConversationMatches("AAA-3", "chats/dialog_3/conv_AAA-3_x_chat.json")
	m.AddMatch("complaint", scandom.MatchedMessage{
		Index: 1, UserID: "user_5", Text: "это безобразие",
		Triggers: []string{"безобразие"},
	})
	m.AddMatch("refund_request", scandom.MatchedMessage{
		Index: 3, UserID: "user_5", Text: "верните деньги, возврат",
		Triggers: []string{"верните деньги", "возврат"},
	})
	return run, []*scandom.ConversationMatches{m}
}

func TestArchive_NoBackends_NoOp(t *testing.T) {
	svc := New(nil, repo.NewPG(), nil)
	run, matches := runFixture()
	if err := svc.Archive(context.Background(), run, matches); err != nil {
		t.Fatalf("archive: %v", err)
	}
}

func TestArchive_Postgres_RunAndConversations(t *testing.T) {
	tx := &fakeTx{}
	svc := New(tx, repo.NewPG(), nil)

	run, matches := runFixture()
	if err := svc.Archive(context.Background(), run, matches); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if len(tx.sqls) != 2 {
		t.Fatalf("exec calls = %d, want 2 (run + conversations)", len(tx.sqls))
	}
}

func TestArchive_Clickhouse_HitRows(t *testing.T) {
	chDB := &fakeCH{}
	svc := New(nil, repo.NewPG(), chDB)

	run, matches := runFixture()
	if err := svc.Archive(context.Background(), run, matches); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if chDB.table != HitsTable {
		t.Fatalf("table = %q, want %q", chDB.table, HitsTable)
	}
	// one row per trigger occurrence: безобразие + верните деньги + возврат
	if len(chDB.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(chDB.rows))
	}
	first := chDB.rows[0]
	if len(first) != 7 {
		t.Fatalf("columns = %d, want 7", len(first))
	}
	if first[1] != "AAA-3" || first[2] != "complaint" || first[5] != "безобразие" {
		t.Fatalf("row = %#v", first)
	}
	if first[3] != int32(1) || first[4] != "user_5" {
		t.Fatalf("row = %#v", first)
	}
}

func TestArchive_PGError_Propagates(t *testing.T) {
	tx := &fakeTx{err: errors.New("boom")}
	svc := New(tx, repo.NewPG(), &fakeCH{})

	run, matches := runFixture()
	if err := svc.Archive(context.Background(), run, matches); err == nil {
		t.Fatal("expected error")
	}
}
