package store

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return copyRow(r.vals, dest)
}

type stubRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *stubRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) Scan(dest ...any) error { return copyRow(r.data[r.pos-1], dest) }
func (r *stubRows) Err() error             { return r.err }
func (r *stubRows) Close()                 {}
func (r *stubRows) Columns() []string      { return nil }

func copyRow(vals, dest []any) error {
	if len(vals) != len(dest) {
		return errors.New("column count mismatch")
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		default:
			return errors.New("unsupported dest type")
		}
	}
	return nil
}

type stubQuerier struct {
	row      stubRow
	rows     *stubRows
	queryErr error
}

func (q *stubQuerier) Exec(context.Context, string, ...any) (CommandTag, error) {
	return nil, errors.New("not used")
}

func (q *stubQuerier) Query(context.Context, string, ...any) (Rows, error) {
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *stubQuerier) QueryRow(context.Context, string, ...any) Row { return q.row }

func TestScalar(t *testing.T) {
	q := &stubQuerier{row: stubRow{vals: []any{"run-1"}}}

	got, err := Scalar[string](context.Background(), q, "select id")
	if err != nil || got != "run-1" {
		t.Fatalf("Scalar: got %q err %v", got, err)
	}
}

func TestScalarScanError(t *testing.T) {
	boom := errors.New("boom")
	q := &stubQuerier{row: stubRow{err: boom}}

	if _, err := Scalar[string](context.Background(), q, "select id"); !errors.Is(err, boom) {
		t.Fatalf("err: %v", err)
	}
}

func TestMany(t *testing.T) {
	type pair struct {
		Key   string
		Count int
	}
	q := &stubQuerier{rows: &stubRows{data: [][]any{
		{"complaint", 3},
		{"refund_request", 1},
	}}}

	got, err := Many(context.Background(), q, func(r Row) (pair, error) {
		var p pair
		err := r.Scan(&p.Key, &p.Count)
		return p, err
	}, "select k, c")
	if err != nil {
		t.Fatalf("Many: %v", err)
	}
	want := []pair{{"complaint", 3}, {"refund_request", 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Many: got %v want %v", got, want)
	}
}

func TestManyEmptyYieldsNil(t *testing.T) {
	q := &stubQuerier{rows: &stubRows{}}

	got, err := Many(context.Background(), q, func(r Row) (string, error) {
		var s string
		err := r.Scan(&s)
		return s, err
	}, "select k")
	if err != nil || got != nil {
		t.Fatalf("Many empty: got %v err %v", got, err)
	}
}

func TestManyPropagatesQueryError(t *testing.T) {
	boom := errors.New("down")
	q := &stubQuerier{queryErr: boom}

	if _, err := Many(context.Background(), q, func(r Row) (string, error) {
		return "", nil
	}, "select k"); !errors.Is(err, boom) {
		t.Fatalf("err: %v", err)
	}
}

func TestManySurfacesRowsErr(t *testing.T) {
	lost := errors.New("conn lost")
	q := &stubQuerier{rows: &stubRows{err: lost}}

	if _, err := Many(context.Background(), q, func(r Row) (string, error) {
		return "", nil
	}, "select k"); !errors.Is(err, lost) {
		t.Fatalf("err: %v", err)
	}
}
