package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	perr "forumfeed/internal/platform/errors"
)

// fakeRows serves canned rows, each row is a []any matching scan order
type fakeRows struct {
	data [][]any
	pos  int
	err  error
	cols []string
}

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.data) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	row := f.data[f.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan arity: got %d want %d", len(dest), len(row))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = row[i].(int64)
		case *int:
			*p = row[i].(int)
		case *string:
			*p = row[i].(string)
		default:
			return fmt.Errorf("unsupported scan dest %T", d)
		}
	}
	return nil
}

func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return f.cols }

type fakeRow struct {
	vals []any
	err  error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	r := &fakeRows{data: [][]any{f.vals}}
	r.pos = 1
	return r.Scan(dest...)
}

// fakeQuerier satisfies RowQuerier for helper tests
type fakeQuerier struct {
	rows     *fakeRows
	row      fakeRow
	queryErr error
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return nil, errors.New("not used")
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return f.row
}

type pair struct {
	ID   int64
	Name string
}

func scanPair(r Row) (pair, error) {
	var p pair
	err := r.Scan(&p.ID, &p.Name)
	return p, err
}

func TestScalar(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{vals: []any{int64(42)}}}
	got, err := Scalar[int64](context.Background(), q, "select 42")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d", got)
	}
}

func TestScalar_ScanError(t *testing.T) {
	q := &fakeQuerier{row: fakeRow{err: errors.New("scan boom")}}
	if _, err := Scalar[int64](context.Background(), q, "select"); err == nil {
		t.Fatal("expected error")
	}
}

func TestOne_Success(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{{int64(1), "maths"}}}}
	got, err := One(context.Background(), q, scanPair, "select")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got.ID != 1 || got.Name != "maths" {
		t.Fatalf("got %+v", got)
	}
}

func TestOne_NoRows_NotFound(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{}}
	_, err := One(context.Background(), q, scanPair, "select")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOne_MultipleRows_Error(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{int64(1), "a"},
		{int64(2), "b"},
	}}}
	if _, err := One(context.Background(), q, scanPair, "select"); err == nil {
		t.Fatal("expected error for extra rows")
	}
}

func TestMany_Success(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{data: [][]any{
		{int64(1), "history"},
		{int64(2), "physics"},
	}}}
	got, err := Many(context.Background(), q, scanPair, "select")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(got) != 2 || got[1].Name != "physics" {
		t.Fatalf("got %+v", got)
	}
}

func TestMany_Empty(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{}}
	got, err := Many(context.Background(), q, scanPair, "select")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestMany_QueryError(t *testing.T) {
	q := &fakeQuerier{queryErr: errors.New("query boom")}
	if _, err := Many(context.Background(), q, scanPair, "select"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMany_RowsErrSurfaces(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{
		data: [][]any{{int64(1), "a"}},
		err:  errors.New("iteration boom"),
	}}
	if _, err := Many(context.Background(), q, scanPair, "select"); err == nil {
		t.Fatal("expected rows error")
	}
}
