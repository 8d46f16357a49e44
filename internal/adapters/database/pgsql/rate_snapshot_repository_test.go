package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB stores the last saved row and serves it back.
type fakeDB struct {
	args    []any
	execErr error
	row     pgx.Row
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.args = args
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return f.row
}

type fakeRow struct {
	base    string
	payload []byte
	fetched time.Time
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.base
	*dest[1].(*[]byte) = r.payload
	*dest[2].(*time.Time) = r.fetched
	return nil
}

func TestSaveSnapshot_WritesDecimalStrings(t *testing.T) {
	db := &fakeDB{}
	repo := &PgxRateSnapshotRepository{db: db}
	fetched := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	err := repo.SaveSnapshot(context.Background(), domain.RateTable{
		Base:      "EUR",
		Rates:     map[string]decimal.Decimal{"USD": decimal.RequireFromString("1.1")},
		FetchedAt: fetched,
	})
	require.NoError(t, err)

	require.Len(t, db.args, 4)
	assert.Equal(t, "EUR", db.args[0])
	assert.JSONEq(t, `{"USD":"1.1"}`, string(db.args[1].([]byte)))
	assert.Equal(t, fetched, db.args[2])
}

func TestSaveSnapshot_WrapsError(t *testing.T) {
	repo := &PgxRateSnapshotRepository{db: &fakeDB{execErr: errors.New("connection reset")}}

	err := repo.SaveSnapshot(context.Background(), domain.RateTable{Base: "EUR"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestFindLatestSnapshot(t *testing.T) {
	fetched := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)
	repo := &PgxRateSnapshotRepository{db: &fakeDB{row: fakeRow{
		base:    "EUR",
		payload: []byte(`{"usd":"1.1","AUD":"1.65"}`),
		fetched: fetched,
	}}}

	table, err := repo.FindLatestSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "EUR", table.Base)
	assert.Equal(t, fetched, table.FetchedAt)
	assert.True(t, table.ExpiresAt.IsZero())
	usd, ok := table.Rate("USD")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1.1").Equal(usd))
}

func TestFindLatestSnapshot_Errors(t *testing.T) {
	repo := &PgxRateSnapshotRepository{db: &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}}
	_, err := repo.FindLatestSnapshot(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	repo = &PgxRateSnapshotRepository{db: &fakeDB{row: fakeRow{base: "EUR", payload: []byte(`{"USD":"abc"}`)}}}
	_, err = repo.FindLatestSnapshot(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrMalformedLiteral)
}
