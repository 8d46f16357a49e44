package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	portsrepo "github.com/SscSPs/newswire_macros/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// querier is the subset of pgxpool.Pool used by the repository.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PgxRateSnapshotRepository keeps the latest rate table in a single row.
type PgxRateSnapshotRepository struct {
	db querier
}

// NewPgxRateSnapshotRepository creates a new repository for rate snapshots.
func NewPgxRateSnapshotRepository(pool *pgxpool.Pool) portsrepo.RateSnapshotRepositoryFacade {
	return &PgxRateSnapshotRepository{db: pool}
}

// SaveSnapshot replaces the stored rate table.
func (r *PgxRateSnapshotRepository) SaveSnapshot(ctx context.Context, table domain.RateTable) error {
	payload, err := encodeRates(table.Rates)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rate_snapshots (snapshot_id, base_currency, rates, fetched_at, last_updated_at)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (snapshot_id) DO UPDATE SET
			base_currency = EXCLUDED.base_currency,
			rates = EXCLUDED.rates,
			fetched_at = EXCLUDED.fetched_at,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err = r.db.Exec(ctx, query,
		table.Base,
		payload,
		table.FetchedAt.UTC(),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save rate snapshot: %w", err)
	}
	return nil
}

// FindLatestSnapshot retrieves the stored rate table. ExpiresAt is left for the caller.
func (r *PgxRateSnapshotRepository) FindLatestSnapshot(ctx context.Context) (*domain.RateTable, error) {
	query := `
		SELECT base_currency, rates, fetched_at
		FROM rate_snapshots
		WHERE snapshot_id = 1;
	`

	var (
		table   domain.RateTable
		payload []byte
	)
	err := r.db.QueryRow(ctx, query).Scan(&table.Base, &payload, &table.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate snapshot: %w", err)
	}

	table.Rates, err = decodeRates(payload)
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// encodeRates serialises rates as a JSON object of decimal strings.
func encodeRates(rates map[string]decimal.Decimal) ([]byte, error) {
	raw := make(map[string]string, len(rates))
	for code, rate := range rates {
		raw[code] = rate.String()
	}
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rates: %w", err)
	}
	return payload, nil
}

func decodeRates(payload []byte) (map[string]decimal.Decimal, error) {
	var raw map[string]string
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode stored rates: %w", err)
	}

	rates := make(map[string]decimal.Decimal, len(raw))
	for code, value := range raw {
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("%w: stored rate for %s: %v", apperrors.ErrMalformedLiteral, code, err)
		}
		rates[strings.ToUpper(code)] = rate
	}
	return rates, nil
}
