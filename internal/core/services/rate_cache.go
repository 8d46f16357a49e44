package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/SscSPs/newswire_macros/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/newswire_macros/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const refreshKey = "rates"

// rateCache implements the ExchangeRateSvcFacade interface
type rateCache struct {
	BaseService
	provider  providers.ExchangeRateProvider
	snapshots portsrepo.RateSnapshotRepositoryFacade
	ttl       time.Duration
	now       func() time.Time

	mu    sync.RWMutex
	table *domain.RateTable
	group singleflight.Group
}

// RateCacheOption is a functional option for configuring the rate cache
type RateCacheOption func(*rateCache)

// WithClock replaces time.Now for expiry decisions
func WithClock(now func() time.Time) RateCacheOption {
	return func(c *rateCache) {
		c.now = now
	}
}

// WithSnapshotStore shares fetched tables through repo
func WithSnapshotStore(repo portsrepo.RateSnapshotRepositoryFacade) RateCacheOption {
	return func(c *rateCache) {
		c.snapshots = repo
	}
}

// WithRateCacheLogger sets the logger used outside of a request
func WithRateCacheLogger(logger *slog.Logger) RateCacheOption {
	return func(c *rateCache) {
		c.Logger = logger
	}
}

// NewRateCache creates a rate cache that serves the provider's table for ttl
func NewRateCache(provider providers.ExchangeRateProvider, ttl time.Duration, options ...RateCacheOption) portssvc.ExchangeRateSvcFacade {
	c := &rateCache{
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Ensure rateCache implements the ExchangeRateSvcFacade interface
var _ portssvc.ExchangeRateSvcFacade = (*rateCache)(nil)

func (c *rateCache) GetAllRates(ctx context.Context) (*domain.RateTable, error) {
	if table := c.fresh(); table != nil {
		return table, nil
	}

	// The leader's cancellation must not fail the callers waiting on it;
	// the provider's own timeout still bounds the fetch.
	leaderCtx := context.WithoutCancel(ctx)
	v, err, shared := c.group.Do(refreshKey, func() (any, error) {
		if table := c.fresh(); table != nil {
			return table, nil
		}
		return c.refresh(leaderCtx)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.LogDebug(ctx, "Joined in-flight rate refresh")
	}
	return v.(*domain.RateTable), nil
}

func (c *rateCache) GetRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(strings.TrimSpace(fromCode))
	toCode = strings.ToUpper(strings.TrimSpace(toCode))
	if !isCurrencyCode(fromCode) || !isCurrencyCode(toCode) {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	table, err := c.GetAllRates(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	fromRate, ok := table.Rate(fromCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: currency %s is not in the rate table", apperrors.ErrRateLookup, fromCode)
	}
	toRate, ok := table.Rate(toCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: currency %s is not in the rate table", apperrors.ErrRateLookup, toCode)
	}
	if fromRate.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: rate for %s is zero", apperrors.ErrRateLookup, fromCode)
	}

	return toRate.Div(fromRate), nil
}

func (c *rateCache) Invalidate() {
	c.mu.Lock()
	c.table = nil
	c.mu.Unlock()
}

// fresh returns the cached table while it is within its TTL.
func (c *rateCache) fresh() *domain.RateTable {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.table.FreshAt(c.now()) {
		return c.table
	}
	return nil
}

func (c *rateCache) store(table *domain.RateTable) {
	c.mu.Lock()
	c.table = table
	c.mu.Unlock()
}

// refresh runs inside the single flight. It prefers a stored snapshot that is
// still within TTL, then falls back to the provider.
func (c *rateCache) refresh(ctx context.Context) (*domain.RateTable, error) {
	now := c.now()

	if table := c.loadSnapshot(ctx, now); table != nil {
		c.store(table)
		return table, nil
	}

	table, err := c.provider.FetchRates(ctx)
	if err != nil {
		c.LogError(ctx, err, "Failed to fetch exchange rates", slog.String("provider", c.provider.GetName()))
		if !errors.Is(err, apperrors.ErrRateLookup) {
			err = fmt.Errorf("%w: %w", apperrors.ErrRateLookup, err)
		}
		return nil, err
	}
	if table == nil {
		return nil, fmt.Errorf("%w: provider %s returned no rates", apperrors.ErrRateLookup, c.provider.GetName())
	}

	if table.FetchedAt.IsZero() {
		table.FetchedAt = now
	}
	table.ExpiresAt = now.Add(c.ttl)
	c.store(table)

	c.LogInfo(ctx, "Fetched exchange rates",
		slog.String("provider", c.provider.GetName()),
		slog.Int("currencies", len(table.Rates)),
		slog.Time("expires_at", table.ExpiresAt))

	if c.snapshots != nil {
		if err := c.snapshots.SaveSnapshot(ctx, *table); err != nil {
			c.LogWarn(ctx, err, "Failed to save rate snapshot")
		}
	}
	return table, nil
}

func (c *rateCache) loadSnapshot(ctx context.Context, now time.Time) *domain.RateTable {
	if c.snapshots == nil {
		return nil
	}

	table, err := c.snapshots.FindLatestSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			c.LogWarn(ctx, err, "Failed to load rate snapshot")
		}
		return nil
	}
	if table == nil {
		return nil
	}

	table.ExpiresAt = table.FetchedAt.Add(c.ttl)
	if !table.FreshAt(now) {
		c.LogDebug(ctx, "Stored rate snapshot has expired", slog.Time("fetched_at", table.FetchedAt))
		return nil
	}

	c.LogInfo(ctx, "Adopted stored rate snapshot", slog.Time("expires_at", table.ExpiresAt))
	return table
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
