package providers

import (
	"context"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
)

// ExchangeRateProvider fetches the latest rate table from an external source.
type ExchangeRateProvider interface {
	// FetchRates returns a freshly fetched table. FetchedAt is set by the provider,
	// ExpiresAt is left for the cache to decide.
	FetchRates(ctx context.Context) (*domain.RateTable, error)
	// GetName identifies the provider in logs.
	GetName() string
}
