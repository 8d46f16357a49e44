package services

import (
	"context"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetAllRates returns the cached rate table, refreshing it once it has expired.
	GetAllRates(ctx context.Context) (*domain.RateTable, error)

	// GetRate returns the multiplier converting an amount in fromCode into toCode.
	GetRate(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)
}

// ExchangeRateCacheSvc defines cache maintenance operations
type ExchangeRateCacheSvc interface {
	// Invalidate drops the cached table so the next read fetches again.
	Invalidate()
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateCacheSvc
}
