package dto

import (
	"time"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateTableResponse is the cached rate table as served to clients.
type ExchangeRateTableResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
	ExpiresAt time.Time                  `json:"expiresAt"`
}

// ExchangeRateResponse is the multiplier converting an amount in FromCurrencyCode into ToCurrencyCode.
type ExchangeRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
}

// ToExchangeRateTableResponse converts a domain.RateTable to ExchangeRateTableResponse DTO
func ToExchangeRateTableResponse(table *domain.RateTable) ExchangeRateTableResponse {
	rates := make(map[string]decimal.Decimal, len(table.Rates))
	for code, rate := range table.Rates {
		rates[code] = rate
	}
	return ExchangeRateTableResponse{
		Base:      table.Base,
		Rates:     rates,
		FetchedAt: table.FetchedAt,
		ExpiresAt: table.ExpiresAt,
	}
}
