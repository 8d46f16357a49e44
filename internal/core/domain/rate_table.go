package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is the latest table of exchange rates, expressed as units of each
// currency per one unit of Base.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
	ExpiresAt time.Time                  `json:"expiresAt"`
}

// Rate returns the rate for code and whether it is present. The base currency
// is always present with a rate of one.
func (t *RateTable) Rate(code string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	if r, ok := t.Rates[code]; ok {
		return r, true
	}
	if code != "" && code == t.Base {
		return decimal.NewFromInt(1), true
	}
	return decimal.Zero, false
}

// FreshAt reports whether the table may still be served at now.
func (t *RateTable) FreshAt(now time.Time) bool {
	return t != nil && now.Before(t.ExpiresAt)
}

// ConversionResult maps an original matched literal to its replacement text.
// Keys are unique; the first formatting of a literal wins.
type ConversionResult map[string]string
