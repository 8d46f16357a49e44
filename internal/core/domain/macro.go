package domain

import "github.com/shopspring/decimal"

// MacroInfo describes a currency conversion macro offered to editors.
type MacroInfo struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
}

// MacroOptions tunes a single macro run.
type MacroOptions struct {
	// Rate overrides the cached exchange rate when set.
	Rate *decimal.Decimal
	// Apply substitutes the replacements into the returned article's text fields.
	Apply bool
}
