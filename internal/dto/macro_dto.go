package dto

import (
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunMacroRequest defines the structure for running a currency macro.
type RunMacroRequest struct {
	Article *domain.Article `json:"article" binding:"required"`
	// Rate overrides the cached exchange rate when set.
	Rate *decimal.Decimal `json:"rate,omitempty"`
	// Apply returns the article with the replacements substituted.
	Apply bool `json:"apply"`
}

// RunMacroResponse carries the (possibly rewritten) article and the diff map.
type RunMacroResponse struct {
	Macro   string                  `json:"macro"`
	Article *domain.Article         `json:"article"`
	Diff    domain.ConversionResult `json:"diff"`
}

// ListMacrosResponse lists the available macros.
type ListMacrosResponse struct {
	Macros []domain.MacroInfo `json:"macros"`
}

// ToMacroOptions converts the request to domain.MacroOptions
func (r RunMacroRequest) ToMacroOptions() domain.MacroOptions {
	return domain.MacroOptions{Rate: r.Rate, Apply: r.Apply}
}
