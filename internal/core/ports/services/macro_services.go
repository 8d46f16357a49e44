package services

import (
	"context"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
)

// CurrencyMacroReaderSvc lists the available macros
type CurrencyMacroReaderSvc interface {
	ListMacros() []domain.MacroInfo
}

// CurrencyMacroRunnerSvc runs a macro against an article
type CurrencyMacroRunnerSvc interface {
	// RunMacro converts the monetary amounts of article and returns the (copied) article with the diff map.
	RunMacro(ctx context.Context, name string, article *domain.Article, opts domain.MacroOptions) (*domain.Article, domain.ConversionResult, error)
}

// CurrencyMacroSvcFacade combines all currency macro service interfaces
type CurrencyMacroSvcFacade interface {
	CurrencyMacroReaderSvc
	CurrencyMacroRunnerSvc
}
