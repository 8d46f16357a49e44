package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/SscSPs/newswire_macros/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/newswire_macros/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
	"github.com/SscSPs/newswire_macros/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	ctx context.Context,
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	rateProvider providers.ExchangeRateProvider,
	vocabulary providers.VocabularyProvider,
	logger *slog.Logger,
) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	// Rate cache first since the macros depend on it
	cacheOptions := []RateCacheOption{WithRateCacheLogger(logger)}
	if repos.RateSnapshotRepo != nil {
		cacheOptions = append(cacheOptions, WithSnapshotStore(repos.RateSnapshotRepo))
	}
	container.ExchangeRate = NewRateCache(rateProvider, cfg.RateCacheTTL, cacheOptions...)

	engine := NewConversionEngine(cfg.ReplacementFields, logger)
	container.Macro = NewCurrencyMacroService(container.ExchangeRate, engine)

	locator, err := NewLocatorService(ctx, vocabulary, domain.DefaultLocatorRules())
	if err != nil {
		return nil, err
	}
	container.Locator = locator
	container.Formatter = NewNewscentreFormatter(locator)

	return container, nil
}
