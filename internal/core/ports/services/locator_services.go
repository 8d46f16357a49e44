package services

import "github.com/SscSPs/newswire_macros/internal/core/domain"

// LocatorSvcFacade derives locator codes and locator-prefixed headlines.
type LocatorSvcFacade interface {
	// MapLocator returns the locator for article and false when none applies.
	MapLocator(article *domain.Article, category string) (string, bool)

	// FormattedHeadline returns the headline prefixed with the locator when appropriate.
	FormattedHeadline(article *domain.Article, category string) string
}
