package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	portssvc "github.com/SscSPs/newswire_macros/internal/core/ports/services"
)

// Subscriber formats handled by the newscentre formatter.
const (
	FormatAAPNewscentre = "AAP NEWSCENTRE"
	FormatNZNNewscentre = "NZN NEWSCENTRE"
)

// sourceAliases rewrites the article source per format.
var sourceAliases = map[string]map[string]string{
	FormatNZNNewscentre: {"AAP": "NZN"},
}

// newscentreFormatter implements the ArticleFormatterSvc interface
type newscentreFormatter struct {
	BaseService
	locator portssvc.LocatorSvcFacade
}

// NewNewscentreFormatter creates a formatter that prefixes headlines using locator
func NewNewscentreFormatter(locator portssvc.LocatorSvcFacade) portssvc.ArticleFormatterSvc {
	return &newscentreFormatter{locator: locator}
}

// Ensure newscentreFormatter implements the ArticleFormatterSvc interface
var _ portssvc.ArticleFormatterSvc = (*newscentreFormatter)(nil)

func (f *newscentreFormatter) CanFormat(format string, article *domain.Article) bool {
	if article == nil || article.Type != domain.ContentTypeText {
		return false
	}
	return format == FormatAAPNewscentre || format == FormatNZNNewscentre
}

func (f *newscentreFormatter) Format(ctx context.Context, article *domain.Article, category, format string) (*domain.Article, error) {
	if !f.CanFormat(format, article) {
		return nil, fmt.Errorf("%w: cannot format item as '%s'", apperrors.ErrValidation, format)
	}

	out := article.Clone()
	if mapped, ok := sourceAliases[format][out.Source]; ok {
		out.Source = mapped
	}
	out.Headline = f.locator.FormattedHeadline(out, category)

	f.LogDebug(ctx, "Formatted article",
		slog.String("format", format),
		slog.String("article_id", out.ID),
		slog.String("source", out.Source))
	return out, nil
}
