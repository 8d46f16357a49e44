package services

import (
	"context"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
)

// ArticleFormatterSvc prepares articles for a subscriber output format.
type ArticleFormatterSvc interface {
	CanFormat(format string, article *domain.Article) bool
	Format(ctx context.Context, article *domain.Article, category, format string) (*domain.Article, error)
}
