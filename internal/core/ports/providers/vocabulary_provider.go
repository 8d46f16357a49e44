package providers

import (
	"context"

	"github.com/SscSPs/newswire_macros/internal/core/domain"
)

// VocabularyProvider supplies the read-only categories vocabulary.
type VocabularyProvider interface {
	ListCategories(ctx context.Context) ([]domain.CategoryVocabulary, error)
}
