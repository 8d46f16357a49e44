// Package vocabulary supplies the categories vocabulary used by the locator mapper.
package vocabulary

import (
	"context"
	"fmt"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/SscSPs/newswire_macros/internal/core/ports/providers"
	"github.com/spf13/viper"
)

// StaticProvider serves a fixed list of categories.
type StaticProvider struct {
	categories []domain.CategoryVocabulary
}

var _ providers.VocabularyProvider = (*StaticProvider)(nil)

// NewStaticProvider serves categories, or the built-in list when categories is empty.
func NewStaticProvider(categories []domain.CategoryVocabulary) *StaticProvider {
	if len(categories) == 0 {
		categories = domain.DefaultCategories()
	}
	return &StaticProvider{categories: categories}
}

func (p *StaticProvider) ListCategories(ctx context.Context) ([]domain.CategoryVocabulary, error) {
	out := make([]domain.CategoryVocabulary, len(p.categories))
	copy(out, p.categories)
	return out, nil
}

// LoadFile reads a vocabulary file (YAML, JSON or TOML, by extension) with a
// top level "categories" list and returns a provider serving it.
//
//	categories:
//	  - qcode: s
//	    name: Overseas Sport
//	    subject: "15000000"
//	    is_active: true
func LoadFile(path string) (*StaticProvider, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var categories []domain.CategoryVocabulary
	if err := v.UnmarshalKey("categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary file %s: %w", path, err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: vocabulary file %s has no categories", apperrors.ErrValidation, path)
	}
	for i, c := range categories {
		if c.QCode == "" {
			return nil, fmt.Errorf("%w: category %d in %s has no qcode", apperrors.ErrValidation, i, path)
		}
	}

	return &StaticProvider{categories: categories}, nil
}
