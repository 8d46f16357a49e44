package dto

import "github.com/SscSPs/newswire_macros/internal/core/domain"

// FormatArticleRequest defines the structure for formatting an article for a subscriber.
type FormatArticleRequest struct {
	Article  *domain.Article `json:"article" binding:"required"`
	Category string          `json:"category" binding:"omitempty,max=6,alpha"`
}

// FormatArticleResponse carries the formatted copy.
type FormatArticleResponse struct {
	Format  string          `json:"format"`
	Article *domain.Article `json:"article"`
}
