package dto

import "github.com/SscSPs/newswire_macros/internal/core/domain"

// LocatorRequest asks for the locator of an article under a category.
// Category defaults to the article's first ANPA category.
type LocatorRequest struct {
	Article  *domain.Article `json:"article" binding:"required"`
	Category string          `json:"category" binding:"omitempty,max=6,alpha"`
}

// LocatorResponse defines the structure returned by the locator endpoint.
type LocatorResponse struct {
	Locator  string `json:"locator,omitempty"`
	Found    bool   `json:"found"`
	Headline string `json:"headline"`
}
