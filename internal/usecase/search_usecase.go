package usecase

import (
	"context"

	"pricefield/internal/domain/entity"
)

// SearchResult bundles the products and shops matching a search term
type SearchResult struct {
	Products []*entity.Product `json:"products"`
	Shops    []*entity.Shop    `json:"shops"`
}

// SearchUsecase defines the interface for catalog search and the
// local search history
type SearchUsecase interface {
	// Search matches the term case-insensitively against active
	// product and shop names, and records the term in the history
	Search(ctx context.Context, term string) (*SearchResult, error)

	// GetSearchHistory returns recent search terms, most recent first
	GetSearchHistory(ctx context.Context) ([]string, error)

	// ClearSearchHistory drops all recorded terms
	ClearSearchHistory(ctx context.Context) error
}
