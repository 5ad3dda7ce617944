package impl

import (
	"context"
	"log/slog"
	"strings"

	"pricefield/config"
	"pricefield/internal/domain/entity"
	"pricefield/internal/domain/repository"
	"pricefield/internal/errors"
	"pricefield/internal/usecase"

	"go.uber.org/fx"
)

const defaultHistoryLimit = 10

type searchService struct {
	productRepo  repository.ProductRepository
	shopRepo     repository.ShopRepository
	settingsRepo repository.SettingsRepository
	config       *config.Config
	logger       *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	ShopRepo     repository.ShopRepository
	SettingsRepo repository.SettingsRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSearchService creates a new search service instance
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		productRepo:  params.ProductRepo,
		shopRepo:     params.ShopRepo,
		settingsRepo: params.SettingsRepo,
		config:       params.Config,
		logger:       params.Logger,
	}
}

func (s *searchService) historyLimit() int {
	if s.config != nil && s.config.Search != nil && s.config.Search.HistoryLimit > 0 {
		return s.config.Search.HistoryLimit
	}

	return defaultHistoryLimit
}

// Search matches the term case-insensitively against active product
// and shop names. Non-empty terms are remembered in the search
// history; a history write failure only logs, the search result still
// comes back.
func (s *searchService) Search(ctx context.Context, term string) (*usecase.SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(term))

	result := &usecase.SearchResult{
		Products: []*entity.Product{},
		Shops:    []*entity.Shop{},
	}
	if needle == "" {
		return result, nil
	}

	products, err := s.productRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load products")
	}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			result.Products = append(result.Products, p)
		}
	}

	shops, err := s.shopRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shops")
	}
	for _, shop := range shops {
		if strings.Contains(strings.ToLower(shop.Name), needle) {
			result.Shops = append(result.Shops, shop)
		}
	}

	if err := s.recordTerm(ctx, strings.TrimSpace(term)); err != nil {
		s.logger.Warn("failed to record search term",
			slog.String("term", term),
			slog.Any("error", err),
		)
	}

	return result, nil
}

// recordTerm pushes the term to the front of the history, deduplicated
// and capped at the configured limit
func (s *searchService) recordTerm(ctx context.Context, term string) error {
	history, err := s.settingsRepo.GetSearchHistory(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load search history")
	}

	terms := make([]string, 0, len(history)+1)
	terms = append(terms, term)
	for _, t := range history {
		if strings.EqualFold(t, term) {
			continue
		}
		terms = append(terms, t)
	}
	if limit := s.historyLimit(); len(terms) > limit {
		terms = terms[:limit]
	}

	return errors.Wrap(s.settingsRepo.SaveSearchHistory(ctx, terms), "failed to save search history")
}

// GetSearchHistory returns recent search terms, most recent first
func (s *searchService) GetSearchHistory(ctx context.Context) ([]string, error) {
	history, err := s.settingsRepo.GetSearchHistory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load search history")
	}

	return history, nil
}

// ClearSearchHistory drops all recorded terms
func (s *searchService) ClearSearchHistory(ctx context.Context) error {
	if err := s.settingsRepo.ClearSearchHistory(ctx); err != nil {
		return errors.Wrap(err, "failed to clear search history")
	}

	return nil
}
