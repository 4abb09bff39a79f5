package menu

import (
	"context"

	"github.com/obsidianspecter/demo-delivery/internal/domain/menu"
	"github.com/obsidianspecter/demo-delivery/internal/domain/repository"
	"github.com/obsidianspecter/demo-delivery/pkg/logger"
)

// Service serves a restaurant's catalog. Without a configured
// repository it serves the built-in sample catalog; a failing or empty
// repository query also falls back to the sample catalog rather than
// failing the request.
type Service struct {
	repo repository.MenuRepository
	log  logger.Logger
}

// NewService wires the menu service; repo may be nil.
func NewService(repo repository.MenuRepository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) ListMenu(ctx context.Context, restaurantID string) []menu.MenuItem {
	if s.repo == nil {
		return menu.SampleItems()
	}

	items, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.log.Warn("menu query failed, serving sample catalog",
			logger.String("restaurant_id", restaurantID),
			logger.Error(err),
		)
		return menu.SampleItems()
	}
	if len(items) == 0 {
		return menu.SampleItems()
	}
	return items
}
