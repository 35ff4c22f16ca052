package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

// AddFoodItem adds a catalog entry. Identifiers are assigned by the
// store.
func (s *Service) AddFoodItem(ctx context.Context, item *domain.FoodItem) (*domain.FoodItem, error) {
	if item.Name == "" || !item.Price.IsPos() || item.ImageURL == "" {
		return nil, domain.ErrInvalidFoodItem
	}

	item.CreatedAt = time.Now()
	created, err := s.repo.CreateFoodItem(ctx, item)
	if err != nil {
		s.logger.Error("create food item", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return created, nil
}

// RemoveFoodItem deletes a catalog entry by id.
func (s *Service) RemoveFoodItem(ctx context.Context, id int) error {
	if id <= 0 {
		return domain.ErrBadRequest
	}

	n, err := s.repo.DeleteFoodItem(ctx, id)
	if err != nil {
		s.logger.Error("delete food item", zap.Error(err))
		return domain.ErrInternal
	}
	if n == 0 {
		return domain.ErrDataNotFound
	}

	return nil
}

// ListFoodItems returns the full catalog.
func (s *Service) ListFoodItems(ctx context.Context) ([]*domain.FoodItem, error) {
	items, err := s.repo.ListFoodItems(ctx)
	if err != nil {
		s.logger.Error("list food items", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return items, nil
}
