package service

import (
	"context"
	"fmt"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

type PriceService struct {
	prices PriceRepository
	sizes  SizeRepository
	dishes DishRepository
	logger *zap.Logger
}

func NewPriceService(prices PriceRepository, sizes SizeRepository, dishes DishRepository, logger *zap.Logger) *PriceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceService{prices: prices, sizes: sizes, dishes: dishes, logger: logger}
}

var _ PriceServiceInterface = (*PriceService)(nil)

func (s *PriceService) ListForDish(ctx context.Context, dishID string) ([]domain.Price, error) {
	return s.prices.ListPricesByDish(ctx, dishID)
}

// SavePrices reconciles the dish's prices with the submitted pairs. Writes are applied one
// by one without rollback: on failure the prices written so far are returned with the error
// and the caller should re-read the dish's prices.
func (s *PriceService) SavePrices(ctx context.Context, restaurantID, dishID string, submitted []domain.SizePrice) ([]domain.Price, error) {
	if err := ValidatePrices(submitted); err != nil {
		return nil, err
	}

	dish, err := s.dishes.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if dish.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound
	}

	sizes, err := s.sizes.ListSizes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	existing, err := s.prices.ListPricesByDish(ctx, dishID)
	if err != nil {
		return nil, err
	}

	plan, err := Reconcile(dishID, sizes, existing, submitted)
	if err != nil {
		return nil, err
	}

	applied := append([]domain.Price(nil), plan.Keep...)
	for _, price := range plan.Create {
		price := price
		if err := s.prices.CreatePrice(ctx, &price); err != nil {
			return s.partial(dishID, applied, fmt.Errorf("create price for size %s: %w", price.SizeID, err))
		}
		applied = append(applied, price)
	}
	for _, price := range plan.Update {
		if err := s.prices.UpdatePrice(ctx, price.ID, price.Price); err != nil {
			return s.partial(dishID, applied, fmt.Errorf("update price %s: %w", price.ID, err))
		}
		applied = append(applied, price)
	}
	for _, price := range plan.Delete {
		if err := s.prices.DeletePrice(ctx, price.ID); err != nil {
			return s.partial(dishID, applied, fmt.Errorf("delete price %s: %w", price.ID, err))
		}
	}

	s.logger.Info("dish prices saved",
		zap.String("dish_id", dishID),
		zap.Int("created", len(plan.Create)),
		zap.Int("updated", len(plan.Update)),
		zap.Int("deleted", len(plan.Delete)))

	sortBySize(applied)
	return applied, nil
}

func (s *PriceService) partial(dishID string, applied []domain.Price, err error) ([]domain.Price, error) {
	s.logger.Error("dish prices partially saved", zap.String("dish_id", dishID), zap.Error(err))
	sortBySize(applied)
	return applied, err
}
