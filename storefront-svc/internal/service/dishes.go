package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DishService struct {
	repo   DishRepository
	blobs  BlobStore
	logger *zap.Logger
}

func NewDishService(repo DishRepository, blobs BlobStore, logger *zap.Logger) *DishService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DishService{repo: repo, blobs: blobs, logger: logger}
}

var _ DishServiceInterface = (*DishService)(nil)

func (s *DishService) List(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	return s.repo.ListDishes(ctx, restaurantID)
}

func (s *DishService) ListAll(ctx context.Context) ([]domain.Dish, error) {
	return s.repo.ListAllDishes(ctx)
}

func (s *DishService) Get(ctx context.Context, id string) (*domain.Dish, error) {
	return s.repo.GetDish(ctx, id)
}

func (s *DishService) Create(ctx context.Context, dish *domain.Dish, restaurantName string, thumbnail *domain.Upload) error {
	if strings.TrimSpace(dish.Name) == "" {
		return fmt.Errorf("%w: dish name is required", domain.ErrInvalidInput)
	}
	if thumbnail == nil {
		return fmt.Errorf("%w: a thumbnail is required", domain.ErrInvalidInput)
	}

	stored, err := s.blobs.Upload(ctx, BlobPath("dishes", restaurantName, thumbnail.Filename), thumbnail.Body)
	if err != nil {
		return err
	}
	dish.ID = uuid.NewString()
	dish.Thumbnail = stored
	dish.Available = true
	return s.repo.CreateDish(ctx, dish)
}

// UpdateInfo changes name and description and, when a new thumbnail is given, replaces the
// stored image.
func (s *DishService) UpdateInfo(ctx context.Context, restaurantID, dishID, name, description, restaurantName string, thumbnail *domain.Upload) (*domain.Dish, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: dish name is required", domain.ErrInvalidInput)
	}
	dish, err := s.owned(ctx, restaurantID, dishID)
	if err != nil {
		return nil, err
	}

	dish.Name = name
	dish.Description = description
	if thumbnail == nil {
		if err := s.repo.UpdateDish(ctx, dish); err != nil {
			return nil, err
		}
		return dish, nil
	}

	blobPath := BlobPath("dishes", restaurantName, thumbnail.Filename)
	stored, err := replaceThumbnail(ctx, s.blobs, s.logger, dish.Thumbnail, blobPath, thumbnail.Body, func(stored domain.Thumbnail) error {
		updated := *dish
		updated.Thumbnail = stored
		return s.repo.UpdateDish(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}
	dish.Thumbnail = stored
	return dish, nil
}

func (s *DishService) SetAvailable(ctx context.Context, restaurantID, dishID string, available bool) (*domain.Dish, error) {
	dish, err := s.owned(ctx, restaurantID, dishID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SetDishAvailable(ctx, dishID, available); err != nil {
		return nil, err
	}
	dish.Available = available
	return dish, nil
}

// Delete removes the stored thumbnail, then the dish together with its prices. An empty
// restaurantID skips the ownership check (admin curation).
func (s *DishService) Delete(ctx context.Context, restaurantID, dishID string) error {
	dish, err := s.owned(ctx, restaurantID, dishID)
	if err != nil {
		return err
	}
	if dish.Thumbnail.Path != "" {
		if err := s.blobs.Delete(ctx, dish.Thumbnail.Path); err != nil {
			return err
		}
	}
	if err := s.repo.DeleteDishCascade(ctx, dishID); err != nil {
		return err
	}
	s.logger.Info("dish deleted", zap.String("dish_id", dishID), zap.String("restaurant_id", dish.RestaurantID))
	return nil
}

func (s *DishService) owned(ctx context.Context, restaurantID, dishID string) (*domain.Dish, error) {
	dish, err := s.repo.GetDish(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if restaurantID != "" && dish.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound
	}
	return dish, nil
}
