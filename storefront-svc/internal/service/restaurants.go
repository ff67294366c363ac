package service

import (
	"context"
	"fmt"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

type RestaurantService struct {
	repo   RestaurantRepository
	dishes DishRepository
	blobs  BlobStore
	logger *zap.Logger
}

func NewRestaurantService(repo RestaurantRepository, dishes DishRepository, blobs BlobStore, logger *zap.Logger) *RestaurantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RestaurantService{repo: repo, dishes: dishes, blobs: blobs, logger: logger}
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

func (s *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx)
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

func (s *RestaurantService) SetAcceptingOrders(ctx context.Context, id string, accepting bool) (*domain.Restaurant, error) {
	if err := s.repo.SetAcceptingOrders(ctx, id, accepting); err != nil {
		return nil, err
	}
	return s.repo.GetRestaurant(ctx, id)
}

func (s *RestaurantService) UpdateAddress(ctx context.Context, id, address, postalCode, city string) (*domain.Restaurant, error) {
	if address == "" || postalCode == "" || city == "" {
		return nil, fmt.Errorf("%w: address, postal code and city are required", domain.ErrInvalidInput)
	}
	if err := s.repo.UpdateRestaurantAddress(ctx, id, address, postalCode, city); err != nil {
		return nil, err
	}
	return s.repo.GetRestaurant(ctx, id)
}

func (s *RestaurantService) ReplaceLogo(ctx context.Context, id string, logo *domain.Upload) (*domain.Restaurant, error) {
	if logo == nil {
		return nil, fmt.Errorf("%w: a logo is required", domain.ErrInvalidInput)
	}
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	blobPath := BlobPath("restaurants", rest.Name, logo.Filename)
	stored, err := replaceThumbnail(ctx, s.blobs, s.logger, rest.Thumbnail, blobPath, logo.Body, func(stored domain.Thumbnail) error {
		return s.repo.UpdateRestaurantThumbnail(ctx, id, stored)
	})
	if err != nil {
		return nil, err
	}
	rest.Thumbnail = stored
	return rest, nil
}

// Delete removes the restaurant; its sizes, dishes and prices go with it in the store. The logo
// and the dish thumbnails are removed once the rows are gone.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	rest, err := s.repo.GetRestaurant(ctx, id)
	if err != nil {
		return err
	}
	dishes, err := s.dishes.ListDishes(ctx, id)
	if err != nil {
		return err
	}
	rows, err := s.repo.DeleteRestaurant(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	removeBlob(ctx, s.blobs, s.logger, rest.Thumbnail.Path, "restaurant logo left behind")
	for _, dish := range dishes {
		removeBlob(ctx, s.blobs, s.logger, dish.Thumbnail.Path, "dish thumbnail left behind")
	}
	s.logger.Info("restaurant deleted", zap.String("restaurant_id", id), zap.Int("dishes", len(dishes)))
	return nil
}
