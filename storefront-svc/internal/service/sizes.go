package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/google/uuid"
)

type SizeService struct {
	repo SizeRepository
}

func NewSizeService(repo SizeRepository) *SizeService {
	return &SizeService{repo: repo}
}

var _ SizeServiceInterface = (*SizeService)(nil)

func (s *SizeService) List(ctx context.Context, restaurantID string) ([]domain.Size, error) {
	return s.repo.ListSizes(ctx, restaurantID)
}

// Add appends a size after the restaurant's last one.
func (s *SizeService) Add(ctx context.Context, restaurantID, name string) (*domain.Size, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: size name is required", domain.ErrInvalidInput)
	}
	sizes, err := s.repo.ListSizes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	next := 0
	if len(sizes) > 0 {
		next = sizes[len(sizes)-1].Order + 1
	}

	size := &domain.Size{
		ID:           uuid.NewString(),
		Name:         name,
		Order:        next,
		RestaurantID: restaurantID,
	}
	if err := s.repo.CreateSize(ctx, size); err != nil {
		return nil, err
	}
	return size, nil
}

func (s *SizeService) Rename(ctx context.Context, restaurantID, sizeID, name string) (*domain.Size, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: size name is required", domain.ErrInvalidInput)
	}
	size, err := s.owned(ctx, restaurantID, sizeID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RenameSize(ctx, sizeID, name); err != nil {
		return nil, err
	}
	size.Name = name
	return size, nil
}

// Delete removes the size and closes the gap it leaves in the display order.
func (s *SizeService) Delete(ctx context.Context, restaurantID, sizeID string) error {
	if _, err := s.owned(ctx, restaurantID, sizeID); err != nil {
		return err
	}
	return s.repo.DeleteSize(ctx, sizeID)
}

// Reorder rewrites every size's order to its index in orderedIDs, which must list each of
// the restaurant's sizes exactly once.
func (s *SizeService) Reorder(ctx context.Context, restaurantID string, orderedIDs []string) ([]domain.Size, error) {
	sizes, err := s.repo.ListSizes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if len(orderedIDs) != len(sizes) {
		return nil, fmt.Errorf("%w: expected %d sizes, got %d", domain.ErrInvalidInput, len(sizes), len(orderedIDs))
	}

	byID := make(map[string]domain.Size, len(sizes))
	for _, size := range sizes {
		byID[size.ID] = size
	}
	reordered := make([]domain.Size, 0, len(orderedIDs))
	for index, id := range orderedIDs {
		size, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: size %s is unknown or listed twice", domain.ErrInvalidInput, id)
		}
		delete(byID, id)
		size.Order = index
		reordered = append(reordered, size)
	}

	if err := s.repo.ReorderSizes(ctx, restaurantID, orderedIDs); err != nil {
		return nil, err
	}
	return reordered, nil
}

func (s *SizeService) owned(ctx context.Context, restaurantID, sizeID string) (*domain.Size, error) {
	size, err := s.repo.GetSize(ctx, sizeID)
	if err != nil {
		return nil, err
	}
	if size.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound
	}
	return size, nil
}
