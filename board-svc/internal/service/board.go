package service

import (
	"context"

	"github.com/GlennDumoulin/food-orders/board-svc/internal/domain"
)

type BoardServiceInterface interface {
	Board(ctx context.Context, token, restaurantID string) ([]domain.BoardEntry, error)
}

// BoardService serves a restaurant its own board.
type BoardService struct {
	store    StoreInterface
	sessions TokenVerifier
}

func NewBoardService(store StoreInterface, sessions TokenVerifier) *BoardService {
	return &BoardService{store: store, sessions: sessions}
}

func (s *BoardService) Board(ctx context.Context, token, restaurantID string) ([]domain.BoardEntry, error) {
	accountID, err := s.sessions.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	if accountID != restaurantID {
		return nil, domain.ErrForbidden
	}
	return s.store.List(ctx, restaurantID)
}
