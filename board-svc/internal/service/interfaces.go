package service

import (
	"context"

	"github.com/GlennDumoulin/food-orders/board-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/board-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	Upsert(ctx context.Context, entry domain.BoardEntry) error
	Remove(ctx context.Context, restaurantID, orderID string) error
	List(ctx context.Context, restaurantID string) ([]domain.BoardEntry, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessEvent(ctx context.Context, event domain.OrderEvent) error
}

// TokenVerifier resolves a bearer token to the account id it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ TokenVerifier     = (*storage.SessionVerifier)(nil)
)
