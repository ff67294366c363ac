package service

import (
	"context"
	"encoding/json"

	"github.com/GlennDumoulin/food-orders/board-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads order events until ctx is cancelled. Broken messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	c.Logger.Info("starting order board consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.Logger.Warn("read message failed", zap.Error(err))
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("malformed order event", zap.ByteString("key", message.Key), zap.Error(err))
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			c.Logger.Error("order event not applied",
				zap.String("type", string(event.Type)),
				zap.String("order_id", event.OrderID),
				zap.Error(err),
			)
		}
	}
}

// ProcessEvent keeps placed and accepted orders on the board and drops every other outcome.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.OrderEvent) error {
	if event.OrderID == "" || event.RestaurantID == "" {
		c.Logger.Warn("order event without ids", zap.String("type", string(event.Type)))
		return nil
	}

	switch event.Type {
	case domain.EventOrderPlaced, domain.EventOrderAccepted:
		if err := c.Store.Upsert(ctx, domain.EntryFromEvent(event)); err != nil {
			return err
		}
	case domain.EventOrderCancelled, domain.EventOrderDeclined, domain.EventOrderPickedUp, domain.EventOrderDeleted:
		if err := c.Store.Remove(ctx, event.RestaurantID, event.OrderID); err != nil {
			return err
		}
	default:
		c.Logger.Debug("ignoring order event", zap.String("type", string(event.Type)))
		return nil
	}

	c.Logger.Info("board updated",
		zap.String("type", string(event.Type)),
		zap.String("restaurant_id", event.RestaurantID),
		zap.String("order_id", event.OrderID),
	)
	return nil
}
