package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/GlennDumoulin/food-orders/board-svc/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const entryTTL = 48 * time.Hour

// Store keeps one sorted set per restaurant, scored by pickup time, plus one hash per order.
type Store struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewStore(rdb *redis.Client, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{rdb: rdb, logger: logger}
}

func BoardKey(restaurantID string) string {
	return "board:" + restaurantID
}

func EntryKey(restaurantID, orderID string) string {
	return fmt.Sprintf("board:%s:order:%s", restaurantID, orderID)
}

func (s *Store) Upsert(ctx context.Context, entry domain.BoardEntry) error {
	key := EntryKey(entry.RestaurantID, entry.OrderID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, BoardKey(entry.RestaurantID), redis.Z{
			Score:  float64(entry.PickupAt),
			Member: entry.OrderID,
		})
		pipe.HSet(ctx, key, map[string]interface{}{
			"user_id":    entry.UserID,
			"status":     entry.Status,
			"pickup_at":  entry.PickupAt,
			"items":      entry.Items,
			"updated_at": entry.UpdatedAt.Unix(),
		})
		pipe.Expire(ctx, key, entryTTL)
		return nil
	})
	return err
}

func (s *Store) Remove(ctx context.Context, restaurantID, orderID string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, BoardKey(restaurantID), orderID)
		pipe.Del(ctx, EntryKey(restaurantID, orderID))
		return nil
	})
	return err
}

// List returns the board ordered by pickup time. Members whose hash expired are pruned; a
// failed prune is logged and retried on the next List.
func (s *Store) List(ctx context.Context, restaurantID string) ([]domain.BoardEntry, error) {
	orderIDs, err := s.rdb.ZRange(ctx, BoardKey(restaurantID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	cmds := make([]*redis.MapStringStringCmd, len(orderIDs))
	if len(orderIDs) > 0 {
		_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, orderID := range orderIDs {
				cmds[i] = pipe.HGetAll(ctx, EntryKey(restaurantID, orderID))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	entries := make([]domain.BoardEntry, 0, len(orderIDs))
	var stale []interface{}
	for i, orderID := range orderIDs {
		fields := cmds[i].Val()
		if len(fields) == 0 {
			stale = append(stale, orderID)
			continue
		}
		entries = append(entries, entryFromHash(restaurantID, orderID, fields))
	}
	if len(stale) > 0 {
		if err := s.rdb.ZRem(ctx, BoardKey(restaurantID), stale...).Err(); err != nil {
			s.logger.Warn("failed to prune expired board entries",
				zap.String("restaurant_id", restaurantID), zap.Int("stale", len(stale)), zap.Error(err))
		}
	}
	return entries, nil
}

func entryFromHash(restaurantID, orderID string, fields map[string]string) domain.BoardEntry {
	pickupAt, _ := strconv.ParseInt(fields["pickup_at"], 10, 64)
	items, _ := strconv.Atoi(fields["items"])
	updatedAt, _ := strconv.ParseInt(fields["updated_at"], 10, 64)
	return domain.BoardEntry{
		OrderID:      orderID,
		RestaurantID: restaurantID,
		UserID:       fields["user_id"],
		Status:       fields["status"],
		PickupAt:     pickupAt,
		Items:        items,
		UpdatedAt:    time.Unix(updatedAt, 0).UTC(),
	}
}
