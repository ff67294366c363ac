package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/lib/pq"
)

const orderColumns = "id, user_id, restaurant_id, status, pickup_at"

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	if err := row.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.Status, &order.PickupAt); err != nil {
		return nil, err
	}
	order.OrderContent = []domain.LineItem{}
	return &order, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := getOrder(ctx, r.DB, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id)
	return order, wrap("orders.get", err)
}

// FindCart returns the user's single order that is not yet placed.
func (r *PostgresRepository) FindCart(ctx context.Context, userID string) (*domain.Order, error) {
	order, err := getOrder(ctx, r.DB,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 AND status = $2",
		userID, domain.StatusNotYetPlaced)
	return order, wrap("orders.find_cart", err)
}

func getOrder(ctx context.Context, q querier, query string, args ...interface{}) (*domain.Order, error) {
	order, err := scanOrder(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}
	if err := loadItems(ctx, q, []*domain.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return r.listOrders(ctx, "orders.list_by_user",
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY pickup_at DESC", userID)
}

func (r *PostgresRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return r.listOrders(ctx, "orders.list_by_restaurant",
		"SELECT "+orderColumns+" FROM orders WHERE restaurant_id = $1 ORDER BY pickup_at", restaurantID)
}

func (r *PostgresRepository) listOrders(ctx context.Context, op, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	var refs []*domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		refs = append(refs, order)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	if err := loadItems(ctx, r.DB, refs); err != nil {
		return nil, wrap(op, err)
	}

	orders := make([]domain.Order, 0, len(refs))
	for _, order := range refs {
		orders = append(orders, *order)
	}
	return orders, nil
}

// loadItems fills OrderContent of every order in one query, keeping insertion order.
func loadItems(ctx context.Context, q querier, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	rows, err := q.QueryContext(ctx, `
		SELECT order_id, price_id, amount
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, position`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item domain.LineItem
		if err := rows.Scan(&orderID, &item.PriceID, &item.Amount); err != nil {
			return err
		}
		if order, ok := byID[orderID]; ok {
			order.OrderContent = append(order.OrderContent, item)
		}
	}
	return rows.Err()
}

func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return r.withTx(ctx, "orders.create", func(tx *sql.Tx) error {
		return insertOrder(ctx, tx, order)
	})
}

// ReplaceOrder deletes the order oldID and creates order in the same transaction.
func (r *PostgresRepository) ReplaceOrder(ctx context.Context, oldID string, order *domain.Order) error {
	return r.withTx(ctx, "orders.replace", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", oldID)
		if err := expectRow("orders.replace", result, err); err != nil {
			return err
		}
		return insertOrder(ctx, tx, order)
	})
}

func insertOrder(ctx context.Context, tx *sql.Tx, order *domain.Order) error {
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO orders (id, user_id, restaurant_id, status, pickup_at) VALUES ($1, $2, $3, $4, $5)",
		order.ID, order.UserID, order.RestaurantID, order.Status, order.PickupAt); err != nil {
		return err
	}
	for position, item := range order.OrderContent {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, price_id, amount, position) VALUES ($1, $2, $3, $4)",
			order.ID, item.PriceID, item.Amount, position); err != nil {
			return err
		}
	}
	return nil
}

const appendItemQuery = `
	INSERT INTO order_items (order_id, price_id, amount, position)
	SELECT $1, $2, $3, COALESCE(MAX(position) + 1, 0) FROM order_items WHERE order_id = $1`

func (r *PostgresRepository) AppendLineItem(ctx context.Context, orderID string, item domain.LineItem) error {
	_, err := r.DB.ExecContext(ctx, appendItemQuery, orderID, item.PriceID, item.Amount)
	return wrap("orders.append_item", err)
}

// ReplaceLineItem removes old and appends next atomically.
func (r *PostgresRepository) ReplaceLineItem(ctx context.Context, orderID string, old, next domain.LineItem) error {
	return r.withTx(ctx, "orders.replace_item", func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			"DELETE FROM order_items WHERE order_id = $1 AND price_id = $2 AND amount = $3",
			orderID, old.PriceID, old.Amount)
		if err := expectRow("orders.replace_item", result, err); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, appendItemQuery, orderID, next.PriceID, next.Amount)
		return err
	})
}

func (r *PostgresRepository) RemoveLineItem(ctx context.Context, orderID string, item domain.LineItem) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM order_items WHERE order_id = $1 AND price_id = $2 AND amount = $3",
		orderID, item.PriceID, item.Amount)
	if err != nil {
		return 0, wrap("orders.remove_item", err)
	}
	rows, err := result.RowsAffected()
	return rows, wrap("orders.remove_item", err)
}

// UpdateStatus moves the order from status from to status to and, when pickupAt is not nil,
// writes the pickup moment. When the stored status is no longer from, nothing is written and
// ErrInvalidTransition is returned.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus, pickupAt *int64) error {
	var (
		result sql.Result
		err    error
	)
	if pickupAt == nil {
		result, err = r.DB.ExecContext(ctx,
			"UPDATE orders SET status = $1 WHERE id = $2 AND status = $3", to, orderID, from)
	} else {
		result, err = r.DB.ExecContext(ctx,
			"UPDATE orders SET status = $1, pickup_at = $2 WHERE id = $3 AND status = $4", to, *pickupAt, orderID, from)
	}
	err = expectRow("orders.update_status", result, err)
	if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	var current domain.OrderStatus
	if err := r.DB.QueryRowContext(ctx, "SELECT status FROM orders WHERE id = $1", orderID).Scan(&current); err != nil {
		return wrap("orders.update_status", err)
	}
	return fmt.Errorf("%w: status changed from %s to %s", domain.ErrInvalidTransition, from, current)
}

// DeleteOrder removes the order with its line items and returns what was deleted.
func (r *PostgresRepository) DeleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	var deleted *domain.Order
	err := r.withTx(ctx, "orders.delete", func(tx *sql.Tx) error {
		order, err := getOrder(ctx, tx, "SELECT "+orderColumns+" FROM orders WHERE id = $1 FOR UPDATE", id)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id); err != nil {
			return err
		}
		deleted = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
