package storage

import (
	"context"
	"database/sql"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (r *PostgresRepository) ListSizes(ctx context.Context, restaurantID string) ([]domain.Size, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, "order", restaurant_id
		FROM sizes
		WHERE restaurant_id = $1
		ORDER BY "order"`, restaurantID)
	if err != nil {
		return nil, wrap("sizes.list", err)
	}
	defer rows.Close()

	sizes := []domain.Size{}
	for rows.Next() {
		var size domain.Size
		if err := rows.Scan(&size.ID, &size.Name, &size.Order, &size.RestaurantID); err != nil {
			return nil, wrap("sizes.list", err)
		}
		sizes = append(sizes, size)
	}
	return sizes, wrap("sizes.list", rows.Err())
}

func (r *PostgresRepository) GetSize(ctx context.Context, id string) (*domain.Size, error) {
	var size domain.Size
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, "order", restaurant_id FROM sizes WHERE id = $1`, id).
		Scan(&size.ID, &size.Name, &size.Order, &size.RestaurantID)
	if err != nil {
		return nil, wrap("sizes.get", err)
	}
	return &size, nil
}

func (r *PostgresRepository) CreateSize(ctx context.Context, size *domain.Size) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO sizes (id, name, "order", restaurant_id) VALUES ($1, $2, $3, $4)`,
		size.ID, size.Name, size.Order, size.RestaurantID)
	return wrap("sizes.create", err)
}

func (r *PostgresRepository) RenameSize(ctx context.Context, id, name string) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE sizes SET name = $1 WHERE id = $2", name, id)
	return expectRow("sizes.rename", result, err)
}

// DeleteSize removes the size (its prices cascade) and shifts the later sizes down by one.
func (r *PostgresRepository) DeleteSize(ctx context.Context, id string) error {
	return r.withTx(ctx, "sizes.delete", func(tx *sql.Tx) error {
		var restaurantID string
		var order int
		if err := tx.QueryRowContext(ctx,
			`DELETE FROM sizes WHERE id = $1 RETURNING restaurant_id, "order"`, id).
			Scan(&restaurantID, &order); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			`UPDATE sizes SET "order" = "order" - 1 WHERE restaurant_id = $1 AND "order" > $2`,
			restaurantID, order)
		return err
	})
}

// ReorderSizes assigns each size its index in orderedIDs. The (restaurant_id, order) unique
// constraint is deferred, so intermediate duplicates are fine.
func (r *PostgresRepository) ReorderSizes(ctx context.Context, restaurantID string, orderedIDs []string) error {
	return r.withTx(ctx, "sizes.reorder", func(tx *sql.Tx) error {
		for index, id := range orderedIDs {
			result, err := tx.ExecContext(ctx,
				`UPDATE sizes SET "order" = $1 WHERE id = $2 AND restaurant_id = $3`,
				index, id, restaurantID)
			if err := expectRow("sizes.reorder", result, err); err != nil {
				return err
			}
		}
		return nil
	})
}

const dishColumns = `id, name, COALESCE(description, ''), COALESCE(thumbnail_url, ''),
	COALESCE(thumbnail_path, ''), restaurant_id, available`

func scanDish(row rowScanner) (*domain.Dish, error) {
	var dish domain.Dish
	err := row.Scan(&dish.ID, &dish.Name, &dish.Description, &dish.Thumbnail.URL,
		&dish.Thumbnail.Path, &dish.RestaurantID, &dish.Available)
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO dishes (id, name, description, thumbnail_url, thumbnail_path, restaurant_id, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		dish.ID, dish.Name, dish.Description, dish.Thumbnail.URL, dish.Thumbnail.Path,
		dish.RestaurantID, dish.Available)
	return wrap("dishes.create", err)
}

func (r *PostgresRepository) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	dish, err := scanDish(r.DB.QueryRowContext(ctx, "SELECT "+dishColumns+" FROM dishes WHERE id = $1", id))
	if err != nil {
		return nil, wrap("dishes.get", err)
	}
	return dish, nil
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	return r.queryDishes(ctx, "dishes.list",
		"SELECT "+dishColumns+" FROM dishes WHERE restaurant_id = $1 ORDER BY name", restaurantID)
}

func (r *PostgresRepository) ListAllDishes(ctx context.Context) ([]domain.Dish, error) {
	return r.queryDishes(ctx, "dishes.list_all", "SELECT "+dishColumns+" FROM dishes ORDER BY name")
}

func (r *PostgresRepository) queryDishes(ctx context.Context, op, query string, args ...interface{}) ([]domain.Dish, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	dishes := []domain.Dish{}
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		dishes = append(dishes, *dish)
	}
	return dishes, wrap(op, rows.Err())
}

func (r *PostgresRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE dishes
		SET name = $1, description = $2, thumbnail_url = $3, thumbnail_path = $4
		WHERE id = $5`,
		dish.Name, dish.Description, dish.Thumbnail.URL, dish.Thumbnail.Path, dish.ID)
	return expectRow("dishes.update", result, err)
}

func (r *PostgresRepository) SetDishAvailable(ctx context.Context, id string, available bool) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE dishes SET available = $1 WHERE id = $2", available, id)
	return expectRow("dishes.set_available", result, err)
}

// DeleteDishCascade removes the dish and its prices together.
func (r *PostgresRepository) DeleteDishCascade(ctx context.Context, id string) error {
	return r.withTx(ctx, "dishes.delete", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM prices WHERE dish_id = $1", id); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, "DELETE FROM dishes WHERE id = $1", id)
		return expectRow("dishes.delete", result, err)
	})
}

func (r *PostgresRepository) GetPrice(ctx context.Context, id string) (*domain.Price, error) {
	var price domain.Price
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, dish_id, size_id, price FROM prices WHERE id = $1", id).
		Scan(&price.ID, &price.DishID, &price.SizeID, &price.Price)
	if err != nil {
		return nil, wrap("prices.get", err)
	}
	return &price, nil
}

func (r *PostgresRepository) ListPricesByDish(ctx context.Context, dishID string) ([]domain.Price, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT p.id, p.dish_id, p.size_id, p.price
		FROM prices p
		JOIN sizes s ON s.id = p.size_id
		WHERE p.dish_id = $1
		ORDER BY s."order"`, dishID)
	if err != nil {
		return nil, wrap("prices.list", err)
	}
	defer rows.Close()

	prices := []domain.Price{}
	for rows.Next() {
		var price domain.Price
		if err := rows.Scan(&price.ID, &price.DishID, &price.SizeID, &price.Price); err != nil {
			return nil, wrap("prices.list", err)
		}
		prices = append(prices, price)
	}
	return prices, wrap("prices.list", rows.Err())
}

// CreatePrice assigns the price a new id when it has none.
func (r *PostgresRepository) CreatePrice(ctx context.Context, price *domain.Price) error {
	if price.ID == "" {
		price.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO prices (id, dish_id, size_id, price) VALUES ($1, $2, $3, $4)",
		price.ID, price.DishID, price.SizeID, price.Price)
	return wrap("prices.create", err)
}

func (r *PostgresRepository) UpdatePrice(ctx context.Context, id string, value decimal.Decimal) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE prices SET price = $1 WHERE id = $2", value, id)
	return expectRow("prices.update", result, err)
}

func (r *PostgresRepository) DeletePrice(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM prices WHERE id = $1", id)
	return expectRow("prices.delete", result, err)
}
