package storage

import (
	"context"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
)

const restaurantColumns = `id, name, company_number, email, address, postal_code, city,
	COALESCE(thumbnail_url, ''), COALESCE(thumbnail_path, ''), accepting_orders`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.Name, &rest.CompanyNumber, &rest.Email, &rest.Address,
		&rest.PostalCode, &rest.City, &rest.Thumbnail.URL, &rest.Thumbnail.Path, &rest.AcceptingOrders)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO restaurants (id, name, company_number, email, address, postal_code, city,
			thumbnail_url, thumbnail_path, accepting_orders)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rest.ID, rest.Name, rest.CompanyNumber, rest.Email, rest.Address, rest.PostalCode, rest.City,
		rest.Thumbnail.URL, rest.Thumbnail.Path, rest.AcceptingOrders)
	return wrap("restaurants.create", err)
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx,
		"SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id))
	if err != nil {
		return nil, wrap("restaurants.get", err)
	}
	return rest, nil
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants ORDER BY name")
	if err != nil {
		return nil, wrap("restaurants.list", err)
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, wrap("restaurants.list", err)
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, wrap("restaurants.list", rows.Err())
}

func (r *PostgresRepository) UpdateRestaurantAddress(ctx context.Context, id, address, postalCode, city string) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE restaurants SET address = $1, postal_code = $2, city = $3 WHERE id = $4",
		address, postalCode, city, id)
	return expectRow("restaurants.update_address", result, err)
}

func (r *PostgresRepository) UpdateRestaurantThumbnail(ctx context.Context, id string, thumbnail domain.Thumbnail) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE restaurants SET thumbnail_url = $1, thumbnail_path = $2 WHERE id = $3",
		thumbnail.URL, thumbnail.Path, id)
	return expectRow("restaurants.update_thumbnail", result, err)
}

func (r *PostgresRepository) SetAcceptingOrders(ctx context.Context, id string, accepting bool) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE restaurants SET accepting_orders = $1 WHERE id = $2", accepting, id)
	return expectRow("restaurants.set_accepting_orders", result, err)
}

// DeleteRestaurant relies on ON DELETE CASCADE for sizes, dishes and prices.
func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, wrap("restaurants.delete", err)
	}
	rows, err := result.RowsAffected()
	return rows, wrap("restaurants.delete", err)
}
