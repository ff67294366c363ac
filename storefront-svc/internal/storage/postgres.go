package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/identity"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// Unique constraints that carry domain meaning.
var constraintErrors = map[string]error{
	"orders_one_cart_per_user":    domain.ErrConflictingCart,
	"order_items_order_price_key": domain.ErrDuplicateLineItem,
	"prices_dish_size_key":        domain.ErrInvalidPrice,
	"accounts_email_key":          domain.ErrEmailTaken,
}

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

var (
	_ service.UserRepository       = (*PostgresRepository)(nil)
	_ service.RoleRepository       = (*PostgresRepository)(nil)
	_ service.RestaurantRepository = (*PostgresRepository)(nil)
	_ service.SizeRepository       = (*PostgresRepository)(nil)
	_ service.DishRepository       = (*PostgresRepository)(nil)
	_ service.PriceRepository      = (*PostgresRepository)(nil)
	_ service.OrderRepository      = (*PostgresRepository)(nil)
	_ identity.AccountStore        = (*PostgresRepository)(nil)
)

// withTx runs fn in a transaction and commits when fn returns nil.
func (r *PostgresRepository) withTx(ctx context.Context, op string, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return wrap(op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return wrap(op, err)
	}
	return wrap(op, tx.Commit())
}

// wrap translates driver errors into domain errors. Anything unrecognised becomes a
// CollaboratorError.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		if mapped, ok := constraintErrors[pqErr.Constraint]; ok {
			return mapped
		}
	}
	return domain.Collaborator(op, err)
}

// expectRow turns an update that touched nothing into ErrNotFound.
func expectRow(op string, result sql.Result, err error) error {
	if err != nil {
		return wrap(op, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return wrap(op, err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
