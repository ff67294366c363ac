package storage

import (
	"context"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
)

func (r *PostgresRepository) CreateAccount(ctx context.Context, account *domain.Account, passwordHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (id, email, display_name, password_hash) VALUES ($1, $2, $3, $4)",
		account.ID, account.Email, account.DisplayName, passwordHash)
	return wrap("accounts.create", err)
}

func (r *PostgresRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, string, error) {
	var account domain.Account
	var hash string
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, display_name, password_hash FROM accounts WHERE email = $1", email).
		Scan(&account.ID, &account.Email, &account.DisplayName, &hash)
	if err != nil {
		return nil, "", wrap("accounts.get_by_email", err)
	}
	return &account, hash, nil
}

func (r *PostgresRepository) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, display_name FROM accounts WHERE id = $1", id).
		Scan(&account.ID, &account.Email, &account.DisplayName)
	if err != nil {
		return nil, wrap("accounts.get", err)
	}
	return &account, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (id, name, email, linked_alexa_token, is_admin) VALUES ($1, $2, $3, $4, $5)",
		user.ID, user.Name, user.Email, user.LinkedAlexaToken, user.IsAdmin)
	return wrap("users.create", err)
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, COALESCE(linked_alexa_token, ''), is_admin FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.Name, &user.Email, &user.LinkedAlexaToken, &user.IsAdmin)
	if err != nil {
		return nil, wrap("users.get", err)
	}
	return &user, nil
}

func (r *PostgresRepository) UpdateAlexaToken(ctx context.Context, id, token string) error {
	var value interface{}
	if token != "" {
		value = token
	}
	result, err := r.DB.ExecContext(ctx, "UPDATE users SET linked_alexa_token = $1 WHERE id = $2", value, id)
	return expectRow("users.update_alexa_token", result, err)
}

func (r *PostgresRepository) CountUsersByEmail(ctx context.Context, email string, isAdmin bool) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email = $1 AND is_admin = $2", email, isAdmin).Scan(&count)
	if err != nil {
		return 0, wrap("users.count_by_email", err)
	}
	return count, nil
}

func (r *PostgresRepository) CountRestaurantsByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM restaurants WHERE email = $1", email).Scan(&count)
	if err != nil {
		return 0, wrap("restaurants.count_by_email", err)
	}
	return count, nil
}
