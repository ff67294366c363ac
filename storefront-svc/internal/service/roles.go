package service

import (
	"context"
	"strings"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
)

// RoleSnapshot is the outcome of the three role predicates for one email.
type RoleSnapshot struct {
	HasUser       bool
	HasAdmin      bool
	HasRestaurant bool
}

// ResolveRole applies the fixed priority user, admin, restaurant. When a corrupted dataset
// matches several predicates the first one wins.
func ResolveRole(snapshot RoleSnapshot) domain.Role {
	switch {
	case snapshot.HasUser:
		return domain.RoleUser
	case snapshot.HasAdmin:
		return domain.RoleAdmin
	case snapshot.HasRestaurant:
		return domain.RoleRestaurant
	default:
		return domain.RoleLoggedOut
	}
}

// RoleResolver derives the role from the store on every call; nothing is cached.
type RoleResolver struct {
	repo RoleRepository
}

func NewRoleResolver(repo RoleRepository) *RoleResolver {
	return &RoleResolver{repo: repo}
}

func (r *RoleResolver) Snapshot(ctx context.Context, email string) (RoleSnapshot, error) {
	users, err := r.repo.CountUsersByEmail(ctx, email, false)
	if err != nil {
		return RoleSnapshot{}, err
	}
	admins, err := r.repo.CountUsersByEmail(ctx, email, true)
	if err != nil {
		return RoleSnapshot{}, err
	}
	restaurants, err := r.repo.CountRestaurantsByEmail(ctx, email)
	if err != nil {
		return RoleSnapshot{}, err
	}
	return RoleSnapshot{
		HasUser:       users > 0,
		HasAdmin:      admins > 0,
		HasRestaurant: restaurants > 0,
	}, nil
}

func (r *RoleResolver) Resolve(ctx context.Context, email string) (domain.Role, error) {
	if strings.TrimSpace(email) == "" {
		return domain.RoleLoggedOut, nil
	}
	snapshot, err := r.Snapshot(ctx, email)
	if err != nil {
		return domain.RoleLoggedOut, err
	}
	return ResolveRole(snapshot), nil
}
