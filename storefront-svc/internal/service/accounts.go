package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"go.uber.org/zap"
)

type RestaurantSignup struct {
	Name          string `json:"name"`
	CompanyNumber string `json:"companyNumber"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Address       string `json:"address"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
}

type AccountService struct {
	identity    IdentityProvider
	users       UserRepository
	restaurants RestaurantRepository
	roles       *RoleResolver
	blobs       BlobStore
	logger      *zap.Logger
}

func NewAccountService(identity IdentityProvider, users UserRepository, restaurants RestaurantRepository, roles *RoleResolver, blobs BlobStore, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AccountService{
		identity:    identity,
		users:       users,
		restaurants: restaurants,
		roles:       roles,
		blobs:       blobs,
		logger:      logger,
	}
	identity.OnSessionChange(s.sessionChanged)
	return s
}

var _ AccountServiceInterface = (*AccountService)(nil)

func (s *AccountService) SignUpUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	account, err := s.identity.SignUp(ctx, email, password, name)
	if err != nil {
		return nil, err
	}

	user := &domain.User{ID: account.ID, Name: name, Email: account.Email}
	if err := s.users.CreateUser(ctx, user); err != nil {
		s.logger.Error("account created without user document", zap.String("account_id", account.ID), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *AccountService) SignUpRestaurant(ctx context.Context, signup RestaurantSignup, logo *domain.Upload) (*domain.Restaurant, error) {
	if strings.TrimSpace(signup.Name) == "" || strings.TrimSpace(signup.CompanyNumber) == "" {
		return nil, fmt.Errorf("%w: name and company number are required", domain.ErrInvalidInput)
	}
	if logo == nil {
		return nil, fmt.Errorf("%w: a logo is required", domain.ErrInvalidInput)
	}

	account, err := s.identity.SignUp(ctx, signup.Email, signup.Password, signup.Name)
	if err != nil {
		return nil, err
	}

	thumbnail, err := s.blobs.Upload(ctx, BlobPath("restaurants", signup.Name, logo.Filename), logo.Body)
	if err != nil {
		return nil, err
	}

	rest := &domain.Restaurant{
		ID:              account.ID,
		Name:            signup.Name,
		CompanyNumber:   signup.CompanyNumber,
		Email:           account.Email,
		Address:         signup.Address,
		PostalCode:      signup.PostalCode,
		City:            signup.City,
		Thumbnail:       thumbnail,
		AcceptingOrders: false,
	}
	if err := s.restaurants.CreateRestaurant(ctx, rest); err != nil {
		s.logger.Error("account created without restaurant document", zap.String("account_id", account.ID), zap.Error(err))
		return nil, err
	}
	return rest, nil
}

func (s *AccountService) SignIn(ctx context.Context, email, password string) (string, *domain.Session, error) {
	token, account, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	session, err := s.session(ctx, account)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

func (s *AccountService) SignOut(ctx context.Context, token string) error {
	return s.identity.SignOut(ctx, token)
}

// Authenticate verifies the token and resolves the caller's role from scratch.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	account, err := s.identity.Verify(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.session(ctx, account)
}

func (s *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetUser(ctx, id)
}

func (s *AccountService) LinkAlexa(ctx context.Context, userID, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: access token is required", domain.ErrInvalidInput)
	}
	if err := s.users.UpdateAlexaToken(ctx, userID, token); err != nil {
		return nil, err
	}
	return s.users.GetUser(ctx, userID)
}

func (s *AccountService) UnlinkAlexa(ctx context.Context, userID string) (*domain.User, error) {
	if err := s.users.UpdateAlexaToken(ctx, userID, ""); err != nil {
		return nil, err
	}
	return s.users.GetUser(ctx, userID)
}

func (s *AccountService) session(ctx context.Context, account *domain.Account) (*domain.Session, error) {
	role, err := s.roles.Resolve(ctx, account.Email)
	if err != nil {
		return nil, err
	}
	return &domain.Session{
		AccountID:   account.ID,
		Email:       account.Email,
		DisplayName: account.DisplayName,
		Role:        role,
	}, nil
}

func (s *AccountService) sessionChanged(ctx context.Context, account *domain.Account) {
	if account == nil {
		s.logger.Info("session ended")
		return
	}
	role, err := s.roles.Resolve(ctx, account.Email)
	if err != nil {
		s.logger.Warn("role resolution failed", zap.String("account_id", account.ID), zap.Error(err))
		return
	}
	s.logger.Info("session started", zap.String("account_id", account.ID), zap.String("role", string(role)))
}
