package identity

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AccountStore interface {
	CreateAccount(ctx context.Context, account *domain.Account, passwordHash string) error
	GetAccountByEmail(ctx context.Context, email string) (*domain.Account, string, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
}

// Denylist records revoked token ids until their natural expiry.
type Denylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Claims struct {
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

// PasswordProvider signs accounts in with email and password and issues HS256 session tokens.
type PasswordProvider struct {
	accounts AccountStore
	denylist Denylist
	secret   []byte
	ttl      time.Duration
	now      func() time.Time

	mu        sync.RWMutex
	listeners []func(ctx context.Context, account *domain.Account)
}

func NewPasswordProvider(accounts AccountStore, denylist Denylist, secret string, ttl time.Duration) *PasswordProvider {
	return &PasswordProvider{
		accounts: accounts,
		denylist: denylist,
		secret:   []byte(secret),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source used for issuing and validating tokens.
func (p *PasswordProvider) WithClock(now func() time.Time) *PasswordProvider {
	p.now = now
	return p
}

func (p *PasswordProvider) OnSessionChange(listener func(ctx context.Context, account *domain.Account)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, listener)
}

func (p *PasswordProvider) SignUp(ctx context.Context, email, password, displayName string) (*domain.Account, error) {
	email = normalizeEmail(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Collaborator("identity.hash", err)
	}
	account := &domain.Account{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: displayName,
	}
	if err := p.accounts.CreateAccount(ctx, account, string(hash)); err != nil {
		return nil, err
	}
	return account, nil
}

func (p *PasswordProvider) SignIn(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, hash, err := p.accounts.GetAccountByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, domain.ErrUnauthorized
	}
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", nil, domain.ErrUnauthorized
	}

	token, err := p.issue(account)
	if err != nil {
		return "", nil, err
	}
	p.notify(ctx, account)
	return token, account, nil
}

// SignOut revokes the token for the rest of its lifetime. Invalid tokens are ignored.
func (p *PasswordProvider) SignOut(ctx context.Context, token string) error {
	claims, err := p.parse(token)
	if err != nil {
		return nil
	}
	remaining := claims.ExpiresAt.Time.Sub(p.now())
	if remaining <= 0 {
		return nil
	}
	if err := p.denylist.Revoke(ctx, claims.ID, remaining); err != nil {
		return domain.Collaborator("identity.revoke", err)
	}
	p.notify(ctx, nil)
	return nil
}

func (p *PasswordProvider) Verify(ctx context.Context, token string) (*domain.Account, error) {
	claims, err := p.parse(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	revoked, err := p.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, domain.Collaborator("identity.revoked", err)
	}
	if revoked {
		return nil, domain.ErrUnauthorized
	}
	return &domain.Account{
		ID:          claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}, nil
}

func (p *PasswordProvider) issue(account *domain.Account) (string, error) {
	now := p.now()
	claims := &Claims{
		Email:       account.Email,
		DisplayName: account.DisplayName,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   account.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", domain.Collaborator("identity.sign", err)
	}
	return token, nil
}

func (p *PasswordProvider) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (p *PasswordProvider) notify(ctx context.Context, account *domain.Account) {
	p.mu.RLock()
	listeners := append([]func(context.Context, *domain.Account){}, p.listeners...)
	p.mu.RUnlock()
	for _, listener := range listeners {
		listener(ctx, account)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
