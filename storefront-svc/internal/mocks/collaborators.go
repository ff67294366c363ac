package mocks

import (
	"context"
	"io"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type CartLocker struct{ mock.Mock }

func NewCartLocker(t testingT) *CartLocker {
	m := &CartLocker{}
	register(&m.Mock, t)
	return m
}

func (m *CartLocker) Acquire(ctx context.Context, userID string) (string, bool, error) {
	ret := m.Called(ctx, userID)
	return ret.String(0), ret.Bool(1), ret.Error(2)
}

func (m *CartLocker) Release(ctx context.Context, userID, token string) error {
	return m.Called(ctx, userID, token).Error(0)
}

type EventPublisher struct{ mock.Mock }

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	register(&m.Mock, t)
	return m
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct{ mock.Mock }

func NewQRGenerator(t testingT) *QRGenerator {
	m := &QRGenerator{}
	register(&m.Mock, t)
	return m
}

func (m *QRGenerator) Generate(orderID string) ([]byte, error) {
	ret := m.Called(orderID)
	return value[[]byte](ret, 0), ret.Error(1)
}

type BlobStore struct{ mock.Mock }

func NewBlobStore(t testingT) *BlobStore {
	m := &BlobStore{}
	register(&m.Mock, t)
	return m
}

func (m *BlobStore) Upload(ctx context.Context, path string, body io.Reader) (domain.Thumbnail, error) {
	ret := m.Called(ctx, path, body)
	return value[domain.Thumbnail](ret, 0), ret.Error(1)
}

func (m *BlobStore) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

type IdentityProvider struct{ mock.Mock }

func NewIdentityProvider(t testingT) *IdentityProvider {
	m := &IdentityProvider{}
	register(&m.Mock, t)
	return m
}

func (m *IdentityProvider) SignUp(ctx context.Context, email, password, displayName string) (*domain.Account, error) {
	ret := m.Called(ctx, email, password, displayName)
	return value[*domain.Account](ret, 0), ret.Error(1)
}

func (m *IdentityProvider) SignIn(ctx context.Context, email, password string) (string, *domain.Account, error) {
	ret := m.Called(ctx, email, password)
	return ret.String(0), value[*domain.Account](ret, 1), ret.Error(2)
}

func (m *IdentityProvider) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *IdentityProvider) Verify(ctx context.Context, token string) (*domain.Account, error) {
	ret := m.Called(ctx, token)
	return value[*domain.Account](ret, 0), ret.Error(1)
}

func (m *IdentityProvider) OnSessionChange(listener func(ctx context.Context, account *domain.Account)) {
	m.Called(listener)
}
