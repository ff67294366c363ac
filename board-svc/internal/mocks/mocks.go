package mocks

import (
	"context"

	"github.com/GlennDumoulin/food-orders/board-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

type StoreInterface struct{ mock.Mock }

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	register(&m.Mock, t)
	return m
}

func (m *StoreInterface) Upsert(ctx context.Context, entry domain.BoardEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *StoreInterface) Remove(ctx context.Context, restaurantID, orderID string) error {
	return m.Called(ctx, restaurantID, orderID).Error(0)
}

func (m *StoreInterface) List(ctx context.Context, restaurantID string) ([]domain.BoardEntry, error) {
	ret := m.Called(ctx, restaurantID)
	entries, _ := ret.Get(0).([]domain.BoardEntry)
	return entries, ret.Error(1)
}

type MessageReader struct{ mock.Mock }

func NewMessageReader(t testingT) *MessageReader {
	m := &MessageReader{}
	register(&m.Mock, t)
	return m
}

func (m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := m.Called(ctx)
	return ret.Get(0).(kafka.Message), ret.Error(1)
}

type TokenVerifier struct{ mock.Mock }

func NewTokenVerifier(t testingT) *TokenVerifier {
	m := &TokenVerifier{}
	register(&m.Mock, t)
	return m
}

func (m *TokenVerifier) Verify(ctx context.Context, token string) (string, error) {
	ret := m.Called(ctx, token)
	return ret.String(0), ret.Error(1)
}

type BoardService struct{ mock.Mock }

func NewBoardService(t testingT) *BoardService {
	m := &BoardService{}
	register(&m.Mock, t)
	return m
}

func (m *BoardService) Board(ctx context.Context, token, restaurantID string) ([]domain.BoardEntry, error) {
	ret := m.Called(ctx, token, restaurantID)
	entries, _ := ret.Get(0).([]domain.BoardEntry)
	return entries, ret.Error(1)
}
