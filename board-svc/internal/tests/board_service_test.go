package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/GlennDumoulin/food-orders/board-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/board-svc/internal/mocks"
	"github.com/GlennDumoulin/food-orders/board-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBoardService_Board(t *testing.T) {
	type testCase struct {
		name        string
		restaurant  string
		setupMocks  func(*mocks.TokenVerifier, *mocks.StoreInterface)
		wantEntries int
		wantErr     error
	}

	tests := []testCase{
		{
			name:       "restaurant reads its own board",
			restaurant: "r1",
			setupMocks: func(sessions *mocks.TokenVerifier, store *mocks.StoreInterface) {
				sessions.On("Verify", mock.Anything, "tok").Return("r1", nil)
				store.On("List", mock.Anything, "r1").Return([]domain.BoardEntry{{OrderID: "o1"}, {OrderID: "o2"}}, nil)
			},
			wantEntries: 2,
		},
		{
			name:       "another account is forbidden",
			restaurant: "r1",
			setupMocks: func(sessions *mocks.TokenVerifier, store *mocks.StoreInterface) {
				sessions.On("Verify", mock.Anything, "tok").Return("u1", nil)
			},
			wantErr: domain.ErrForbidden,
		},
		{
			name:       "invalid session",
			restaurant: "r1",
			setupMocks: func(sessions *mocks.TokenVerifier, store *mocks.StoreInterface) {
				sessions.On("Verify", mock.Anything, "tok").Return("", domain.ErrUnauthorized)
			},
			wantErr: domain.ErrUnauthorized,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sessions := mocks.NewTokenVerifier(t)
			store := mocks.NewStoreInterface(t)
			testCase.setupMocks(sessions, store)

			entries, err := service.NewBoardService(store, sessions).Board(context.Background(), "tok", testCase.restaurant)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, entries, testCase.wantEntries)
		})
	}
}

func TestBoardService_StoreFailure(t *testing.T) {
	sessions := mocks.NewTokenVerifier(t)
	sessions.On("Verify", mock.Anything, "tok").Return("r1", nil)
	store := mocks.NewStoreInterface(t)
	store.On("List", mock.Anything, "r1").Return(nil, errors.New("redis down"))

	_, err := service.NewBoardService(store, sessions).Board(context.Background(), "tok", "r1")

	assert.EqualError(t, err, "redis down")
}
