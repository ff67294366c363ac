package tests

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/mocks"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 14, 9, 15, 0, 0, time.UTC)

type orderFixture struct {
	repo      *mocks.OrderRepository
	prices    *mocks.PriceRepository
	locker    *mocks.CartLocker
	publisher *mocks.EventPublisher
	qr        *mocks.QRGenerator
	svc       *service.OrderService
}

func newOrderFixture(t *testing.T, opts service.OrderOptions) *orderFixture {
	f := &orderFixture{
		repo:      mocks.NewOrderRepository(t),
		prices:    mocks.NewPriceRepository(t),
		locker:    mocks.NewCartLocker(t),
		publisher: mocks.NewEventPublisher(t),
		qr:        mocks.NewQRGenerator(t),
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	f.svc = service.NewOrderService(f.repo, f.prices, f.locker, f.publisher, f.qr, nil, opts)
	return f
}

func (f *orderFixture) expectLock(userID string) {
	f.locker.On("Acquire", mock.Anything, userID).Return("token-1", true, nil).Once()
	f.locker.On("Release", mock.Anything, userID, "token-1").Return(nil).Once()
}

func (f *orderFixture) expectEvent(eventType domain.OrderEventType, orderID string) {
	f.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
		return e.Type == eventType && e.OrderID == orderID
	})).Return(nil).Once()
}

func cartOf(id, userID, restaurantID string, items ...domain.LineItem) *domain.Order {
	return &domain.Order{
		ID:           id,
		UserID:       userID,
		RestaurantID: restaurantID,
		OrderContent: items,
		Status:       domain.StatusNotYetPlaced,
	}
}

func TestOrderService_GetOrCreateCart(t *testing.T) {
	ctx := context.Background()
	item := domain.LineItem{PriceID: "p1", Amount: 2}

	tests := []struct {
		name          string
		restaurantID  string
		item          domain.LineItem
		prepareMocks  func(f *orderFixture)
		expectedError error
		check         func(t *testing.T, order *domain.Order)
	}{
		{
			name:         "creates_cart_when_none_exists",
			restaurantID: "R1",
			item:         item,
			prepareMocks: func(f *orderFixture) {
				f.expectLock("U")
				f.repo.On("FindCart", ctx, "U").Return(nil, domain.ErrNotFound).Once()
				f.repo.On("CreateOrder", ctx, mock.MatchedBy(func(o *domain.Order) bool {
					return o.UserID == "U" && o.RestaurantID == "R1" && o.Status == domain.StatusNotYetPlaced &&
						len(o.OrderContent) == 1 && o.OrderContent[0] == item && o.ID != ""
				})).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, []domain.LineItem{item}, order.OrderContent)
				assert.Equal(t, domain.StatusNotYetPlaced, order.Status)
			},
		},
		{
			name:         "appends_to_cart_of_same_restaurant",
			restaurantID: "R1",
			item:         domain.LineItem{PriceID: "p2", Amount: 1},
			prepareMocks: func(f *orderFixture) {
				f.expectLock("U")
				f.repo.On("FindCart", ctx, "U").Return(cartOf("O1", "U", "R1", item), nil).Once()
				f.repo.On("AppendLineItem", ctx, "O1", domain.LineItem{PriceID: "p2", Amount: 1}).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "O1", order.ID)
				assert.Equal(t, []domain.LineItem{item, {PriceID: "p2", Amount: 1}}, order.OrderContent)
			},
		},
		{
			name:         "rejects_duplicate_price_in_cart",
			restaurantID: "R1",
			item:         domain.LineItem{PriceID: "p1", Amount: 5},
			prepareMocks: func(f *orderFixture) {
				f.expectLock("U")
				f.repo.On("FindCart", ctx, "U").Return(cartOf("O1", "U", "R1", item), nil).Once()
			},
			expectedError: domain.ErrDuplicateLineItem,
		},
		{
			name:         "replaces_cart_of_other_restaurant",
			restaurantID: "R2",
			item:         domain.LineItem{PriceID: "q1", Amount: 1},
			prepareMocks: func(f *orderFixture) {
				f.expectLock("U")
				f.repo.On("FindCart", ctx, "U").Return(cartOf("O1", "U", "R1", item), nil).Once()
				f.repo.On("ReplaceOrder", ctx, "O1", mock.MatchedBy(func(o *domain.Order) bool {
					return o.RestaurantID == "R2" && o.ID != "O1" && len(o.OrderContent) == 1
				})).Return(nil).Once()
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, "R2", order.RestaurantID)
				assert.NotEqual(t, "O1", order.ID)
				assert.Equal(t, []domain.LineItem{{PriceID: "q1", Amount: 1}}, order.OrderContent)
			},
		},
		{
			name:         "concurrent_cart_update_is_busy",
			restaurantID: "R1",
			item:         item,
			prepareMocks: func(f *orderFixture) {
				f.locker.On("Acquire", mock.Anything, "U").Return("", false, nil).Once()
			},
			expectedError: domain.ErrCartBusy,
		},
		{
			name:          "rejects_zero_amount",
			restaurantID:  "R1",
			item:          domain.LineItem{PriceID: "p1", Amount: 0},
			prepareMocks:  func(f *orderFixture) {},
			expectedError: domain.ErrInvalidInput,
		},
		{
			name:         "store_failure_is_surfaced",
			restaurantID: "R1",
			item:         item,
			prepareMocks: func(f *orderFixture) {
				f.expectLock("U")
				f.repo.On("FindCart", ctx, "U").Return(nil, &domain.CollaboratorError{Op: "orders.find_cart", Err: errors.New("down")}).Once()
			},
			expectedError: &domain.CollaboratorError{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newOrderFixture(t, service.OrderOptions{})
			testCase.prepareMocks(f)

			order, err := f.svc.GetOrCreateCart(ctx, "U", testCase.restaurantID, testCase.item)
			if testCase.expectedError != nil {
				var collab *domain.CollaboratorError
				if errors.As(testCase.expectedError, &collab) {
					assert.ErrorAs(t, err, &collab)
				} else {
					assert.ErrorIs(t, err, testCase.expectedError)
				}
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			testCase.check(t, order)
		})
	}
}

func TestOrderService_EditLineItem(t *testing.T) {
	ctx := context.Background()
	old := domain.LineItem{PriceID: "p1", Amount: 2}
	other := domain.LineItem{PriceID: "p2", Amount: 1}

	t.Run("swaps_item_in_one_write", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(cartOf("O1", "U", "R1", old, other), nil).Once()
		f.repo.On("ReplaceLineItem", ctx, "O1", old, domain.LineItem{PriceID: "p1", Amount: 3}).Return(nil).Once()

		order, err := f.svc.EditLineItem(ctx, "O1", old, 3)
		require.NoError(t, err)
		assert.Equal(t, []domain.LineItem{other, {PriceID: "p1", Amount: 3}}, order.OrderContent)
	})

	t.Run("unknown_item_is_not_found", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(cartOf("O1", "U", "R1", other), nil).Once()

		_, err := f.svc.EditLineItem(ctx, "O1", old, 3)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("awaiting_order_is_not_editable", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		order := cartOf("O1", "U", "R1", old)
		order.Status = domain.StatusAwaitingAcceptance
		f.repo.On("GetOrder", ctx, "O1").Return(order, nil).Once()

		_, err := f.svc.EditLineItem(ctx, "O1", old, 3)
		assert.ErrorIs(t, err, domain.ErrOrderNotEditable)
	})

	t.Run("declined_order_is_editable", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		order := cartOf("O1", "U", "R1", old)
		order.Status = domain.StatusDeclined
		f.repo.On("GetOrder", ctx, "O1").Return(order, nil).Once()
		f.repo.On("ReplaceLineItem", ctx, "O1", old, domain.LineItem{PriceID: "p1", Amount: 1}).Return(nil).Once()

		_, err := f.svc.EditLineItem(ctx, "O1", old, 1)
		assert.NoError(t, err)
	})
}

func TestOrderService_AddAndRemoveLineItem(t *testing.T) {
	ctx := context.Background()
	item := domain.LineItem{PriceID: "p1", Amount: 2}

	t.Run("add_rejects_duplicate_price", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(cartOf("O1", "U", "R1", item), nil).Once()

		_, err := f.svc.AddLineItem(ctx, "O1", domain.LineItem{PriceID: "p1", Amount: 1})
		assert.ErrorIs(t, err, domain.ErrDuplicateLineItem)
	})

	t.Run("remove_deletes_exact_item", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(cartOf("O1", "U", "R1", item), nil).Once()
		f.repo.On("RemoveLineItem", ctx, "O1", item).Return(int64(1), nil).Once()

		order, err := f.svc.RemoveLineItem(ctx, "O1", item)
		require.NoError(t, err)
		assert.Empty(t, order.OrderContent)
	})

	t.Run("remove_with_stale_amount_is_not_found", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		stale := domain.LineItem{PriceID: "p1", Amount: 7}
		f.repo.On("GetOrder", ctx, "O1").Return(cartOf("O1", "U", "R1", item), nil).Once()
		f.repo.On("RemoveLineItem", ctx, "O1", stale).Return(int64(0), nil).Once()

		_, err := f.svc.RemoveLineItem(ctx, "O1", stale)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrderService_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	expected := time.Date(2024, time.March, 14, 18, 30, 0, 0, time.UTC).UnixMilli()

	t.Run("sets_pickup_today_and_awaits_acceptance", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(cartOf("O1", "U", "R1", domain.LineItem{PriceID: "p1", Amount: 1}), nil).Once()
		f.repo.On("UpdateStatus", ctx, "O1", domain.StatusNotYetPlaced, domain.StatusAwaitingAcceptance, mock.MatchedBy(func(p *int64) bool {
			return p != nil && *p == expected
		})).Return(nil).Once()
		f.expectEvent(domain.EventOrderPlaced, "O1")

		order, err := f.svc.PlaceOrder(ctx, "O1", "18:30")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAwaitingAcceptance, order.Status)
		assert.Equal(t, expected, order.PickupAt)
	})

	t.Run("uses_configured_time_zone", func(t *testing.T) {
		brussels := time.FixedZone("CET", 3600)
		f := newOrderFixture(t, service.OrderOptions{Location: brussels})

		millis, err := f.svc.PickupMillis("18:30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 14, 17, 30, 0, 0, time.UTC).UnixMilli(), millis)
	})

	t.Run("rejects_malformed_time", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})

		_, err := f.svc.PlaceOrder(ctx, "O1", "25:99")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("accepted_order_cannot_be_placed_again", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		order := cartOf("O1", "U", "R1")
		order.Status = domain.StatusAccepted
		f.repo.On("GetOrder", ctx, "O1").Return(order, nil).Once()

		_, err := f.svc.PlaceOrder(ctx, "O1", "18:30")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("publish_failure_does_not_fail_the_order", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(cartOf("O1", "U", "R1"), nil).Once()
		f.repo.On("UpdateStatus", ctx, "O1", domain.StatusNotYetPlaced, domain.StatusAwaitingAcceptance, mock.Anything).Return(nil).Once()
		f.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		_, err := f.svc.PlaceOrder(ctx, "O1", "12:00")
		assert.NoError(t, err)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	awaiting := func() *domain.Order {
		order := cartOf("O1", "U", "R1", domain.LineItem{PriceID: "p1", Amount: 1})
		order.Status = domain.StatusAwaitingAcceptance
		order.PickupAt = 1710441000000
		return order
	}

	t.Run("returns_order_to_cart_keeping_pickup", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()
		f.expectLock("U")
		f.repo.On("FindCart", ctx, "U").Return(nil, domain.ErrNotFound).Once()
		f.repo.On("UpdateStatus", ctx, "O1", domain.StatusAwaitingAcceptance, domain.StatusNotYetPlaced, (*int64)(nil)).Return(nil).Once()
		f.expectEvent(domain.EventOrderCancelled, "O1")

		order, err := f.svc.CancelOrder(ctx, "O1", "U")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusNotYetPlaced, order.Status)
		assert.Equal(t, int64(1710441000000), order.PickupAt)
	})

	t.Run("resets_pickup_when_configured", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{ResetPickupOnCancel: true})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()
		f.expectLock("U")
		f.repo.On("FindCart", ctx, "U").Return(nil, domain.ErrNotFound).Once()
		f.repo.On("UpdateStatus", ctx, "O1", domain.StatusAwaitingAcceptance, domain.StatusNotYetPlaced, mock.MatchedBy(func(p *int64) bool {
			return p != nil && *p == 0
		})).Return(nil).Once()
		f.expectEvent(domain.EventOrderCancelled, "O1")

		order, err := f.svc.CancelOrder(ctx, "O1", "U")
		require.NoError(t, err)
		assert.Zero(t, order.PickupAt)
	})

	t.Run("conflicts_with_existing_cart", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()
		f.expectLock("U")
		f.repo.On("FindCart", ctx, "U").Return(cartOf("O2", "U", "R3"), nil).Once()

		_, err := f.svc.CancelOrder(ctx, "O1", "U")
		assert.ErrorIs(t, err, domain.ErrConflictingCart)
	})

	t.Run("accepted_order_cannot_be_cancelled", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		order := awaiting()
		order.Status = domain.StatusAccepted
		f.repo.On("GetOrder", ctx, "O1").Return(order, nil).Once()

		_, err := f.svc.CancelOrder(ctx, "O1", "U")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("other_users_order_is_hidden", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()

		_, err := f.svc.CancelOrder(ctx, "O1", "someone-else")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestOrderService_RestaurantTransitions(t *testing.T) {
	ctx := context.Background()
	awaiting := func() *domain.Order {
		order := cartOf("O1", "U", "R1")
		order.Status = domain.StatusAwaitingAcceptance
		return order
	}

	t.Run("accept", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()
		f.repo.On("UpdateStatus", ctx, "O1", domain.StatusAwaitingAcceptance, domain.StatusAccepted, (*int64)(nil)).Return(nil).Once()
		f.expectEvent(domain.EventOrderAccepted, "O1")

		order, err := f.svc.AcceptOrder(ctx, "O1", "R1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, order.Status)
	})

	t.Run("decline", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()
		f.repo.On("UpdateStatus", ctx, "O1", domain.StatusAwaitingAcceptance, domain.StatusDeclined, (*int64)(nil)).Return(nil).Once()
		f.expectEvent(domain.EventOrderDeclined, "O1")

		order, err := f.svc.DeclineOrder(ctx, "O1", "R1")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDeclined, order.Status)
	})

	t.Run("pickup_requires_acceptance", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()

		_, err := f.svc.MarkPickedUp(ctx, "O1", "R1")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("other_restaurant_is_hidden", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()

		_, err := f.svc.AcceptOrder(ctx, "O1", "R9")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("status_changed_after_read", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("GetOrder", ctx, "O1").Return(awaiting(), nil).Once()
		f.repo.On("UpdateStatus", ctx, "O1", domain.StatusAwaitingAcceptance, domain.StatusAccepted, (*int64)(nil)).
			Return(domain.ErrInvalidTransition).Once()

		_, err := f.svc.AcceptOrder(ctx, "O1", "R1")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		f.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
	})
}

// barrierStore lets every GetOrder caller read before any of them writes.
type barrierStore struct {
	*memoryStore
	readers sync.WaitGroup
}

func (b *barrierStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := b.memoryStore.GetOrder(ctx, id)
	b.readers.Done()
	b.readers.Wait()
	return order, err
}

func TestOrderService_ConcurrentAcceptAndCancel(t *testing.T) {
	ctx := context.Background()
	store := &barrierStore{memoryStore: newMemoryStore()}
	order := cartOf("O1", "U", "R1", domain.LineItem{PriceID: "p1", Amount: 1})
	order.Status = domain.StatusAwaitingAcceptance
	require.NoError(t, store.CreateOrder(ctx, order))

	svc := service.NewOrderService(store, store, nil, nil, nil, nil, service.OrderOptions{Location: time.UTC})

	store.readers.Add(2)
	var (
		wg                   sync.WaitGroup
		acceptErr, cancelErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, acceptErr = svc.AcceptOrder(ctx, "O1", "R1")
	}()
	go func() {
		defer wg.Done()
		_, cancelErr = svc.CancelOrder(ctx, "O1", "U")
	}()
	wg.Wait()

	stored, err := store.memoryStore.GetOrder(ctx, "O1")
	require.NoError(t, err)

	switch {
	case acceptErr == nil:
		assert.ErrorIs(t, cancelErr, domain.ErrInvalidTransition)
		assert.Equal(t, domain.StatusAccepted, stored.Status)
	case cancelErr == nil:
		assert.ErrorIs(t, acceptErr, domain.ErrInvalidTransition)
		assert.Equal(t, domain.StatusNotYetPlaced, stored.Status)
	default:
		t.Fatalf("both transitions failed: accept=%v cancel=%v", acceptErr, cancelErr)
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting_cart_publishes_nothing", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("DeleteOrder", ctx, "O1").Return(cartOf("O1", "U", "R1"), nil).Once()

		assert.NoError(t, f.svc.DeleteOrder(ctx, "O1"))
	})

	t.Run("deleting_placed_order_is_published", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		order := cartOf("O1", "U", "R1")
		order.Status = domain.StatusPickedUp
		f.repo.On("DeleteOrder", ctx, "O1").Return(order, nil).Once()
		f.expectEvent(domain.EventOrderDeleted, "O1")

		assert.NoError(t, f.svc.DeleteOrder(ctx, "O1"))
	})

	t.Run("missing_order", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		f.repo.On("DeleteOrder", ctx, "O1").Return(nil, domain.ErrNotFound).Once()

		assert.ErrorIs(t, f.svc.DeleteOrder(ctx, "O1"), domain.ErrNotFound)
	})
}

func TestOrderService_Total(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t, service.OrderOptions{})

	order := cartOf("O1", "U", "R1",
		domain.LineItem{PriceID: "p1", Amount: 2},
		domain.LineItem{PriceID: "p2", Amount: 1},
		domain.LineItem{PriceID: "gone", Amount: 4},
	)
	f.prices.On("GetPrice", ctx, "p1").Return(&domain.Price{ID: "p1", Price: decimal.RequireFromString("4.50")}, nil).Once()
	f.prices.On("GetPrice", ctx, "p2").Return(&domain.Price{ID: "p2", Price: decimal.RequireFromString("3.10")}, nil).Once()
	f.prices.On("GetPrice", ctx, "gone").Return(nil, domain.ErrNotFound).Once()

	total, err := f.svc.Total(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, "12.10", total.Total.StringFixed(2))
	assert.Equal(t, []string{"gone"}, total.MissingPrices)
}

func TestOrderService_ListRestaurantOrders(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t, service.OrderOptions{})

	placed := *cartOf("O2", "U2", "R1")
	placed.Status = domain.StatusAwaitingAcceptance
	f.repo.On("ListOrdersByRestaurant", ctx, "R1").Return([]domain.Order{*cartOf("O1", "U", "R1"), placed}, nil).Once()

	orders, err := f.svc.ListRestaurantOrders(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, []domain.Order{placed}, orders)
}

func TestOrderService_PickupQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("cart_has_no_qr_code", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})

		_, err := f.svc.PickupQRCode(ctx, cartOf("O1", "U", "R1"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("placed_order_is_encoded", func(t *testing.T) {
		f := newOrderFixture(t, service.OrderOptions{})
		order := cartOf("O1", "U", "R1")
		order.Status = domain.StatusAccepted
		f.qr.On("Generate", "O1").Return([]byte("png"), nil).Once()

		png, err := f.svc.PickupQRCode(ctx, order)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})
}
