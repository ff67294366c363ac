package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const pickupLayout = "15:04"

type OrderOptions struct {
	// Location is the time zone "today" is evaluated in when placing an order.
	Location *time.Location
	// ResetPickupOnCancel clears pickupAt when an order is cancelled back to a cart.
	ResetPickupOnCancel bool
	Now                 Clock
}

type OrderService struct {
	repo      OrderRepository
	prices    PriceLookup
	locker    CartLocker
	publisher EventPublisher
	qrEncoder QRGenerator
	logger    *zap.Logger
	opts      OrderOptions
}

func NewOrderService(repo OrderRepository, prices PriceLookup, locker CartLocker, publisher EventPublisher, qr QRGenerator, logger *zap.Logger, opts OrderOptions) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &OrderService{
		repo:      repo,
		prices:    prices,
		locker:    locker,
		publisher: publisher,
		qrEncoder: qr,
		logger:    logger,
		opts:      opts,
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)

// GetOrCreateCart adds item to the user's cart, creating the cart when there is none.
// A cart for another restaurant is deleted and replaced; the caller must have warned the user.
func (s *OrderService) GetOrCreateCart(ctx context.Context, userID, restaurantID string, item domain.LineItem) (*domain.Order, error) {
	if userID == "" || restaurantID == "" {
		return nil, fmt.Errorf("%w: user and restaurant are required", domain.ErrInvalidInput)
	}
	if err := validateLineItem(item); err != nil {
		return nil, err
	}

	release, err := s.lockCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	cart, err := s.repo.FindCart(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		order := newCart(userID, restaurantID, item)
		if err := s.repo.CreateOrder(ctx, order); err != nil {
			return nil, err
		}
		s.logger.Info("cart created",
			zap.String("order_id", order.ID),
			zap.String("user_id", userID),
			zap.String("restaurant_id", restaurantID))
		return order, nil
	}
	if err != nil {
		return nil, err
	}

	if cart.RestaurantID == restaurantID {
		if cart.HasPrice(item.PriceID) {
			return nil, domain.ErrDuplicateLineItem
		}
		if err := s.repo.AppendLineItem(ctx, cart.ID, item); err != nil {
			return nil, err
		}
		cart.OrderContent = append(cart.OrderContent, item)
		return cart, nil
	}

	order := newCart(userID, restaurantID, item)
	if err := s.repo.ReplaceOrder(ctx, cart.ID, order); err != nil {
		return nil, err
	}
	s.logger.Info("cart replaced for another restaurant",
		zap.String("old_order_id", cart.ID),
		zap.String("old_restaurant_id", cart.RestaurantID),
		zap.String("order_id", order.ID),
		zap.String("restaurant_id", restaurantID))
	return order, nil
}

func (s *OrderService) GetCart(ctx context.Context, userID string) (*domain.Order, error) {
	return s.repo.FindCart(ctx, userID)
}

// GetUserOrder hides orders of other users behind ErrNotFound.
func (s *OrderService) GetUserOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) AddLineItem(ctx context.Context, orderID string, item domain.LineItem) (*domain.Order, error) {
	if err := validateLineItem(item); err != nil {
		return nil, err
	}
	order, err := s.editableOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.HasPrice(item.PriceID) {
		return nil, domain.ErrDuplicateLineItem
	}
	if err := s.repo.AppendLineItem(ctx, orderID, item); err != nil {
		return nil, err
	}
	order.OrderContent = append(order.OrderContent, item)
	return order, nil
}

// EditLineItem swaps old for the same price with newAmount in a single write.
func (s *OrderService) EditLineItem(ctx context.Context, orderID string, old domain.LineItem, newAmount int) (*domain.Order, error) {
	next := domain.LineItem{PriceID: old.PriceID, Amount: newAmount}
	if err := validateLineItem(next); err != nil {
		return nil, err
	}
	order, err := s.editableOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.HasItem(old) {
		return nil, fmt.Errorf("line item %s x%d: %w", old.PriceID, old.Amount, domain.ErrNotFound)
	}
	if err := s.repo.ReplaceLineItem(ctx, orderID, old, next); err != nil {
		return nil, err
	}

	content := make([]domain.LineItem, 0, len(order.OrderContent))
	for _, item := range order.OrderContent {
		if item != old {
			content = append(content, item)
		}
	}
	order.OrderContent = append(content, next)
	return order, nil
}

func (s *OrderService) RemoveLineItem(ctx context.Context, orderID string, item domain.LineItem) (*domain.Order, error) {
	order, err := s.editableOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	removed, err := s.repo.RemoveLineItem(ctx, orderID, item)
	if err != nil {
		return nil, err
	}
	if removed == 0 {
		return nil, fmt.Errorf("line item %s x%d: %w", item.PriceID, item.Amount, domain.ErrNotFound)
	}

	content := make([]domain.LineItem, 0, len(order.OrderContent))
	for _, existing := range order.OrderContent {
		if existing != item {
			content = append(content, existing)
		}
	}
	order.OrderContent = content
	return order, nil
}

// PlaceOrder sets the pickup moment to today at pickupTimeOfDay ("HH:MM") and submits the order.
// Whether the restaurant accepts orders and whether the time lies in the future is not checked.
func (s *OrderService) PlaceOrder(ctx context.Context, orderID, pickupTimeOfDay string) (*domain.Order, error) {
	pickupAt, err := s.PickupMillis(pickupTimeOfDay)
	if err != nil {
		return nil, err
	}
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.transition(ctx, order, domain.StatusAwaitingAcceptance, &pickupAt, domain.EventOrderPlaced); err != nil {
		return nil, err
	}
	return order, nil
}

// PickupMillis combines today's date with a "HH:MM" time of day into epoch milliseconds.
func (s *OrderService) PickupMillis(pickupTimeOfDay string) (int64, error) {
	tod, err := time.Parse(pickupLayout, pickupTimeOfDay)
	if err != nil {
		return 0, fmt.Errorf("%w: pickup time %q must be HH:MM", domain.ErrInvalidInput, pickupTimeOfDay)
	}
	now := s.opts.Now().In(s.opts.Location)
	pickup := time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, s.opts.Location)
	return pickup.UnixMilli(), nil
}

// CancelOrder moves a submitted order back to the cart, unless the user already has another cart.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	order, err := s.GetUserOrder(ctx, orderID, userID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(domain.StatusNotYetPlaced) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, domain.StatusNotYetPlaced)
	}

	release, err := s.lockCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer release()

	cart, err := s.repo.FindCart(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if cart != nil && cart.ID != order.ID {
		return nil, domain.ErrConflictingCart
	}

	var pickupAt *int64
	if s.opts.ResetPickupOnCancel {
		unset := int64(0)
		pickupAt = &unset
	}
	if err := s.transition(ctx, order, domain.StatusNotYetPlaced, pickupAt, domain.EventOrderCancelled); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := s.repo.DeleteOrder(ctx, orderID)
	if err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.String("order_id", orderID), zap.String("status", string(order.Status)))
	if order.Status != domain.StatusNotYetPlaced {
		s.publish(ctx, domain.EventOrderDeleted, order)
	}
	return nil
}

func (s *OrderService) AcceptOrder(ctx context.Context, orderID, restaurantID string) (*domain.Order, error) {
	return s.restaurantTransition(ctx, orderID, restaurantID, domain.StatusAccepted, domain.EventOrderAccepted)
}

func (s *OrderService) DeclineOrder(ctx context.Context, orderID, restaurantID string) (*domain.Order, error) {
	return s.restaurantTransition(ctx, orderID, restaurantID, domain.StatusDeclined, domain.EventOrderDeclined)
}

func (s *OrderService) MarkPickedUp(ctx context.Context, orderID, restaurantID string) (*domain.Order, error) {
	return s.restaurantTransition(ctx, orderID, restaurantID, domain.StatusPickedUp, domain.EventOrderPickedUp)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

// ListRestaurantOrders leaves out carts, which the restaurant cannot see yet.
func (s *OrderService) ListRestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	orders, err := s.repo.ListOrdersByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	visible := make([]domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status != domain.StatusNotYetPlaced {
			visible = append(visible, order)
		}
	}
	return visible, nil
}

func (s *OrderService) Total(ctx context.Context, order *domain.Order) (domain.OrderTotal, error) {
	return ComputeTotal(ctx, order, s.prices, s.logger)
}

func (s *OrderService) PickupQRCode(ctx context.Context, order *domain.Order) ([]byte, error) {
	if order.Status == domain.StatusNotYetPlaced {
		return nil, fmt.Errorf("%w: order has not been placed", domain.ErrInvalidInput)
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("%w: qr codes are disabled", domain.ErrNotFound)
	}
	return s.qrEncoder.Generate(order.ID)
}

// ComputeTotal sums price x amount over the order content. A price that no longer exists
// counts as zero and is reported in MissingPrices.
func ComputeTotal(ctx context.Context, order *domain.Order, lookup PriceLookup, logger *zap.Logger) (domain.OrderTotal, error) {
	total := domain.OrderTotal{Total: decimal.Zero}
	for _, item := range order.OrderContent {
		price, err := lookup.GetPrice(ctx, item.PriceID)
		if errors.Is(err, domain.ErrNotFound) {
			total.MissingPrices = append(total.MissingPrices, item.PriceID)
			if logger != nil {
				logger.Warn("order references a missing price",
					zap.String("order_id", order.ID),
					zap.String("price_id", item.PriceID))
			}
			continue
		}
		if err != nil {
			return domain.OrderTotal{}, err
		}
		total.Total = total.Total.Add(price.Price.Mul(decimal.NewFromInt(int64(item.Amount))))
	}
	total.Total = total.Total.Round(2)
	return total, nil
}

func (s *OrderService) restaurantTransition(ctx context.Context, orderID, restaurantID string, next domain.OrderStatus, event domain.OrderEventType) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RestaurantID != restaurantID {
		return nil, domain.ErrNotFound
	}
	if err := s.transition(ctx, order, next, nil, event); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) transition(ctx context.Context, order *domain.Order, next domain.OrderStatus, pickupAt *int64, event domain.OrderEventType) error {
	if !order.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, order.Status, next)
	}
	if err := s.repo.UpdateStatus(ctx, order.ID, order.Status, next, pickupAt); err != nil {
		return err
	}

	previous := order.Status
	order.Status = next
	if pickupAt != nil {
		order.PickupAt = *pickupAt
	}
	s.logger.Info("order status changed",
		zap.String("order_id", order.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(next)))
	s.publish(ctx, event, order)
	return nil
}

func (s *OrderService) publish(ctx context.Context, eventType domain.OrderEventType, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.NewOrderEvent(eventType, order, s.opts.Now())
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish order event",
			zap.String("type", string(eventType)),
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}

func (s *OrderService) editableOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.Editable() {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrOrderNotEditable, order.Status)
	}
	return order, nil
}

func (s *OrderService) lockCart(ctx context.Context, userID string) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}
	token, ok, err := s.locker.Acquire(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrCartBusy
	}
	return func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), userID, token); err != nil {
			s.logger.Warn("failed to release cart lock", zap.String("user_id", userID), zap.Error(err))
		}
	}, nil
}

func newCart(userID, restaurantID string, item domain.LineItem) *domain.Order {
	return &domain.Order{
		ID:           uuid.NewString(),
		UserID:       userID,
		RestaurantID: restaurantID,
		OrderContent: []domain.LineItem{item},
		Status:       domain.StatusNotYetPlaced,
	}
}

func validateLineItem(item domain.LineItem) error {
	if item.PriceID == "" {
		return fmt.Errorf("%w: priceId is required", domain.ErrInvalidInput)
	}
	if item.Amount <= 0 {
		return fmt.Errorf("%w: amount must be at least 1", domain.ErrInvalidInput)
	}
	return nil
}
