package mocks

import (
	"context"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

type AccountService struct{ mock.Mock }

func NewAccountService(t testingT) *AccountService {
	m := &AccountService{}
	register(&m.Mock, t)
	return m
}

func (m *AccountService) SignUpUser(ctx context.Context, name, email, password string) (*domain.User, error) {
	ret := m.Called(ctx, name, email, password)
	return value[*domain.User](ret, 0), ret.Error(1)
}

func (m *AccountService) SignUpRestaurant(ctx context.Context, signup service.RestaurantSignup, logo *domain.Upload) (*domain.Restaurant, error) {
	ret := m.Called(ctx, signup, logo)
	return value[*domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *AccountService) SignIn(ctx context.Context, email, password string) (string, *domain.Session, error) {
	ret := m.Called(ctx, email, password)
	return ret.String(0), value[*domain.Session](ret, 1), ret.Error(2)
}

func (m *AccountService) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *AccountService) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	ret := m.Called(ctx, token)
	return value[*domain.Session](ret, 0), ret.Error(1)
}

func (m *AccountService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ret := m.Called(ctx, id)
	return value[*domain.User](ret, 0), ret.Error(1)
}

func (m *AccountService) LinkAlexa(ctx context.Context, userID, token string) (*domain.User, error) {
	ret := m.Called(ctx, userID, token)
	return value[*domain.User](ret, 0), ret.Error(1)
}

func (m *AccountService) UnlinkAlexa(ctx context.Context, userID string) (*domain.User, error) {
	ret := m.Called(ctx, userID)
	return value[*domain.User](ret, 0), ret.Error(1)
}

type OrderService struct{ mock.Mock }

func NewOrderService(t testingT) *OrderService {
	m := &OrderService{}
	register(&m.Mock, t)
	return m
}

func (m *OrderService) GetOrCreateCart(ctx context.Context, userID, restaurantID string, item domain.LineItem) (*domain.Order, error) {
	ret := m.Called(ctx, userID, restaurantID, item)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) GetCart(ctx context.Context, userID string) (*domain.Order, error) {
	ret := m.Called(ctx, userID)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) GetUserOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, userID)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) AddLineItem(ctx context.Context, orderID string, item domain.LineItem) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, item)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) EditLineItem(ctx context.Context, orderID string, old domain.LineItem, newAmount int) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, old, newAmount)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) RemoveLineItem(ctx context.Context, orderID string, item domain.LineItem) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, item)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) PlaceOrder(ctx context.Context, orderID, pickupTimeOfDay string) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, pickupTimeOfDay)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) CancelOrder(ctx context.Context, orderID, userID string) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, userID)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	return m.Called(ctx, orderID).Error(0)
}

func (m *OrderService) AcceptOrder(ctx context.Context, orderID, restaurantID string) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, restaurantID)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) DeclineOrder(ctx context.Context, orderID, restaurantID string) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, restaurantID)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) MarkPickedUp(ctx context.Context, orderID, restaurantID string) (*domain.Order, error) {
	ret := m.Called(ctx, orderID, restaurantID)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	ret := m.Called(ctx, userID)
	return value[[]domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) ListRestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	ret := m.Called(ctx, restaurantID)
	return value[[]domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderService) Total(ctx context.Context, order *domain.Order) (domain.OrderTotal, error) {
	ret := m.Called(ctx, order)
	return value[domain.OrderTotal](ret, 0), ret.Error(1)
}

func (m *OrderService) PickupQRCode(ctx context.Context, order *domain.Order) ([]byte, error) {
	ret := m.Called(ctx, order)
	return value[[]byte](ret, 0), ret.Error(1)
}

type PriceService struct{ mock.Mock }

func NewPriceService(t testingT) *PriceService {
	m := &PriceService{}
	register(&m.Mock, t)
	return m
}

func (m *PriceService) ListForDish(ctx context.Context, dishID string) ([]domain.Price, error) {
	ret := m.Called(ctx, dishID)
	return value[[]domain.Price](ret, 0), ret.Error(1)
}

func (m *PriceService) SavePrices(ctx context.Context, restaurantID, dishID string, submitted []domain.SizePrice) ([]domain.Price, error) {
	ret := m.Called(ctx, restaurantID, dishID, submitted)
	return value[[]domain.Price](ret, 0), ret.Error(1)
}

type RestaurantService struct{ mock.Mock }

func NewRestaurantService(t testingT) *RestaurantService {
	m := &RestaurantService{}
	register(&m.Mock, t)
	return m
}

func (m *RestaurantService) List(ctx context.Context) ([]domain.Restaurant, error) {
	ret := m.Called(ctx)
	return value[[]domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *RestaurantService) SetAcceptingOrders(ctx context.Context, id string, accepting bool) (*domain.Restaurant, error) {
	ret := m.Called(ctx, id, accepting)
	return value[*domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *RestaurantService) UpdateAddress(ctx context.Context, id, address, postalCode, city string) (*domain.Restaurant, error) {
	ret := m.Called(ctx, id, address, postalCode, city)
	return value[*domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *RestaurantService) ReplaceLogo(ctx context.Context, id string, logo *domain.Upload) (*domain.Restaurant, error) {
	ret := m.Called(ctx, id, logo)
	return value[*domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *RestaurantService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type SizeService struct{ mock.Mock }

func NewSizeService(t testingT) *SizeService {
	m := &SizeService{}
	register(&m.Mock, t)
	return m
}

func (m *SizeService) List(ctx context.Context, restaurantID string) ([]domain.Size, error) {
	ret := m.Called(ctx, restaurantID)
	return value[[]domain.Size](ret, 0), ret.Error(1)
}

func (m *SizeService) Add(ctx context.Context, restaurantID, name string) (*domain.Size, error) {
	ret := m.Called(ctx, restaurantID, name)
	return value[*domain.Size](ret, 0), ret.Error(1)
}

func (m *SizeService) Rename(ctx context.Context, restaurantID, sizeID, name string) (*domain.Size, error) {
	ret := m.Called(ctx, restaurantID, sizeID, name)
	return value[*domain.Size](ret, 0), ret.Error(1)
}

func (m *SizeService) Delete(ctx context.Context, restaurantID, sizeID string) error {
	return m.Called(ctx, restaurantID, sizeID).Error(0)
}

func (m *SizeService) Reorder(ctx context.Context, restaurantID string, orderedIDs []string) ([]domain.Size, error) {
	ret := m.Called(ctx, restaurantID, orderedIDs)
	return value[[]domain.Size](ret, 0), ret.Error(1)
}

type DishService struct{ mock.Mock }

func NewDishService(t testingT) *DishService {
	m := &DishService{}
	register(&m.Mock, t)
	return m
}

func (m *DishService) List(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	ret := m.Called(ctx, restaurantID)
	return value[[]domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishService) ListAll(ctx context.Context) ([]domain.Dish, error) {
	ret := m.Called(ctx)
	return value[[]domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishService) Get(ctx context.Context, id string) (*domain.Dish, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishService) Create(ctx context.Context, dish *domain.Dish, restaurantName string, thumbnail *domain.Upload) error {
	return m.Called(ctx, dish, restaurantName, thumbnail).Error(0)
}

func (m *DishService) UpdateInfo(ctx context.Context, restaurantID, dishID, name, description, restaurantName string, thumbnail *domain.Upload) (*domain.Dish, error) {
	ret := m.Called(ctx, restaurantID, dishID, name, description, restaurantName, thumbnail)
	return value[*domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishService) SetAvailable(ctx context.Context, restaurantID, dishID string, available bool) (*domain.Dish, error) {
	ret := m.Called(ctx, restaurantID, dishID, available)
	return value[*domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishService) Delete(ctx context.Context, restaurantID, dishID string) error {
	return m.Called(ctx, restaurantID, dishID).Error(0)
}
