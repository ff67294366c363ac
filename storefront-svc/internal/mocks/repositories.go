package mocks

import (
	"context"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (m *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ret := m.Called(ctx, id)
	return value[*domain.User](ret, 0), ret.Error(1)
}

func (m *UserRepository) UpdateAlexaToken(ctx context.Context, id, token string) error {
	return m.Called(ctx, id, token).Error(0)
}

type RoleRepository struct{ mock.Mock }

func NewRoleRepository(t testingT) *RoleRepository {
	m := &RoleRepository{}
	register(&m.Mock, t)
	return m
}

func (m *RoleRepository) CountUsersByEmail(ctx context.Context, email string, isAdmin bool) (int, error) {
	ret := m.Called(ctx, email, isAdmin)
	return ret.Int(0), ret.Error(1)
}

func (m *RoleRepository) CountRestaurantsByEmail(ctx context.Context, email string) (int, error) {
	ret := m.Called(ctx, email)
	return ret.Int(0), ret.Error(1)
}

type RestaurantRepository struct{ mock.Mock }

func NewRestaurantRepository(t testingT) *RestaurantRepository {
	m := &RestaurantRepository{}
	register(&m.Mock, t)
	return m
}

func (m *RestaurantRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return m.Called(ctx, rest).Error(0)
}

func (m *RestaurantRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *RestaurantRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	ret := m.Called(ctx)
	return value[[]domain.Restaurant](ret, 0), ret.Error(1)
}

func (m *RestaurantRepository) UpdateRestaurantAddress(ctx context.Context, id, address, postalCode, city string) error {
	return m.Called(ctx, id, address, postalCode, city).Error(0)
}

func (m *RestaurantRepository) UpdateRestaurantThumbnail(ctx context.Context, id string, thumbnail domain.Thumbnail) error {
	return m.Called(ctx, id, thumbnail).Error(0)
}

func (m *RestaurantRepository) SetAcceptingOrders(ctx context.Context, id string, accepting bool) error {
	return m.Called(ctx, id, accepting).Error(0)
}

func (m *RestaurantRepository) DeleteRestaurant(ctx context.Context, id string) (int64, error) {
	ret := m.Called(ctx, id)
	return value[int64](ret, 0), ret.Error(1)
}

type SizeRepository struct{ mock.Mock }

func NewSizeRepository(t testingT) *SizeRepository {
	m := &SizeRepository{}
	register(&m.Mock, t)
	return m
}

func (m *SizeRepository) ListSizes(ctx context.Context, restaurantID string) ([]domain.Size, error) {
	ret := m.Called(ctx, restaurantID)
	return value[[]domain.Size](ret, 0), ret.Error(1)
}

func (m *SizeRepository) GetSize(ctx context.Context, id string) (*domain.Size, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Size](ret, 0), ret.Error(1)
}

func (m *SizeRepository) CreateSize(ctx context.Context, size *domain.Size) error {
	return m.Called(ctx, size).Error(0)
}

func (m *SizeRepository) RenameSize(ctx context.Context, id, name string) error {
	return m.Called(ctx, id, name).Error(0)
}

func (m *SizeRepository) DeleteSize(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *SizeRepository) ReorderSizes(ctx context.Context, restaurantID string, orderedIDs []string) error {
	return m.Called(ctx, restaurantID, orderedIDs).Error(0)
}

type DishRepository struct{ mock.Mock }

func NewDishRepository(t testingT) *DishRepository {
	m := &DishRepository{}
	register(&m.Mock, t)
	return m
}

func (m *DishRepository) CreateDish(ctx context.Context, dish *domain.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *DishRepository) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishRepository) ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	ret := m.Called(ctx, restaurantID)
	return value[[]domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishRepository) ListAllDishes(ctx context.Context) ([]domain.Dish, error) {
	ret := m.Called(ctx)
	return value[[]domain.Dish](ret, 0), ret.Error(1)
}

func (m *DishRepository) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *DishRepository) SetDishAvailable(ctx context.Context, id string, available bool) error {
	return m.Called(ctx, id, available).Error(0)
}

func (m *DishRepository) DeleteDishCascade(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type PriceRepository struct{ mock.Mock }

func NewPriceRepository(t testingT) *PriceRepository {
	m := &PriceRepository{}
	register(&m.Mock, t)
	return m
}

func (m *PriceRepository) GetPrice(ctx context.Context, id string) (*domain.Price, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Price](ret, 0), ret.Error(1)
}

func (m *PriceRepository) ListPricesByDish(ctx context.Context, dishID string) ([]domain.Price, error) {
	ret := m.Called(ctx, dishID)
	return value[[]domain.Price](ret, 0), ret.Error(1)
}

func (m *PriceRepository) CreatePrice(ctx context.Context, price *domain.Price) error {
	return m.Called(ctx, price).Error(0)
}

func (m *PriceRepository) UpdatePrice(ctx context.Context, id string, price decimal.Decimal) error {
	return m.Called(ctx, id, price).Error(0)
}

func (m *PriceRepository) DeletePrice(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type OrderRepository struct{ mock.Mock }

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (m *OrderRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderRepository) FindCart(ctx context.Context, userID string) (*domain.Order, error) {
	ret := m.Called(ctx, userID)
	return value[*domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	ret := m.Called(ctx, userID)
	return value[[]domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	ret := m.Called(ctx, restaurantID)
	return value[[]domain.Order](ret, 0), ret.Error(1)
}

func (m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) ReplaceOrder(ctx context.Context, oldID string, order *domain.Order) error {
	return m.Called(ctx, oldID, order).Error(0)
}

func (m *OrderRepository) AppendLineItem(ctx context.Context, orderID string, item domain.LineItem) error {
	return m.Called(ctx, orderID, item).Error(0)
}

func (m *OrderRepository) ReplaceLineItem(ctx context.Context, orderID string, old, next domain.LineItem) error {
	return m.Called(ctx, orderID, old, next).Error(0)
}

func (m *OrderRepository) RemoveLineItem(ctx context.Context, orderID string, item domain.LineItem) (int64, error) {
	ret := m.Called(ctx, orderID, item)
	return value[int64](ret, 0), ret.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus, pickupAt *int64) error {
	return m.Called(ctx, orderID, from, to, pickupAt).Error(0)
}

func (m *OrderRepository) DeleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	ret := m.Called(ctx, id)
	return value[*domain.Order](ret, 0), ret.Error(1)
}
