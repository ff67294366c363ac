package tests

import (
	"context"
	"sort"
	"sync"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memoryStore keeps orders and the menu in maps and enforces the same uniqueness rules as
// the Postgres schema.
type memoryStore struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
	prices map[string]domain.Price
	sizes  map[string]domain.Size
	dishes map[string]domain.Dish

	priceWrites int
}

var (
	_ service.OrderRepository = (*memoryStore)(nil)
	_ service.PriceRepository = (*memoryStore)(nil)
	_ service.SizeRepository  = (*memoryStore)(nil)
	_ service.DishRepository  = (*memoryStore)(nil)
)

func newMemoryStore() *memoryStore {
	return &memoryStore{
		orders: map[string]*domain.Order{},
		prices: map[string]domain.Price{},
		sizes:  map[string]domain.Size{},
		dishes: map[string]domain.Dish{},
	}
}

func copyOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.OrderContent = append([]domain.LineItem{}, order.OrderContent...)
	return &clone
}

func (m *memoryStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyOrder(order), nil
}

func (m *memoryStore) FindCart(ctx context.Context, userID string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cart := m.cartOf(userID); cart != nil {
		return copyOrder(cart), nil
	}
	return nil, domain.ErrNotFound
}

func (m *memoryStore) cartOf(userID string) *domain.Order {
	for _, order := range m.orders {
		if order.UserID == userID && order.Status == domain.StatusNotYetPlaced {
			return order
		}
	}
	return nil
}

func (m *memoryStore) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return m.filterOrders(func(o *domain.Order) bool { return o.UserID == userID }), nil
}

func (m *memoryStore) ListOrdersByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error) {
	return m.filterOrders(func(o *domain.Order) bool { return o.RestaurantID == restaurantID }), nil
}

func (m *memoryStore) filterOrders(keep func(*domain.Order) bool) []domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := []domain.Order{}
	for _, order := range m.orders {
		if keep(order) {
			orders = append(orders, *copyOrder(order))
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].PickupAt < orders[j].PickupAt })
	return orders
}

func (m *memoryStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.Status == domain.StatusNotYetPlaced && m.cartOf(order.UserID) != nil {
		return domain.ErrConflictingCart
	}
	m.orders[order.ID] = copyOrder(order)
	return nil
}

func (m *memoryStore) ReplaceOrder(ctx context.Context, oldID string, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[oldID]; !ok {
		return domain.ErrNotFound
	}
	delete(m.orders, oldID)
	m.orders[order.ID] = copyOrder(order)
	return nil
}

func (m *memoryStore) AppendLineItem(ctx context.Context, orderID string, item domain.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.HasPrice(item.PriceID) {
		return domain.ErrDuplicateLineItem
	}
	order.OrderContent = append(order.OrderContent, item)
	return nil
}

func (m *memoryStore) ReplaceLineItem(ctx context.Context, orderID string, old, next domain.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok || !removeItem(order, old) {
		return domain.ErrNotFound
	}
	order.OrderContent = append(order.OrderContent, next)
	return nil
}

func (m *memoryStore) RemoveLineItem(ctx context.Context, orderID string, item domain.LineItem) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok || !removeItem(order, item) {
		return 0, nil
	}
	return 1, nil
}

func removeItem(order *domain.Order, item domain.LineItem) bool {
	for i, existing := range order.OrderContent {
		if existing == item {
			order.OrderContent = append(order.OrderContent[:i], order.OrderContent[i+1:]...)
			return true
		}
	}
	return false
}

func (m *memoryStore) UpdateStatus(ctx context.Context, orderID string, from, status domain.OrderStatus, pickupAt *int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[orderID]
	if !ok {
		return domain.ErrNotFound
	}
	if order.Status != from {
		return domain.ErrInvalidTransition
	}
	if status == domain.StatusNotYetPlaced {
		if cart := m.cartOf(order.UserID); cart != nil && cart.ID != orderID {
			return domain.ErrConflictingCart
		}
	}
	order.Status = status
	if pickupAt != nil {
		order.PickupAt = *pickupAt
	}
	return nil
}

func (m *memoryStore) DeleteOrder(ctx context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(m.orders, id)
	return order, nil
}

func (m *memoryStore) GetPrice(ctx context.Context, id string) (*domain.Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	price, ok := m.prices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &price, nil
}

func (m *memoryStore) ListPricesByDish(ctx context.Context, dishID string) ([]domain.Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prices := []domain.Price{}
	for _, price := range m.prices {
		if price.DishID == dishID {
			prices = append(prices, price)
		}
	}
	sort.Slice(prices, func(i, j int) bool {
		return m.sizes[prices[i].SizeID].Order < m.sizes[prices[j].SizeID].Order
	})
	return prices, nil
}

func (m *memoryStore) CreatePrice(ctx context.Context, price *domain.Price) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.prices {
		if existing.DishID == price.DishID && existing.SizeID == price.SizeID {
			return domain.ErrInvalidPrice
		}
	}
	if price.ID == "" {
		price.ID = uuid.NewString()
	}
	m.prices[price.ID] = *price
	m.priceWrites++
	return nil
}

func (m *memoryStore) UpdatePrice(ctx context.Context, id string, value decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	price, ok := m.prices[id]
	if !ok {
		return domain.ErrNotFound
	}
	price.Price = value
	m.prices[id] = price
	m.priceWrites++
	return nil
}

func (m *memoryStore) DeletePrice(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.prices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.prices, id)
	m.priceWrites++
	return nil
}

func (m *memoryStore) ListSizes(ctx context.Context, restaurantID string) ([]domain.Size, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sizes := []domain.Size{}
	for _, size := range m.sizes {
		if size.RestaurantID == restaurantID {
			sizes = append(sizes, size)
		}
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Order < sizes[j].Order })
	return sizes, nil
}

func (m *memoryStore) GetSize(ctx context.Context, id string) (*domain.Size, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	size, ok := m.sizes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &size, nil
}

func (m *memoryStore) CreateSize(ctx context.Context, size *domain.Size) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sizes[size.ID] = *size
	return nil
}

func (m *memoryStore) RenameSize(ctx context.Context, id, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	size, ok := m.sizes[id]
	if !ok {
		return domain.ErrNotFound
	}
	size.Name = name
	m.sizes[id] = size
	return nil
}

func (m *memoryStore) DeleteSize(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted, ok := m.sizes[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(m.sizes, id)
	for key, size := range m.sizes {
		if size.RestaurantID == deleted.RestaurantID && size.Order > deleted.Order {
			size.Order--
			m.sizes[key] = size
		}
	}
	return nil
}

func (m *memoryStore) ReorderSizes(ctx context.Context, restaurantID string, orderedIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for index, id := range orderedIDs {
		size, ok := m.sizes[id]
		if !ok || size.RestaurantID != restaurantID {
			return domain.ErrNotFound
		}
		size.Order = index
		m.sizes[id] = size
	}
	return nil
}

func (m *memoryStore) CreateDish(ctx context.Context, dish *domain.Dish) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dishes[dish.ID] = *dish
	return nil
}

func (m *memoryStore) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dish, ok := m.dishes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &dish, nil
}

func (m *memoryStore) ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dishes := []domain.Dish{}
	for _, dish := range m.dishes {
		if dish.RestaurantID == restaurantID {
			dishes = append(dishes, dish)
		}
	}
	return dishes, nil
}

func (m *memoryStore) ListAllDishes(ctx context.Context) ([]domain.Dish, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dishes := make([]domain.Dish, 0, len(m.dishes))
	for _, dish := range m.dishes {
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func (m *memoryStore) UpdateDish(ctx context.Context, dish *domain.Dish) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dishes[dish.ID]; !ok {
		return domain.ErrNotFound
	}
	m.dishes[dish.ID] = *dish
	return nil
}

func (m *memoryStore) SetDishAvailable(ctx context.Context, id string, available bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dish, ok := m.dishes[id]
	if !ok {
		return domain.ErrNotFound
	}
	dish.Available = available
	m.dishes[id] = dish
	return nil
}

func (m *memoryStore) DeleteDishCascade(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dishes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.dishes, id)
	for key, price := range m.prices {
		if price.DishID == id {
			delete(m.prices, key)
		}
	}
	return nil
}
