package service

import (
	"context"
	"io"
	"time"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateAlexaToken(ctx context.Context, id, token string) error
}

type RoleRepository interface {
	CountUsersByEmail(ctx context.Context, email string, isAdmin bool) (int, error)
	CountRestaurantsByEmail(ctx context.Context, email string) (int, error)
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	UpdateRestaurantAddress(ctx context.Context, id, address, postalCode, city string) error
	UpdateRestaurantThumbnail(ctx context.Context, id string, thumbnail domain.Thumbnail) error
	SetAcceptingOrders(ctx context.Context, id string, accepting bool) error
	DeleteRestaurant(ctx context.Context, id string) (int64, error)
}

type SizeRepository interface {
	ListSizes(ctx context.Context, restaurantID string) ([]domain.Size, error)
	GetSize(ctx context.Context, id string) (*domain.Size, error)
	CreateSize(ctx context.Context, size *domain.Size) error
	RenameSize(ctx context.Context, id, name string) error
	DeleteSize(ctx context.Context, id string) error
	ReorderSizes(ctx context.Context, restaurantID string, orderedIDs []string) error
}

type DishRepository interface {
	CreateDish(ctx context.Context, dish *domain.Dish) error
	GetDish(ctx context.Context, id string) (*domain.Dish, error)
	ListDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	ListAllDishes(ctx context.Context) ([]domain.Dish, error)
	UpdateDish(ctx context.Context, dish *domain.Dish) error
	SetDishAvailable(ctx context.Context, id string, available bool) error
	DeleteDishCascade(ctx context.Context, id string) error
}

type PriceLookup interface {
	GetPrice(ctx context.Context, id string) (*domain.Price, error)
}

type PriceRepository interface {
	PriceLookup
	ListPricesByDish(ctx context.Context, dishID string) ([]domain.Price, error)
	CreatePrice(ctx context.Context, price *domain.Price) error
	UpdatePrice(ctx context.Context, id string, value decimal.Decimal) error
	DeletePrice(ctx context.Context, id string) error
}

type OrderRepository interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	FindCart(ctx context.Context, userID string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantID string) ([]domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	ReplaceOrder(ctx context.Context, oldID string, order *domain.Order) error
	AppendLineItem(ctx context.Context, orderID string, item domain.LineItem) error
	ReplaceLineItem(ctx context.Context, orderID string, old, next domain.LineItem) error
	RemoveLineItem(ctx context.Context, orderID string, item domain.LineItem) (int64, error)
	// UpdateStatus only writes when the stored status still equals from.
	UpdateStatus(ctx context.Context, orderID string, from, to domain.OrderStatus, pickupAt *int64) error
	DeleteOrder(ctx context.Context, id string) (*domain.Order, error)
}

// CartLocker serializes cart mutations of a single user across processes.
type CartLocker interface {
	Acquire(ctx context.Context, userID string) (string, bool, error)
	Release(ctx context.Context, userID, token string) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type BlobStore interface {
	Upload(ctx context.Context, path string, body io.Reader) (domain.Thumbnail, error)
	Delete(ctx context.Context, path string) error
}

type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, displayName string) (*domain.Account, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.Account, error)
	SignOut(ctx context.Context, token string) error
	Verify(ctx context.Context, token string) (*domain.Account, error)
	OnSessionChange(listener func(ctx context.Context, account *domain.Account))
}

type OrderServiceInterface interface {
	GetOrCreateCart(ctx context.Context, userID, restaurantID string, item domain.LineItem) (*domain.Order, error)
	GetCart(ctx context.Context, userID string) (*domain.Order, error)
	GetUserOrder(ctx context.Context, orderID, userID string) (*domain.Order, error)
	AddLineItem(ctx context.Context, orderID string, item domain.LineItem) (*domain.Order, error)
	EditLineItem(ctx context.Context, orderID string, old domain.LineItem, newAmount int) (*domain.Order, error)
	RemoveLineItem(ctx context.Context, orderID string, item domain.LineItem) (*domain.Order, error)
	PlaceOrder(ctx context.Context, orderID, pickupTimeOfDay string) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, userID string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID string) error
	AcceptOrder(ctx context.Context, orderID, restaurantID string) (*domain.Order, error)
	DeclineOrder(ctx context.Context, orderID, restaurantID string) (*domain.Order, error)
	MarkPickedUp(ctx context.Context, orderID, restaurantID string) (*domain.Order, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	ListRestaurantOrders(ctx context.Context, restaurantID string) ([]domain.Order, error)
	Total(ctx context.Context, order *domain.Order) (domain.OrderTotal, error)
	PickupQRCode(ctx context.Context, order *domain.Order) ([]byte, error)
}

type PriceServiceInterface interface {
	ListForDish(ctx context.Context, dishID string) ([]domain.Price, error)
	SavePrices(ctx context.Context, restaurantID, dishID string, submitted []domain.SizePrice) ([]domain.Price, error)
}

type AccountServiceInterface interface {
	SignUpUser(ctx context.Context, name, email, password string) (*domain.User, error)
	SignUpRestaurant(ctx context.Context, signup RestaurantSignup, logo *domain.Upload) (*domain.Restaurant, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.Session, error)
	SignOut(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	LinkAlexa(ctx context.Context, userID, token string) (*domain.User, error)
	UnlinkAlexa(ctx context.Context, userID string) (*domain.User, error)
}

type RestaurantServiceInterface interface {
	List(ctx context.Context) ([]domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	SetAcceptingOrders(ctx context.Context, id string, accepting bool) (*domain.Restaurant, error)
	UpdateAddress(ctx context.Context, id, address, postalCode, city string) (*domain.Restaurant, error)
	ReplaceLogo(ctx context.Context, id string, logo *domain.Upload) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

type SizeServiceInterface interface {
	List(ctx context.Context, restaurantID string) ([]domain.Size, error)
	Add(ctx context.Context, restaurantID, name string) (*domain.Size, error)
	Rename(ctx context.Context, restaurantID, sizeID, name string) (*domain.Size, error)
	Delete(ctx context.Context, restaurantID, sizeID string) error
	Reorder(ctx context.Context, restaurantID string, orderedIDs []string) ([]domain.Size, error)
}

type DishServiceInterface interface {
	List(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	ListAll(ctx context.Context) ([]domain.Dish, error)
	Get(ctx context.Context, id string) (*domain.Dish, error)
	Create(ctx context.Context, dish *domain.Dish, restaurantName string, thumbnail *domain.Upload) error
	UpdateInfo(ctx context.Context, restaurantID, dishID, name, description, restaurantName string, thumbnail *domain.Upload) (*domain.Dish, error)
	SetAvailable(ctx context.Context, restaurantID, dishID string, available bool) (*domain.Dish, error)
	Delete(ctx context.Context, restaurantID, dishID string) error
}

// Clock returns the current time; injected so pickup computations are testable.
type Clock func() time.Time
