package domain

import (
	"io"

	"github.com/shopspring/decimal"
)

type Thumbnail struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	LinkedAlexaToken string `json:"linkedAlexaToken,omitempty"`
	IsAdmin          bool   `json:"isAdmin"`
}

type Restaurant struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CompanyNumber   string    `json:"companyNumber"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	PostalCode      string    `json:"postalCode"`
	City            string    `json:"city"`
	Thumbnail       Thumbnail `json:"thumbnail"`
	AcceptingOrders bool      `json:"acceptingOrders"`
}

// Size is a restaurant-defined portion. Order is the dense 0-based display rank.
type Size struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Order        int    `json:"order"`
	RestaurantID string `json:"restaurantId"`
}

type Dish struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Thumbnail    Thumbnail `json:"thumbnail"`
	RestaurantID string    `json:"restaurantId"`
	Available    bool      `json:"available"`
}

// Price is the price of one dish in one size. At most one exists per (DishID, SizeID).
type Price struct {
	ID     string          `json:"id"`
	DishID string          `json:"dishId"`
	SizeID string          `json:"sizeId"`
	Price  decimal.Decimal `json:"price"`
}

// SizePrice is one submitted (size, price) pair from the dish prices form.
type SizePrice struct {
	SizeID string          `json:"sizeId"`
	Price  decimal.Decimal `json:"price"`
}

type LineItem struct {
	PriceID string `json:"priceId"`
	Amount  int    `json:"amount"`
}

type Order struct {
	ID           string      `json:"id"`
	UserID       string      `json:"userId"`
	RestaurantID string      `json:"restaurantId"`
	OrderContent []LineItem  `json:"orderContent"`
	Status       OrderStatus `json:"status"`
	PickupAt     int64       `json:"pickupAt"`
}

// HasPrice reports whether a line item for priceID is already in the order.
func (o *Order) HasPrice(priceID string) bool {
	for _, item := range o.OrderContent {
		if item.PriceID == priceID {
			return true
		}
	}
	return false
}

func (o *Order) HasItem(item LineItem) bool {
	for _, existing := range o.OrderContent {
		if existing == item {
			return true
		}
	}
	return false
}

type OrderTotal struct {
	Total         decimal.Decimal `json:"total"`
	MissingPrices []string        `json:"missingPrices,omitempty"`
}

type Account struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Session is the authenticated caller of a request with its freshly resolved role.
type Session struct {
	AccountID   string `json:"accountId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// Upload is an image file submitted together with a form.
type Upload struct {
	Filename string
	Body     io.Reader
}
