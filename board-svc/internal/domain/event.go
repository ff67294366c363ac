package domain

import "time"

type OrderEventType string

const (
	EventOrderPlaced    OrderEventType = "order_placed"
	EventOrderCancelled OrderEventType = "order_cancelled"
	EventOrderAccepted  OrderEventType = "order_accepted"
	EventOrderDeclined  OrderEventType = "order_declined"
	EventOrderPickedUp  OrderEventType = "order_picked_up"
	EventOrderDeleted   OrderEventType = "order_deleted"
)

// OrderEvent is the message storefront-svc publishes on every order status change.
type OrderEvent struct {
	Type         OrderEventType `json:"type"`
	OrderID      string         `json:"order_id"`
	UserID       string         `json:"user_id"`
	RestaurantID string         `json:"restaurant_id"`
	Status       string         `json:"status"`
	PickupAt     int64          `json:"pickup_at"`
	Items        int            `json:"items"`
	Timestamp    time.Time      `json:"timestamp"`
}

// BoardEntry is one open order on a restaurant's board.
type BoardEntry struct {
	OrderID      string    `json:"orderId"`
	RestaurantID string    `json:"restaurantId"`
	UserID       string    `json:"userId"`
	Status       string    `json:"status"`
	PickupAt     int64     `json:"pickupAt"`
	Items        int       `json:"items"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func EntryFromEvent(event OrderEvent) BoardEntry {
	return BoardEntry{
		OrderID:      event.OrderID,
		RestaurantID: event.RestaurantID,
		UserID:       event.UserID,
		Status:       event.Status,
		PickupAt:     event.PickupAt,
		Items:        event.Items,
		UpdatedAt:    event.Timestamp,
	}
}
