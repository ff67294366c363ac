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

type OrderEvent struct {
	Type         OrderEventType `json:"type"`
	OrderID      string         `json:"order_id"`
	UserID       string         `json:"user_id"`
	RestaurantID string         `json:"restaurant_id"`
	Status       OrderStatus    `json:"status"`
	PickupAt     int64          `json:"pickup_at"`
	Items        int            `json:"items"`
	Timestamp    time.Time      `json:"timestamp"`
}

func NewOrderEvent(eventType OrderEventType, order *Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		Status:       order.Status,
		PickupAt:     order.PickupAt,
		Items:        len(order.OrderContent),
		Timestamp:    at,
	}
}
