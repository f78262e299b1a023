package model

import "time"

// OrderStatus describes order fulfilment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// ParseOrderStatus validates external status input.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return OrderStatus(s), true
	}
	return "", false
}

// Order describes a placed book order. Tracking stays nil until shipment
// booking succeeds; a nil tracking code is a valid long-lived state.
type Order struct {
	ID        int64
	UserID    string
	ISBN      *string
	Title     string
	Address   string
	Status    OrderStatus
	Tracking  *string
	CreatedAt time.Time
}

// OrderFilter narrows dashboard listings.
type OrderFilter struct {
	Statuses    []OrderStatus
	CreatedFrom *time.Time
}

// OrderStats summarizes the order book for the dashboard.
type OrderStats struct {
	Total     int
	Pending   int
	Delivered int
}
