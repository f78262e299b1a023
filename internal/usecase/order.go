package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/bookbot/internal/domain/errors"
	"github.com/polkiloo/bookbot/internal/domain/model"
	"github.com/polkiloo/bookbot/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create places a new order and returns its store-assigned identifier.
func (u *OrderUseCase) Create(ctx context.Context, userID string, isbn *string, title, address string) (int64, error) {
	if title == "" {
		return 0, domainErrors.ErrEmptyTitle
	}
	if address == "" {
		address = "Pending"
	}
	return u.orders.Create(ctx, userID, isbn, title, address)
}

// List returns orders matching the dashboard filter, newest first.
func (u *OrderUseCase) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return u.orders.List(ctx, filter)
}

// Stats summarizes the order book for dashboard metrics.
func (u *OrderUseCase) Stats(ctx context.Context) (*model.OrderStats, error) {
	orders, err := u.orders.List(ctx, model.OrderFilter{})
	if err != nil {
		return nil, err
	}
	stats := &model.OrderStats{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case model.OrderStatusPending:
			stats.Pending++
		case model.OrderStatusDelivered:
			stats.Delivered++
		}
	}
	return stats, nil
}

// UpdateStatus persists a dashboard-driven status change.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if _, ok := model.ParseOrderStatus(string(status)); !ok {
		return domainErrors.ErrInvalidOrderStatus
	}
	return u.orders.UpdateStatus(ctx, id, status)
}

// ConfirmShipment records the booked tracking code and moves the order on.
func (u *OrderUseCase) ConfirmShipment(ctx context.Context, id int64, tracking string) error {
	return u.orders.SetTracking(ctx, id, tracking, model.OrderStatusProcessing)
}

// NextForBooking selects orders still waiting for a shipment booking.
func (u *OrderUseCase) NextForBooking(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.NextForBooking(ctx, limit)
}
