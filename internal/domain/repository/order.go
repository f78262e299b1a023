package repository

import (
	"context"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, userID string, isbn *string, title, address string) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error
	SetTracking(ctx context.Context, id int64, tracking string, status model.OrderStatus) error
	NextForBooking(ctx context.Context, limit int) ([]model.Order, error)
}
