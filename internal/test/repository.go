package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/bookbot/internal/domain/errors"
	"github.com/polkiloo/bookbot/internal/domain/model"
)

// OrderRepositoryStub is an in-memory order repository for wiring tests.
type OrderRepositoryStub struct {
	mu     sync.Mutex
	Orders []model.Order
}

// Create appends a new order and returns its identifier.
func (r *OrderRepositoryStub) Create(ctx context.Context, userID string, isbn *string, title, address string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := int64(len(r.Orders) + 1)
	r.Orders = append(r.Orders, model.Order{ID: id, UserID: userID, ISBN: isbn, Title: title, Address: address, Status: model.OrderStatusPending})
	return id, nil
}

// GetByID looks up a stored order.
func (r *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Orders {
		if r.Orders[i].ID == id {
			order := r.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored orders regardless of the filter.
func (r *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Order(nil), r.Orders...), nil
}

// UpdateStatus mutates the stored order status.
func (r *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Orders {
		if r.Orders[i].ID == id {
			r.Orders[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SetTracking records a tracking code and moves the order to status.
func (r *OrderRepositoryStub) SetTracking(ctx context.Context, id int64, tracking string, status model.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Orders {
		if r.Orders[i].ID == id {
			code := tracking
			r.Orders[i].Tracking = &code
			r.Orders[i].Status = status
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// NextForBooking returns stored orders without a tracking code.
func (r *OrderRepositoryStub) NextForBooking(ctx context.Context, limit int) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var unbooked []model.Order
	for _, o := range r.Orders {
		if o.Tracking == nil {
			unbooked = append(unbooked, o)
			if len(unbooked) == limit {
				break
			}
		}
	}
	return unbooked, nil
}
