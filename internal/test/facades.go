package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// ChatFacadeStub provides controllable behaviour for chat endpoints.
type ChatFacadeStub struct {
	StartFn   func(context.Context, string) string
	MessageFn func(context.Context, string, string) string
}

// StartConversation delegates to provided function or returns a canned greeting.
func (s ChatFacadeStub) StartConversation(ctx context.Context, userID string) string {
	if s.StartFn != nil {
		return s.StartFn(ctx, userID)
	}
	return "Hello! What are you reading next?"
}

// HandleMessage delegates to provided function or echoes the message.
func (s ChatFacadeStub) HandleMessage(ctx context.Context, userID, text string) string {
	if s.MessageFn != nil {
		return s.MessageFn(ctx, userID, text)
	}
	return "You said: " + text
}

// OrderFacadeStub simulates dashboard order operations.
type OrderFacadeStub struct {
	OrdersFn       func(context.Context, model.OrderFilter) ([]model.Order, error)
	StatsFn        func(context.Context) (*model.OrderStats, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) error
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: 1, UserID: "42", Title: "Atomic Habits", Address: "Pending", Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}}, nil
}

// OrderStats returns preconfigured stats.
func (s OrderFacadeStub) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	if s.StatsFn != nil {
		return s.StatsFn(ctx)
	}
	return &model.OrderStats{Total: 1, Pending: 1}, nil
}

// UpdateOrderStatus executes configured handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

// StorefrontFacadeStub aggregates chat and order stubs for the router.
type StorefrontFacadeStub struct {
	ChatFacadeStub
	OrderFacadeStub
}

// ShipmentConfirmCall stores information about ConfirmShipment invocations.
type ShipmentConfirmCall struct {
	OrderID  int64
	Tracking string
}

// ShipmentFacadeStub mimics worker interactions with the storefront facade.
type ShipmentFacadeStub struct {
	Batches         [][]model.Order
	BatchesFn       func(context.Context, int) ([]model.Order, error)
	BookFn          func(context.Context, model.Order) (model.ShipmentConfirmation, error)
	ConfirmFn       func(context.Context, int64, string) error
	Confirmations   []ShipmentConfirmCall
	mu              sync.Mutex
	batchsCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *ShipmentFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *ShipmentFacadeStub) Unlock() { s.mu.Unlock() }

// OrdersAwaitingShipment returns batches from configured queue.
func (s *ShipmentFacadeStub) OrdersAwaitingShipment(ctx context.Context, limit int) ([]model.Order, error) {
	if s.BatchesFn != nil {
		return s.BatchesFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchsCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// BookShipment returns configured confirmation or a mock tracking code.
func (s *ShipmentFacadeStub) BookShipment(ctx context.Context, order model.Order) (model.ShipmentConfirmation, error) {
	if s.BookFn != nil {
		return s.BookFn(ctx, order)
	}
	return model.ShipmentConfirmation{TrackingCode: "TRK-MOCK-1", Status: "Booked"}, nil
}

// ConfirmShipment records confirmation requests.
func (s *ShipmentFacadeStub) ConfirmShipment(ctx context.Context, orderID int64, tracking string) error {
	if s.ConfirmFn != nil {
		return s.ConfirmFn(ctx, orderID, tracking)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmations = append(s.Confirmations, ShipmentConfirmCall{OrderID: orderID, Tracking: tracking})
	return nil
}
