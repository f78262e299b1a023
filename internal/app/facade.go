package app

import (
	"context"
	"fmt"

	"github.com/polkiloo/bookbot/internal/bot"
	"github.com/polkiloo/bookbot/internal/courier"
	"github.com/polkiloo/bookbot/internal/domain/model"
	"github.com/polkiloo/bookbot/internal/usecase"
)

// StorefrontFacade aggregates dialogue, order and shipment operations for
// the HTTP handlers and the shipment worker.
type StorefrontFacade struct {
	engine  *bot.Engine
	orders  *usecase.OrderUseCase
	courier courier.Booker
}

// NewStorefrontFacade constructs the facade.
func NewStorefrontFacade(engine *bot.Engine, orders *usecase.OrderUseCase, booker courier.Booker) *StorefrontFacade {
	return &StorefrontFacade{engine: engine, orders: orders, courier: booker}
}

// StartConversation resets the user's dialogue state and returns a greeting.
func (f *StorefrontFacade) StartConversation(ctx context.Context, userID string) string {
	return f.engine.Start(ctx, userID)
}

// HandleMessage processes one inbound chat message and returns the reply.
func (f *StorefrontFacade) HandleMessage(ctx context.Context, userID, text string) string {
	return f.engine.HandleMessage(ctx, userID, text)
}

// Orders lists orders for the dashboard.
func (f *StorefrontFacade) Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

// OrderStats summarizes the order book.
func (f *StorefrontFacade) OrderStats(ctx context.Context) (*model.OrderStats, error) {
	return f.orders.Stats(ctx)
}

// UpdateOrderStatus applies a dashboard-driven status change.
func (f *StorefrontFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, id, status)
}

// OrdersAwaitingShipment selects orders still missing a tracking code.
func (f *StorefrontFacade) OrdersAwaitingShipment(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.NextForBooking(ctx, limit)
}

// BookShipment books a courier shipment for the given order using the mock
// cash-on-delivery payload.
func (f *StorefrontFacade) BookShipment(ctx context.Context, order model.Order) (model.ShipmentConfirmation, error) {
	return f.courier.Book(ctx, model.ShipmentRequest{
		Invoice:       fmt.Sprintf("%d", order.ID),
		RecipientName: "Customer",
		Phone:         "01700000000",
		Address:       order.Address,
		CODAmount:     550,
	})
}

// ConfirmShipment records the tracking code on the order.
func (f *StorefrontFacade) ConfirmShipment(ctx context.Context, orderID int64, tracking string) error {
	return f.orders.ConfirmShipment(ctx, orderID, tracking)
}
