package handlers

import (
	"context"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// ChatFacade describes conversation capabilities required by handlers.
type ChatFacade interface {
	StartConversation(ctx context.Context, userID string) string
	HandleMessage(ctx context.Context, userID, text string) string
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	OrderStats(ctx context.Context) (*model.OrderStats, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) error
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	ChatFacade
	OrderFacade
}
