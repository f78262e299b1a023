package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/polkiloo/bookbot/internal/domain/model"
	"github.com/polkiloo/bookbot/internal/session"
)

// Fixed replies for business-rule failures and degraded paths.
const (
	MsgNoBooks     = "No books found."
	MsgSearchFirst = "Search for a book first!"
	MsgOrderFailed = "Order failed. Try again."
	MsgAskForBook  = "What book are you looking for?"
)

// Mock courier payload used until the customer confirms a delivery address.
const (
	pendingAddress = "Pending"
	mockRecipient  = "Customer"
	mockPhone      = "01700000000"
	mockAddress    = "Demo Address"
	mockCODAmount  = 550
)

// Searcher answers catalog queries; an empty slice is its only failure signal.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) []model.BookRecord
}

// Generator produces a reply for a conversation transcript.
type Generator interface {
	Generate(ctx context.Context, history []model.ChatTurn) string
}

// OrderPlacer creates orders in persistent storage.
type OrderPlacer interface {
	Create(ctx context.Context, userID string, isbn *string, title, address string) (int64, error)
}

// ShipmentBooker books a courier shipment for a created order.
type ShipmentBooker interface {
	Book(ctx context.Context, req model.ShipmentRequest) (model.ShipmentConfirmation, error)
}

// Engine drives the per-user dialogue: it classifies each inbound message,
// runs the matching sub-flow and maintains the conversation window.
type Engine struct {
	catalog  Searcher
	orders   OrderPlacer
	courier  ShipmentBooker
	replies  Generator
	sessions *session.Store
	limit    int
	logger   *slog.Logger
}

// NewEngine constructs the dialogue engine.
func NewEngine(catalog Searcher, orders OrderPlacer, courier ShipmentBooker, replies Generator, sessions *session.Store, searchLimit int, logger *slog.Logger) *Engine {
	if searchLimit <= 0 {
		searchLimit = 3
	}
	return &Engine{
		catalog:  catalog,
		orders:   orders,
		courier:  courier,
		replies:  replies,
		sessions: sessions,
		limit:    searchLimit,
		logger:   logger,
	}
}

// Start resets the user's conversation and returns a greeting seeded with a
// single canned user turn. The greeting itself is not recorded as history.
func (e *Engine) Start(ctx context.Context, userID string) string {
	e.sessions.Reset(userID)
	e.logger.Info("conversation started", slog.String("user", userID))
	return e.replies.Generate(ctx, []model.ChatTurn{{Role: model.RoleUser, Content: "Hello"}})
}

// HandleMessage processes one inbound message and returns the reply. The
// whole flow runs under the user's session lock, so messages from one user
// are handled strictly one at a time.
func (e *Engine) HandleMessage(ctx context.Context, userID, text string) string {
	text = strings.TrimSpace(text)
	e.logger.Info("message received", slog.String("user", userID))

	var reply string
	e.sessions.Update(userID, func(sess *model.Session) {
		sess.History = append(sess.History, model.ChatTurn{Role: model.RoleUser, Content: text})

		intent := Classify(text)
		switch intent.Kind {
		case KindSearch:
			reply = e.handleSearch(ctx, intent.Query, sess)
		case KindOrder:
			reply = e.handleOrder(ctx, userID, intent.Selection, sess)
		default:
			reply = e.handleChat(ctx, sess)
		}

		sess.History = append(sess.History, model.ChatTurn{Role: model.RoleAssistant, Content: reply})
	})

	return reply
}

func (e *Engine) handleSearch(ctx context.Context, query string, sess *model.Session) string {
	e.logger.Info("search intent", slog.String("query", query))

	books := e.catalog.Search(ctx, query, e.limit)
	sess.LastBooks = books
	if len(books) == 0 {
		return MsgNoBooks
	}

	lines := make([]string, 0, len(books))
	for i, b := range books {
		lines = append(lines, fmt.Sprintf("%d. *%s* - %s", i+1, b.Title, b.DisplayPrice()))
	}
	summary := model.ChatTurn{Role: model.RoleSystem, Content: strings.Join(lines, "\n")}
	return e.replies.Generate(ctx, append(append([]model.ChatTurn(nil), sess.History...), summary))
}

func (e *Engine) handleOrder(ctx context.Context, userID string, selection int, sess *model.Session) string {
	if len(sess.LastBooks) == 0 {
		return MsgSearchFirst
	}

	idx := selection
	if idx >= len(sess.LastBooks) {
		idx = len(sess.LastBooks) - 1
	}
	if idx < 0 {
		idx = 0
	}
	book := sess.LastBooks[idx]
	e.logger.Info("order intent", slog.String("user", userID), slog.String("title", book.Title))

	// Price is deliberately never recorded on the order.
	orderID, err := e.orders.Create(ctx, userID, book.ISBN, book.Title, pendingAddress)
	if err != nil {
		e.logger.Error("order creation failed", slog.String("error", err.Error()))
		return MsgOrderFailed
	}

	// Booking is best effort: a failed booking leaves the order as-is and
	// the shipment sweeper retries it later.
	track := fmt.Sprintf("TRK-MOCK-%d", orderID)
	confirmation, err := e.courier.Book(ctx, model.ShipmentRequest{
		Invoice:       fmt.Sprintf("%d", orderID),
		RecipientName: mockRecipient,
		Phone:         mockPhone,
		Address:       mockAddress,
		CODAmount:     mockCODAmount,
	})
	if err != nil {
		e.logger.Error("shipment booking failed", slog.Int64("order", orderID), slog.String("error", err.Error()))
	} else if confirmation.TrackingCode != "" {
		track = confirmation.TrackingCode
	}

	return fmt.Sprintf(
		"Order placed!\nBook: *%s*\nPrice: *%s*\nID: `%d`\nTrack: `%s`\n\nShare address to confirm!",
		book.Title, book.DisplayPrice(), orderID, track,
	)
}

func (e *Engine) handleChat(ctx context.Context, sess *model.Session) string {
	reply := e.replies.Generate(ctx, sess.History)
	if reply == "" {
		return MsgAskForBook
	}
	return reply
}
