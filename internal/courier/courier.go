package courier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// Booker books a courier shipment and returns a tracking code synchronously.
// Callers must tolerate failure without rolling back the order the shipment
// belongs to.
type Booker interface {
	Book(ctx context.Context, req model.ShipmentRequest) (model.ShipmentConfirmation, error)
}

// MockBooker synthesizes deterministic tracking codes after a fixed delay
// that stands in for courier API latency. It never fails unless the context
// is cancelled first.
type MockBooker struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewMockBooker constructs the stub courier.
func NewMockBooker(logger *slog.Logger) *MockBooker {
	return &MockBooker{delay: 500 * time.Millisecond, logger: logger}
}

// Book returns a tracking code derived from the order invoice.
func (b *MockBooker) Book(ctx context.Context, req model.ShipmentRequest) (model.ShipmentConfirmation, error) {
	b.logger.Info("booking shipment", slog.String("invoice", req.Invoice))

	select {
	case <-ctx.Done():
		return model.ShipmentConfirmation{}, ctx.Err()
	case <-time.After(b.delay):
	}

	return model.ShipmentConfirmation{
		TrackingCode: fmt.Sprintf("TRK-MOCK-%s", req.Invoice),
		Status:       "Booked",
	}, nil
}
