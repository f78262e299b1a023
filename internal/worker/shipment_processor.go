package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/bookbot/internal/domain/model"
)

// StorefrontFacade exposes the subset of application functionality required by the worker.
type StorefrontFacade interface {
	OrdersAwaitingShipment(ctx context.Context, limit int) ([]model.Order, error)
	BookShipment(ctx context.Context, order model.Order) (model.ShipmentConfirmation, error)
	ConfirmShipment(ctx context.Context, orderID int64, tracking string) error
}

// ShipmentProcessor sweeps orders without a tracking code and books their
// shipments concurrently. It is the asynchronous safety net behind the
// best-effort booking done in the dialogue reply path.
type ShipmentProcessor struct {
	facade       StorefrontFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewShipmentProcessor constructs shipment processor worker pool.
func NewShipmentProcessor(facade StorefrontFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *ShipmentProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ShipmentProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (p *ShipmentProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *ShipmentProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *ShipmentProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *ShipmentProcessor) fetchAndDispatch(ctx context.Context) {
	orders, err := p.facade.OrdersAwaitingShipment(ctx, p.batchSize)
	if err != nil {
		p.logger.Error("fetch orders awaiting shipment failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- order:
		}
	}
}

func (p *ShipmentProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handleOrder(ctx, order)
		}
	}
}

func (p *ShipmentProcessor) handleOrder(ctx context.Context, order model.Order) {
	confirmation, err := p.facade.BookShipment(ctx, order)
	if err != nil {
		// The order stays untouched; it will be picked up on a later sweep.
		p.logger.Error("shipment booking failed", slog.Int64("order", order.ID), slog.String("error", err.Error()))
		return
	}
	if confirmation.TrackingCode == "" {
		p.logger.Warn("courier returned empty tracking code", slog.Int64("order", order.ID))
		return
	}

	if err := p.facade.ConfirmShipment(ctx, order.ID, confirmation.TrackingCode); err != nil {
		p.logger.Error("confirm shipment failed", slog.Int64("order", order.ID), slog.String("error", err.Error()))
		return
	}
	p.logger.Info("shipment booked",
		slog.Int64("order", order.ID), slog.String("tracking", confirmation.TrackingCode))
}
