package emitter

import (
	"context"
	"errors"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/adapter"
	"github.com/feral-file/ff-tipping-ledger/internal/domain"
	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/messaging"
	"github.com/feral-file/ff-tipping-ledger/internal/metrics"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 4
	DEFAULT_WORKER_QUEUE_SIZE = 1024
)

// Config holds the configuration for the event emitter
type Config struct {
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Emitter dispatches ledger events to every configured publisher
//
//go:generate mockgen -source=emitter.go -destination=../mocks/emitter.go -package=mocks -mock_names=Emitter=MockEmitter
type Emitter interface {
	// Emit hands the event to the worker pool and returns immediately.
	// Delivery failures are logged and counted, never returned.
	Emit(ctx context.Context, event *domain.LedgerEvent)
	// Close drains queued deliveries and closes the publishers
	Close()
}

type emitter struct {
	publishers []messaging.Publisher
	pool       pond.Pool
	clock      adapter.Clock
	metrics    *metrics.LedgerMetrics
}

// NewEmitter creates an emitter backed by a worker pool. With no publishers it returns a no-op emitter.
func NewEmitter(cfg Config, clock adapter.Clock, m *metrics.LedgerMetrics, publishers ...messaging.Publisher) Emitter {
	if len(publishers) == 0 {
		return NewNoopEmitter()
	}

	workerPoolSize := cfg.WorkerPoolSize
	if workerPoolSize <= 0 {
		workerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	workerQueueSize := cfg.WorkerQueueSize
	if workerQueueSize <= 0 {
		workerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}

	logger.Info("Event emitter worker pool created",
		zap.Int("workers", workerPoolSize),
		zap.Int("queue_size", workerQueueSize),
		zap.Int("publishers", len(publishers)))

	return &emitter{
		publishers: publishers,
		pool:       pond.NewPool(workerPoolSize, pond.WithQueueSize(workerQueueSize)),
		clock:      clock,
		metrics:    m,
	}
}

func (e *emitter) Emit(ctx context.Context, event *domain.LedgerEvent) {
	if event == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = e.clock.Now()
	}
	if event.ID == "" {
		event.ID = ulid.MustNewDefault(event.Timestamp).String()
	}

	// deliveries outlive the request that produced them
	ctx = context.WithoutCancel(ctx)

	for _, pub := range e.publishers {
		e.pool.Submit(func() {
			if err := pub.PublishEvent(ctx, event); err != nil {
				e.metrics.ObservePublishFailure(pub.Name())
				logger.ErrorCtx(ctx, errors.New("failed to publish ledger event"),
					zap.Error(err),
					zap.String("publisher", pub.Name()),
					zap.String("eventID", event.ID),
					zap.String("kind", string(event.Kind)))
			}
		})
	}
}

func (e *emitter) Close() {
	logger.Info("Shutting down event emitter worker pool",
		zap.Uint64("submitted", e.pool.SubmittedTasks()),
		zap.Uint64("waiting", e.pool.WaitingTasks()))

	e.pool.StopAndWait()

	for _, pub := range e.publishers {
		pub.Close()
	}

	logger.Info("Event emitter shutdown complete",
		zap.Uint64("total_completed", e.pool.CompletedTasks()),
		zap.Uint64("total_failed", e.pool.FailedTasks()))
}

type noopEmitter struct{}

// NewNoopEmitter creates an emitter that drops every event
func NewNoopEmitter() Emitter {
	return noopEmitter{}
}

func (noopEmitter) Emit(context.Context, *domain.LedgerEvent) {}

func (noopEmitter) Close() {}
