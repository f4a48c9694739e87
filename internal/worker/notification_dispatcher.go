package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

// DefaultLease is how long a claimed notification stays invisible to other claims.
const DefaultLease = 30 * time.Second

// NotificationFacade exposes the subset of application functionality required by the worker.
type NotificationFacade interface {
	PendingNotifications(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error)
	PublishNotification(ctx context.Context, n model.Notification) error
	MarkNotificationDispatched(ctx context.Context, id uuid.UUID) error
}

// NotificationDispatcher drains the notification outbox with a pool of workers.
// A notification is marked dispatched only after it was published, so a
// failed publish is retried once its lease expires.
type NotificationDispatcher struct {
	facade       NotificationFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	lease        time.Duration
	logger       *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher worker pool.
func NewNotificationDispatcher(facade NotificationFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &NotificationDispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		lease:        DefaultLease,
		logger:       logger,
		jobs:         make(chan model.Notification, batchSize*workers),
	}
}

// Start launches background processing.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.poll(runCtx)
}

// Stop waits for all workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *NotificationDispatcher) poll(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.claimAndDispatch(ctx)
		}
	}
}

func (d *NotificationDispatcher) claimAndDispatch(ctx context.Context) {
	batch, err := d.facade.PendingNotifications(ctx, d.batchSize, d.lease)
	if err != nil {
		d.logger.Error("claim notifications failed", slog.String("error", err.Error()))
		return
	}
	for _, n := range batch {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- n:
		}
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, n)
		}
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, n model.Notification) {
	if err := d.facade.PublishNotification(ctx, n); err != nil {
		d.logger.Warn("publish notification failed",
			slog.String("notification_id", n.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if err := d.facade.MarkNotificationDispatched(ctx, n.ID); err != nil {
		d.logger.Error("mark notification dispatched failed",
			slog.String("notification_id", n.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
