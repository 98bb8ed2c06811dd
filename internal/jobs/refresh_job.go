package jobs

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync/atomic"

	"github.com/moisescpp/tierno-oficial/internal/core/domain/model/order"
	"github.com/moisescpp/tierno-oficial/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// refreshSchedule re-reads the book every thirty seconds.
const refreshSchedule = "*/30 * * * * *"

// RefreshJob periodically re-reads the order set so the snapshot cache
// stays warm and schedule changes made elsewhere become visible. A
// fingerprint of the set suppresses logging when nothing changed.
//
// The job can be suspended while a client is in the middle of an edit, so
// a refresh never races a form that is about to submit, and resumed after.
type RefreshJob struct {
	store     ports.OrderStore
	cron      *cron.Cron
	logger    *slog.Logger
	suspended atomic.Bool

	lastFingerprint atomic.Uint64
}

// NewRefreshJob creates the refresh job over the given store. Reading
// through a cache-backed store is what keeps the snapshot warm.
func NewRefreshJob(store ports.OrderStore, logger *slog.Logger) *RefreshJob {
	return &RefreshJob{
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *RefreshJob) Start() error {
	_, err := j.cron.AddFunc(refreshSchedule, func() {
		j.Refresh(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the periodic refresh.
func (j *RefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}

// Suspend pauses refreshing without stopping the schedule. Ticks that fire
// while suspended do nothing.
func (j *RefreshJob) Suspend() {
	j.suspended.Store(true)
	j.logger.Info("Order refresh suspended")
}

// Resume re-enables refreshing after a Suspend.
func (j *RefreshJob) Resume() {
	j.suspended.Store(false)
	j.logger.Info("Order refresh resumed")
}

// Refresh performs one refresh pass immediately. Exposed so the
// composition root can warm the cache at startup.
func (j *RefreshJob) Refresh(ctx context.Context) {
	if j.suspended.Load() {
		return
	}

	orders, err := j.store.List(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order refresh failed", "error", err)
		return
	}

	fingerprint := fingerprintOrders(orders)
	if j.lastFingerprint.Swap(fingerprint) != fingerprint {
		j.logger.InfoContext(ctx, "Order set changed", "orders", len(orders))
	}
}

// fingerprintOrders hashes the fields that change when the schedule
// changes. Two sets with the same fingerprint render the same schedule.
func fingerprintOrders(orders []*order.Order) uint64 {
	h := fnv.New64a()
	for _, o := range orders {
		fmt.Fprintf(h, "%s|%s|%d|%t|%v;",
			o.ID().String(), o.DeliveryDate().String(), o.RouteOrder(), o.IsDelivered(), o.UpdatedAt())
	}
	return h.Sum64()
}
