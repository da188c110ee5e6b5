// Package fanout broadcasts order lifecycle events to the push transport.
// Notification is strictly secondary to the persisted mutation: by the time
// an emit runs the write has already succeeded, so publisher failures are
// logged and absorbed, never propagated, and a missing transport turns every
// emit into a no-op.
package fanout

import (
	"context"
	"log/slog"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// Fanout emits lifecycle events best-effort. Construct exactly one per
// process via New; the composition root decides whether a publisher is
// available.
type Fanout struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// New creates a fanout over the given publisher. A nil publisher is valid
// and disables push notifications entirely.
func New(publisher ports.EventPublisher, logger *slog.Logger) *Fanout {
	return &Fanout{
		publisher: publisher,
		logger:    logger.With("component", "fanout"),
	}
}

// OrderCreated announces a freshly created order.
func (f *Fanout) OrderCreated(ctx context.Context, o *order.Order) {
	f.emit(ctx, ports.EventOrderCreated, o)
}

// OrderUpdated announces an explicit status change.
func (f *Fanout) OrderUpdated(ctx context.Context, o *order.Order) {
	f.emit(ctx, ports.EventOrderUpdated, o)
}

// OrderDeleted announces a removed order by its external reference.
func (f *Fanout) OrderDeleted(ctx context.Context, orderID string) {
	f.emit(ctx, ports.EventOrderDeleted, map[string]string{"orderId": orderID})
}

// OrdersRefresh announces a batched sweep result as one event carrying the
// full order list, avoiding per-order event storms.
func (f *Fanout) OrdersRefresh(ctx context.Context, orders []*order.Order) {
	f.emit(ctx, ports.EventOrdersRefresh, orders)
}

func (f *Fanout) emit(ctx context.Context, kind string, payload any) {
	if f.publisher == nil {
		f.logger.DebugContext(ctx, "Push transport not configured, event not emitted", "kind", kind)
		return
	}

	if err := f.publisher.Publish(ctx, kind, payload); err != nil {
		f.logger.ErrorContext(ctx, "Failed to emit event", "kind", kind, "error", err)
		return
	}

	f.logger.DebugContext(ctx, "Event emitted", "kind", kind)
}
