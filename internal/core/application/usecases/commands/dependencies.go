// Package commands contains the mutating lifecycle operations. Every handler
// runs its entire read-modify-write sequence inside one gate acquisition;
// locking only the write would reintroduce lost-update races. Notification
// happens after the gate is released and is best-effort.
package commands

import (
	"context"

	"orderboard/internal/core/domain/model/order"
)

type (
	// Gate serializes read-modify-write sequences against the snapshot
	// store. Do returns lock.ErrTimeout when exclusivity cannot be acquired
	// in time; callers surface that as a transient failure.
	Gate interface {
		Do(ctx context.Context, fn func() error) error
	}

	// Notifier broadcasts lifecycle events after a successful mutation.
	// Implementations absorb transport failures; none of these calls can
	// fail or block the caller.
	Notifier interface {
		OrderCreated(ctx context.Context, o *order.Order)
		OrderUpdated(ctx context.Context, o *order.Order)
		OrderDeleted(ctx context.Context, orderID string)
		OrdersRefresh(ctx context.Context, orders []*order.Order)
	}
)
