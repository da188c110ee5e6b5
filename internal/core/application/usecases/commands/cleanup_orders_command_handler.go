package commands

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// CleanupOrdersCommandHandler removes delivered orders whose last update is
// older than the retention cutoff. This is the only path that destroys
// orders besides the explicit admin delete.
type CleanupOrdersCommandHandler struct {
	gate  Gate
	store ports.SnapshotStore
}

// NewCleanupOrdersCommandHandler creates a handler for retention cleanup.
func NewCleanupOrdersCommandHandler(gate Gate, store ports.SnapshotStore) CleanupOrdersCommandHandler {
	return CleanupOrdersCommandHandler{
		gate:  gate,
		store: store,
	}
}

// Handle removes qualifying orders and returns the removed count. The
// snapshot is persisted only when at least one order was removed.
func (h CleanupOrdersCommandHandler) Handle(ctx context.Context, cmd CleanupOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var removed int

	err := h.gate.Do(ctx, func() error {
		data, err := h.store.Read(ctx)
		if err != nil {
			return err
		}

		cutoff := time.Now().UTC().AddDate(0, 0, -cmd.DaysOld())

		kept := make([]*order.Order, 0, len(data.Orders))
		for _, o := range data.Orders {
			if o.Status == order.Delivered && expiredAt(o.UpdatedAt, cutoff) {
				removed++
				continue
			}
			kept = append(kept, o)
		}

		if removed == 0 {
			return nil
		}

		data.Orders = kept
		return h.store.Write(ctx, data)
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}

// expiredAt reports whether a last update is past the retention cutoff.
// Equality counts as expired; only updates strictly after the cutoff survive.
func expiredAt(updatedAt, cutoff time.Time) bool {
	return !updatedAt.After(cutoff)
}
