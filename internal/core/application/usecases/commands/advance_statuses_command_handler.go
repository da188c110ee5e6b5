package commands

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// AdvanceStatusesCommandHandler runs the automatic sweep: every order that is
// neither delivered nor manually overridden is advanced according to its age.
// When anything changed the snapshot is persisted once and a single
// orders:refresh event carries the full list, instead of per-order events.
type AdvanceStatusesCommandHandler struct {
	gate     Gate
	store    ports.SnapshotStore
	notifier Notifier
}

// NewAdvanceStatusesCommandHandler creates a handler for the sweep.
func NewAdvanceStatusesCommandHandler(gate Gate, store ports.SnapshotStore, notifier Notifier) AdvanceStatusesCommandHandler {
	return AdvanceStatusesCommandHandler{
		gate:     gate,
		store:    store,
		notifier: notifier,
	}
}

// Handle sweeps all orders and returns how many changed status.
func (h AdvanceStatusesCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	var (
		changed int
		swept   []*order.Order
	)

	err := h.gate.Do(ctx, func() error {
		data, err := h.store.Read(ctx)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, o := range data.Orders {
			if o.Advance(now) {
				changed++
			}
		}

		if changed == 0 {
			return nil
		}

		if err := h.store.Write(ctx, data); err != nil {
			return err
		}

		swept = data.Orders
		return nil
	})
	if err != nil {
		return 0, err
	}

	if changed > 0 {
		h.notifier.OrdersRefresh(ctx, swept)
	}

	return changed, nil
}
