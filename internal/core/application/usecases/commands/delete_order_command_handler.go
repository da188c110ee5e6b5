package commands

import (
	"context"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes one order and announces the removal by
// its external reference.
type DeleteOrderCommandHandler struct {
	gate     Gate
	store    ports.SnapshotStore
	notifier Notifier
}

// NewDeleteOrderCommandHandler creates a handler for admin deletes.
func NewDeleteOrderCommandHandler(gate Gate, store ports.SnapshotStore, notifier Notifier) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		gate:     gate,
		store:    store,
		notifier: notifier,
	}
}

// Handle removes the order, persists, and emits order:deleted. Fails with
// errs.ErrObjectNotFound for unknown identifiers.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var deleted *order.Order

	err := h.gate.Do(ctx, func() error {
		data, err := h.store.Read(ctx)
		if err != nil {
			return err
		}

		o := data.Remove(cmd.Identifier())
		if o == nil {
			return errs.NewObjectNotFoundError("order", cmd.Identifier())
		}

		if err := h.store.Write(ctx, data); err != nil {
			return err
		}

		deleted = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.OrderDeleted(ctx, deleted.ID)
	return deleted, nil
}
