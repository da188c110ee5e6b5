package commands

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies an explicit status override. The
// order is permanently frozen against the automatic sweep afterwards.
type UpdateOrderStatusCommandHandler struct {
	gate     Gate
	store    ports.SnapshotStore
	notifier Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status overrides.
func NewUpdateOrderStatusCommandHandler(gate Gate, store ports.SnapshotStore, notifier Notifier) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		gate:     gate,
		store:    store,
		notifier: notifier,
	}
}

// Handle locates the order, overrides its status, persists, and emits
// order:updated. Fails with errs.ErrObjectNotFound for unknown identifiers.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *order.Order

	err := h.gate.Do(ctx, func() error {
		data, err := h.store.Read(ctx)
		if err != nil {
			return err
		}

		o := data.Find(cmd.Identifier())
		if o == nil {
			return errs.NewObjectNotFoundError("order", cmd.Identifier())
		}

		o.Override(cmd.Status(), time.Now().UTC())

		if err := h.store.Write(ctx, data); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.OrderUpdated(ctx, updated)
	return updated, nil
}
