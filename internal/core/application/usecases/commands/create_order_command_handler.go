package commands

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// CreateOrderCommandHandler registers paid orders. If an order with the same
// external reference already exists it is returned unchanged, guarding
// against duplicate delivery of the triggering webhook event. A fresh order
// gets the next display number, preparing status, and a 30-45 minute
// estimated-ready time.
type CreateOrderCommandHandler struct {
	gate     Gate
	store    ports.SnapshotStore
	notifier Notifier
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(gate Gate, store ports.SnapshotStore, notifier Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		gate:     gate,
		store:    store,
		notifier: notifier,
	}
}

// Handle processes the command. The returned bool reports whether a new
// order was actually created; order:created is emitted only in that case.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, bool, error) {
	if err := cmd.Validate(); err != nil {
		return nil, false, err
	}

	var (
		result  *order.Order
		created bool
	)

	err := h.gate.Do(ctx, func() error {
		data, err := h.store.Read(ctx)
		if err != nil {
			return err
		}

		if existing := data.Find(cmd.ExternalRef()); existing != nil {
			result = existing
			return nil
		}

		o := order.NewOrder(cmd.ExternalRef(), data.NextNumber(), cmd.Items(), cmd.Total(), time.Now().UTC())
		data.Append(o)

		if err := h.store.Write(ctx, data); err != nil {
			return err
		}

		result = o
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if created {
		h.notifier.OrderCreated(ctx, result)
	}

	return result, created, nil
}
