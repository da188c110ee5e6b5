package queries

import (
	"context"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"
)

// GetOrderQueryHandler looks up a single order in the snapshot store.
type GetOrderQueryHandler struct {
	store ports.SnapshotStore
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(store ports.SnapshotStore) GetOrderQueryHandler {
	return GetOrderQueryHandler{store: store}
}

// Handle returns the order matching the identifier or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := h.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	found := data.Find(query.Identifier())
	if found == nil {
		return nil, errs.NewObjectNotFoundError("identifier", query.Identifier())
	}

	return found, nil
}
