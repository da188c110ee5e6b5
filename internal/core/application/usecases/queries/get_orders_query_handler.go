package queries

import (
	"context"
	"sort"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
)

// GetOrdersQueryHandler reads the order list straight from the snapshot store.
// Reads do not take the write gate; a concurrent writer only ever swaps in a
// fully written snapshot, so the worst case is a slightly stale list.
type GetOrdersQueryHandler struct {
	store ports.SnapshotStore
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(store ports.SnapshotStore) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{store: store}
}

// Handle returns the filtered order list, newest created first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := h.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(data.Orders))
	for _, o := range data.Orders {
		if !matchesFilter(o, query) {
			continue
		}
		orders = append(orders, o)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	if query.Limit() > 0 && len(orders) > query.Limit() {
		orders = orders[:query.Limit()]
	}

	return orders, nil
}

// matchesFilter applies the status filter first; the delivered exclusion
// still holds afterwards, so even a filter naming delivered returns nothing
// without includeCompleted.
func matchesFilter(o *order.Order, query GetOrdersQuery) bool {
	if statuses := query.Statuses(); len(statuses) > 0 {
		matched := false
		for _, s := range statuses {
			if o.Status == s {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if !query.IncludeCompleted() && o.Status == order.Delivered {
		return false
	}

	return true
}
