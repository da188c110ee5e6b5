package queries

import (
	"errors"
	"math"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders from the snapshot, newest first.
//
// The query can narrow the result to a set of statuses and cap the number of
// returned orders. When no explicit statuses are given, delivered orders are
// excluded unless includeCompleted is set.
type GetOrdersQuery struct {
	statuses         []order.Status
	includeCompleted bool
	limit            int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list.
// Statuses may be empty; limit zero means no cap.
func NewGetOrdersQuery(statuses []order.Status, includeCompleted bool, limit int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := q.setStatuses(statuses); err != nil {
		return GetOrdersQuery{}, err
	}
	if err := q.setLimit(limit); err != nil {
		return GetOrdersQuery{}, err
	}
	q.includeCompleted = includeCompleted

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Statuses returns the status filter, which may be empty.
func (q GetOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// IncludeCompleted reports whether delivered orders are part of the result.
func (q GetOrdersQuery) IncludeCompleted() bool {
	return q.includeCompleted
}

// Limit returns the maximum number of orders to return, zero meaning all.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

func (q *GetOrdersQuery) setStatuses(statuses []order.Status) error {
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	q.statuses = statuses
	return nil
}

func (q *GetOrdersQuery) setLimit(limit int) error {
	if limit < 0 {
		return errs.NewValueIsOutOfRangeError("limit", limit, 0, math.MaxInt)
	}
	q.limit = limit
	return nil
}
