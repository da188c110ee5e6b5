package queries

import (
	"errors"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by checkout session ID or by the
// human readable order number.
type GetOrderQuery struct {
	identifier string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(identifier string) (GetOrderQuery, error) {
	q := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := q.setIdentifier(identifier); err != nil {
		return GetOrderQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Identifier returns the session ID or order number to look up.
func (q GetOrderQuery) Identifier() string {
	return q.identifier
}

func (q *GetOrderQuery) setIdentifier(identifier string) error {
	if identifier == "" {
		return errs.NewValueIsRequiredError("identifier")
	}
	q.identifier = identifier
	return nil
}
