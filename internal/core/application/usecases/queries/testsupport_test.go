package queries_test

import (
	"context"
	"time"

	"orderboard/internal/core/domain/model/order"
)

type memStore struct {
	data    *order.Data
	readErr error
}

func newMemStore() *memStore {
	return &memStore{data: order.NewData()}
}

func (s *memStore) Read(_ context.Context) (*order.Data, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.data, nil
}

func (s *memStore) Write(_ context.Context, data *order.Data) error {
	s.data = data
	return nil
}

func (s *memStore) seed(externalRef string, status order.Status, createdAt time.Time) *order.Order {
	items := []order.Item{{ID: 1, Name: "Margherita", Quantity: 1, Price: "12.00"}}
	o := order.NewOrder(externalRef, s.data.NextNumber(), items, 12.00, createdAt)
	o.Status = status
	s.data.Append(o)
	return o
}
