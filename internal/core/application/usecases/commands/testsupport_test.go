package commands_test

import (
	"context"
	"sync"
	"time"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/lock"
)

// memStore is an in-memory SnapshotStore for handler tests.
type memStore struct {
	mu       sync.Mutex
	data     *order.Data
	writes   int
	readErr  error
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{data: order.NewData()}
}

func (s *memStore) Read(_ context.Context) (*order.Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.data, nil
}

func (s *memStore) Write(_ context.Context, data *order.Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	data.LastUpdated = time.Now().UTC()
	s.data = data
	s.writes++
	return nil
}

func (s *memStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// recordingNotifier captures emitted events for assertions.
type recordingNotifier struct {
	mu         sync.Mutex
	created    []*order.Order
	updated    []*order.Order
	deletedIDs []string
	refreshes  [][]*order.Order
}

func (n *recordingNotifier) OrderCreated(_ context.Context, o *order.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, o)
}

func (n *recordingNotifier) OrderUpdated(_ context.Context, o *order.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updated = append(n.updated, o)
}

func (n *recordingNotifier) OrderDeleted(_ context.Context, orderID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.deletedIDs = append(n.deletedIDs, orderID)
}

func (n *recordingNotifier) OrdersRefresh(_ context.Context, orders []*order.Order) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.refreshes = append(n.refreshes, orders)
}

func newGate() *lock.Gate {
	return lock.NewGate(5 * time.Second)
}

func testItems() []order.Item {
	return []order.Item{
		{ID: 1, Name: "Margherita", Description: "Tomato, mozzarella, basil", Emoji: "🍕", Quantity: 1, Price: "12.50"},
	}
}
