package ports

import "context"

// Lifecycle event kinds carried by the push transport. The payload is the
// Order JSON for created/updated, the full Order array for refresh, and
// {"orderId": ...} for deleted.
const (
	EventOrderCreated  = "order:created"
	EventOrderUpdated  = "order:updated"
	EventOrderDeleted  = "order:deleted"
	EventOrdersRefresh = "orders:refresh"
)

// EventPublisher pushes one lifecycle event to connected subscribers.
// Delivery is best-effort, at-least-once, with no ordering guarantee across
// distinct publishes as observed by different subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, kind string, payload any) error
}
