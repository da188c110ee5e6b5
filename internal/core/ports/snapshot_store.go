// Package ports defines the outbound interfaces the application core depends
// on. Adapters under internal/adapters/out provide the implementations.
package ports

import (
	"context"

	"orderboard/internal/core/domain/model/order"
)

// SnapshotStore is durable keyed storage for the whole order aggregate.
// There are no partial-field updates: every mutation round-trips through a
// read-modify-write of the full document.
type SnapshotStore interface {
	// Read returns the current persisted snapshot. A missing or unreadable
	// document degrades to a fresh empty aggregate; corruption is logged by
	// the implementation, never raised.
	Read(ctx context.Context) (*order.Data, error)

	// Write persists the full snapshot atomically, keeping the previous
	// document as a backup. Implementations refresh LastUpdated before
	// persisting.
	Write(ctx context.Context, data *order.Data) error
}
