package order

import (
	"math/rand/v2"
	"time"
)

// Estimated-ready offset: creation time plus 30-45 minutes.
const (
	estimateBase = 30 * time.Minute
	estimateSpan = 16 // random whole minutes added on top of the base
)

// Item is one line item of an order. Items are immutable after creation.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

// Order is one customer order.
//
// Invariants:
//   - ID is the opaque external reference (payment-session id), immutable and
//     unique; creation is idempotent on it.
//   - OrderNumber is the human-readable display id ("ORD-NNN"), immutable once
//     assigned, strictly increasing across orders and never reused.
//   - Items and Total are fixed at creation.
//   - UpdatedAt is refreshed on every mutation.
//   - Once ManualOverride is set the automatic sweep never touches the order
//     again.
type Order struct {
	ID             string    `json:"id"`
	OrderNumber    string    `json:"orderNumber"`
	Items          []Item    `json:"items"`
	Total          float64   `json:"total"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	EstimatedReady time.Time `json:"estimatedReady"`
	ManualOverride bool      `json:"manualOverride,omitempty"`
}

// NewOrder creates an order in preparing status with both timestamps set to
// now and an estimated-ready time 30-45 minutes out. The estimate is
// informational only and never drives transitions.
func NewOrder(externalRef, orderNumber string, items []Item, total float64, now time.Time) *Order {
	return &Order{
		ID:             externalRef,
		OrderNumber:    orderNumber,
		Items:          items,
		Total:          total,
		Status:         Preparing,
		CreatedAt:      now,
		UpdatedAt:      now,
		EstimatedReady: now.Add(estimateBase + time.Duration(rand.IntN(estimateSpan))*time.Minute),
	}
}

// Matches reports whether identifier refers to this order by either its
// external reference or its display number.
func (o *Order) Matches(identifier string) bool {
	return o.ID == identifier || o.OrderNumber == identifier
}

// Advance applies the time-driven transition for the elapsed age of the
// order, if any. Delivered orders and manually overridden orders are never
// advanced. Returns true when the status actually changed.
func (o *Order) Advance(now time.Time) bool {
	if o.Status.IsTerminal() || o.ManualOverride {
		return false
	}

	next := o.Status.AdvancedBy(now.Sub(o.CreatedAt))
	if next == o.Status {
		return false
	}

	o.Status = next
	o.UpdatedAt = now
	return true
}

// Override sets the status explicitly and freezes the order against the
// automatic sweep permanently. Any valid status is accepted, including
// regressions.
func (o *Order) Override(status Status, now time.Time) {
	o.Status = status
	o.UpdatedAt = now
	o.ManualOverride = true
}
