package order

import (
	"fmt"
	"time"
)

// Data is the aggregate root persisted as a single snapshot document: the
// insertion-ordered list of orders plus the display-number counter.
//
// Invariants:
//   - NextOrderNumber is strictly greater than every numeric suffix already
//     assigned.
//   - No two orders share an ID or an OrderNumber.
type Data struct {
	Orders          []*Order  `json:"orders"`
	LastUpdated     time.Time `json:"lastUpdated"`
	NextOrderNumber int       `json:"nextOrderNumber"`
}

// NewData returns the fresh empty aggregate used when no snapshot has been
// persisted yet.
func NewData() *Data {
	return &Data{
		Orders:          []*Order{},
		NextOrderNumber: 1,
	}
}

// NextNumber formats the display number the counter currently points at,
// zero-padded to at least three digits.
func (d *Data) NextNumber() string {
	return fmt.Sprintf("ORD-%03d", d.NextOrderNumber)
}

// Find returns the order matching the identifier (external reference or
// display number), or nil.
func (d *Data) Find(identifier string) *Order {
	for _, o := range d.Orders {
		if o.Matches(identifier) {
			return o
		}
	}
	return nil
}

// Append adds a freshly created order and consumes its display number.
func (d *Data) Append(o *Order) {
	d.Orders = append(d.Orders, o)
	d.NextOrderNumber++
}

// Remove deletes the order matching the identifier and returns it, or nil
// when nothing matched.
func (d *Data) Remove(identifier string) *Order {
	for i, o := range d.Orders {
		if o.Matches(identifier) {
			d.Orders = append(d.Orders[:i], d.Orders[i+1:]...)
			return o
		}
	}
	return nil
}
