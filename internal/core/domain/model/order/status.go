package order

import (
	"fmt"
	"time"

	"orderboard/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Automatic state transitions are driven by the time elapsed since creation:
//
//	preparing ──> baking ──> out_for_delivery ──> delivered
//	  (0-5m)      (5-10m)        (10-20m)           (20m+)
//
// delivered is terminal under automation. Explicit overrides accept any valid
// member, including regressions, to allow manual correction from the board.
type Status string

const (
	Preparing      Status = "preparing"
	Baking         Status = "baking"
	OutForDelivery Status = "out_for_delivery"
	Delivered      Status = "delivered"
)

// Elapsed-time thresholds for automatic advancement.
const (
	bakingAfter         = 5 * time.Minute
	outForDeliveryAfter = 10 * time.Minute
	deliveredAfter      = 20 * time.Minute
)

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Preparing, Baking, OutForDelivery, Delivered}
}

// ParseStatus converts a raw string into a Status, failing for anything
// outside the enumeration.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks the status is a member of the enumeration.
func (s Status) Validate() error {
	switch s {
	case Preparing, Baking, OutForDelivery, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether automation is done with this status.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// AdvancedBy returns the status an order should hold after the given time
// since creation. Thresholds are evaluated highest-first and only the first
// match applies; when no threshold fires the current status is returned.
func (s Status) AdvancedBy(elapsed time.Duration) Status {
	switch {
	case elapsed >= deliveredAfter:
		return Delivered
	case elapsed >= outForDeliveryAfter && s != OutForDelivery && s != Delivered:
		return OutForDelivery
	case elapsed >= bakingAfter && s == Preparing:
		return Baking
	}
	return s
}
