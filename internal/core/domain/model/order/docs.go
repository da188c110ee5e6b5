// Package order contains the order aggregate: the Order entity with its
// line items, the Status lifecycle enumeration, and the Data aggregate root
// that is persisted as one snapshot document.
//
// The lifecycle is time-driven. Orders start in preparing and are advanced by
// the sweep through baking and out_for_delivery to delivered based on minutes
// elapsed since creation. An explicit status override freezes an order against
// the sweep permanently via the ManualOverride flag.
//
// All mutation of the aggregate happens through the command handlers in
// internal/core/application/usecases/commands, which serialize access through
// the process-wide gate.
package order
