package commands

import (
	"errors"
	"fmt"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a paid order. It is
// invoked by the payment-webhook collaborator and is idempotent on the
// external reference, so duplicate webhook deliveries are harmless.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	externalRef string
	items       []order.Item
	total       float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and builds the command. The external
// reference and at least one line item are required, quantities must be
// positive, and the total must be greater than zero.
func NewCreateOrderCommand(externalRef string, items []order.Item, total float64) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExternalRef(externalRef),
		cmd.setItems(items),
		cmd.setTotal(total),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ExternalRef returns the opaque payment-session reference.
func (c CreateOrderCommand) ExternalRef() string {
	return c.externalRef
}

// Items returns the order line items.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// Total returns the monetary total fixed at creation.
func (c CreateOrderCommand) Total() float64 {
	return c.total
}

func (c *CreateOrderCommand) setExternalRef(externalRef string) error {
	if externalRef == "" {
		return errs.NewValueIsRequiredError("externalRef")
	}

	c.externalRef = externalRef
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for i, item := range items {
		if item.Name == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].name", i))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity", i),
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotal(total float64) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%v is not greater than 0", total))
	}

	c.total = total
	return nil
}
