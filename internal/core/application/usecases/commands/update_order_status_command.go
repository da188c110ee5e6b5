package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an explicit status override from the
// kitchen board. Any member of the status enumeration is accepted, including
// regressions; there is no backward-transition guard so staff can correct
// mistakes.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	identifier string
	status     order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates and builds the command. The
// identifier may be an external reference or a display number.
func NewUpdateOrderStatusCommand(identifier string, status order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIdentifier(identifier),
		cmd.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// Identifier returns the order lookup key.
func (c UpdateOrderStatusCommand) Identifier() string {
	return c.identifier
}

// Status returns the requested status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setIdentifier(identifier string) error {
	if identifier == "" {
		return errs.NewValueIsRequiredError("identifier")
	}

	c.identifier = identifier
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
