package commands

import (
	"errors"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand requests removal of a single order from the admin
// surface, regardless of its status.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	identifier string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates and builds the command.
func NewDeleteOrderCommand(identifier string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setIdentifier(identifier); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Identifier returns the order lookup key.
func (c DeleteOrderCommand) Identifier() string {
	return c.identifier
}

func (c *DeleteOrderCommand) setIdentifier(identifier string) error {
	if identifier == "" {
		return errs.NewValueIsRequiredError("identifier")
	}

	c.identifier = identifier
	return nil
}
