package commands

import (
	"errors"

	"orderboard/internal/pkg/guard"
)

var ErrAdvanceStatusesCommandIsNotConstructed = errors.New(
	"AdvanceStatusesCommand must be created via NewAdvanceStatusesCommand constructor",
)

// AdvanceStatusesCommand requests one sweep of the time-driven state
// machine over every order. The sweep is idempotent: running it twice in
// immediate succession changes nothing the second time.
type AdvanceStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceStatusesCommand builds the command. It carries no parameters;
// the thresholds are fixed properties of the lifecycle.
func NewAdvanceStatusesCommand() AdvanceStatusesCommand {
	return AdvanceStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusesCommandIsNotConstructed)
}
