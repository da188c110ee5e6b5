package commands

import (
	"errors"

	"orderboard/internal/pkg/errs"
	"orderboard/internal/pkg/guard"
)

var ErrCleanupOrdersCommandIsNotConstructed = errors.New(
	"CleanupOrdersCommand must be created via NewCleanupOrdersCommand constructor",
)

// Retention bounds for cleanup. Orders are never removed while younger than
// one day; anything beyond a year is clamped out as a caller mistake.
const (
	minCleanupDays = 1
	maxCleanupDays = 365
)

// CleanupOrdersCommand requests removal of delivered orders past the
// retention age. Non-delivered orders are retained regardless of age.
type CleanupOrdersCommand struct { //nolint:recvcheck //using for validation
	daysOld int

	guard guard.ConstructorGuard
}

// NewCleanupOrdersCommand validates and builds the command.
func NewCleanupOrdersCommand(daysOld int) (CleanupOrdersCommand, error) {
	cmd := CleanupOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDaysOld(daysOld); err != nil {
		return CleanupOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCleanupOrdersCommandIsNotConstructed)
}

// DaysOld returns the retention age in days.
func (c CleanupOrdersCommand) DaysOld() int {
	return c.daysOld
}

func (c *CleanupOrdersCommand) setDaysOld(daysOld int) error {
	if daysOld < minCleanupDays || daysOld > maxCleanupDays {
		return errs.NewValueIsOutOfRangeError("daysOld", daysOld, minCleanupDays, maxCleanupDays)
	}

	c.daysOld = daysOld
	return nil
}
