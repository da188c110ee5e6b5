package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for a zero-value object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created through
// their designated constructor functions. A zero-value struct fails Validate,
// which distinguishes properly constructed objects from accidental zero values.
//
// Example usage:
//
//	type CleanupOrdersCommand struct {
//	    daysOld int
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCleanupOrdersCommand(daysOld int) (CleanupOrdersCommand, error) {
//	    if daysOld < 1 {
//	        return CleanupOrdersCommand{}, errs.NewValueIsOutOfRangeError("daysOld", daysOld, 1, 365)
//	    }
//	    return CleanupOrdersCommand{daysOld: daysOld, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CleanupOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrCleanupOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it in the
// constructor of every guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor,
// otherwise the provided error (or ErrDefaultConstructorGuard when err is nil).
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
