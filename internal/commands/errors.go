package commands

import "fmt"

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input or usage. The
// dispatcher converts them to reply text; they never propagate past it.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// ConfigurationError indicates a registration-time wiring bug, such as
// aliasing a verb that was never registered. It is raised at startup and is
// not recoverable.
type ConfigurationError struct {
	Alias  string
	Target string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cannot create alias %q for unknown command %q", e.Alias, e.Target)
}
