package flagengine

import "fmt"

// UnknownFlagError is returned when no configuration is registered under the
// requested flag name.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag %q", e.Name)
}

// DuplicateFlagError is returned when a snapshot is compiled from two
// configurations with the same name.
type DuplicateFlagError struct {
	Name string
}

func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("duplicate flag %q", e.Name)
}
