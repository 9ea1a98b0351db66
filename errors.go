package whisparg

import (
	"fmt"
)

// ErrorKind classifies resolution failures so callers can react to them
// without matching on message text.
type ErrorKind int

const (
	// MissingValue means a non-flag switch matched but no value token
	// followed it.
	MissingValue ErrorKind = iota + 1
	// RequiredMissing means a required argument was never supplied. A default
	// value does not bypass this.
	RequiredMissing
	// InvalidValue means the captured value token could not be converted to
	// the argument's type. The conversion cause is available via Unwrap.
	InvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case MissingValue:
		return "missing value"
	case RequiredMissing:
		return "required missing"
	case InvalidValue:
		return "invalid value"
	}
	return "unknown"
}

// Error is the failure type returned by Resolve, ResolveFunc, Parse, and
// ParseFunc. There is no runtime kind for unsupported value types: the
// Builtin constraint rejects those at compile time, and custom types must
// come with an explicit ConvertFunc.
type Error struct {
	Kind ErrorKind
	Name string // long name of the argument
	Err  error  // conversion cause, set for InvalidValue
}

func (e *Error) Error() string {
	switch e.Kind {
	case MissingValue:
		return fmt.Sprintf("argument %q requires a value", e.Name)
	case RequiredMissing:
		return fmt.Sprintf("argument %q is required", e.Name)
	case InvalidValue:
		return fmt.Sprintf("failed to parse the argument %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("argument %q: unknown error", e.Name)
}

func (e *Error) Unwrap() error {
	return e.Err
}
