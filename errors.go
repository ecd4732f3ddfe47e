package automata

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownState matches any UnknownStateError
	ErrUnknownState = errors.New("unknown state")
	// ErrIllegalTransition matches any IllegalTransitionError
	ErrIllegalTransition = errors.New("illegal transition")
	// ErrDuplicateState matches any DuplicateStateError
	ErrDuplicateState = errors.New("duplicate state")
	// ErrReservedName is returned when registering a state under DefaultState
	ErrReservedName = errors.New("state name is reserved: " + DefaultState)
	// ErrInvalidState is returned for a nil state or a state without a name
	ErrInvalidState = errors.New("invalid state: state must be non-nil and named")
)

// UnknownStateError is returned when a name is not present in the registry
type UnknownStateError struct {
	Name string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %q", e.Name)
}

func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

// IllegalTransitionError is returned in strict mode when the target is not
// declared in the current state's allowed list
type IllegalTransitionError struct {
	From    string
	To      string
	Allowed []string
}

func (e *IllegalTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("illegal transition from %q to %q: no transitions are declared", e.From, e.To)
	}
	return fmt.Sprintf("illegal transition from %q to %q: allowed targets are %s",
		e.From, e.To, strings.Join(e.Allowed, ", "))
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

// DuplicateStateError is returned in strict registration mode when a name is
// registered twice
type DuplicateStateError struct {
	Name string
}

func (e *DuplicateStateError) Error() string {
	return fmt.Sprintf("state %q is already registered", e.Name)
}

func (e *DuplicateStateError) Is(target error) bool {
	return target == ErrDuplicateState
}

// IsUnknownStateError reports whether err is or wraps an UnknownStateError
func IsUnknownStateError(err error) bool {
	var e *UnknownStateError
	return errors.As(err, &e)
}

// IsIllegalTransitionError reports whether err is or wraps an IllegalTransitionError
func IsIllegalTransitionError(err error) bool {
	var e *IllegalTransitionError
	return errors.As(err, &e)
}

// IsDuplicateStateError reports whether err is or wraps a DuplicateStateError
func IsDuplicateStateError(err error) bool {
	var e *DuplicateStateError
	return errors.As(err, &e)
}
