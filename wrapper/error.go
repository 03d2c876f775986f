package wrapper

import (
	"fmt"

	"github.com/gomlx/clwrap/status"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	// ErrContract is the cause of every error caused by a programming error in the caller:
	// a null handle, a nil wrapper, a query function that doesn't match the wrappers given,
	// a handle wrapped as two different kinds, or using a wrapper that was already destroyed.
	//
	// These are logged as soon as they are detected, and the call returns a neutral value.
	ErrContract = errors.New("wrapper contract violation")

	// ErrEmptyInfo is the cause of the error returned when the native API reports a size of 0 bytes
	// for a queried attribute.
	ErrEmptyInfo = errors.New("native API reported an empty attribute")
)

// Error is returned when a call to the native API fails.
//
// It carries the native status code (status.Success if the failure was detected on the Go side,
// e.g. an empty attribute) and a description of what was attempted.
type Error struct {
	Op   string
	Code status.Code
	Msg  string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code.Ok() {
		return fmt.Sprintf("%s: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("%s: %s (native error %s)", e.Op, e.Msg, e.Code.Describe())
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// NewError creates an *Error for a failed native call, with a stack trace.
func NewError(op string, code status.Code, format string, args ...any) error {
	return errors.WithStack(&Error{Op: op, Code: code, Msg: fmt.Sprintf(format, args...)})
}

// contractViolation logs and returns an error wrapping ErrContract.
func contractViolation(op, format string, args ...any) error {
	err := errors.WithMessagef(ErrContract, "%s: %s", op, fmt.Sprintf(format, args...))
	klog.Errorf("%v", err)
	return err
}

// CodeOf returns the native status code carried by err, or status.Success if err is nil or doesn't
// carry one.
func CodeOf(err error) status.Code {
	var wErr *Error
	if errors.As(err, &wErr) {
		return wErr.Code
	}
	return status.Success
}
