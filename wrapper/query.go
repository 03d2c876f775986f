package wrapper

import "github.com/gomlx/clwrap/status"

// InfoFunc is a native attribute query entry point. It has exactly two implementations:
// UnaryQuery, for attributes of one resource, and BinaryQuery, for attributes defined
// over a pair of resources (e.g. the build log of a program for one of its devices).
//
// Both follow the native two-call protocol: called with a nil value, only the required size
// in bytes is written to sizeRet; called with a value of that size, the attribute is copied into it.
// sizeRet may be nil.
type InfoFunc interface {
	call(w1, w2 *Wrapper, param uint32, value []byte, sizeRet *int) status.Code
	relational() bool
	isNil() bool
}

// UnaryQuery queries an attribute of one native resource.
type UnaryQuery func(h Handle, param uint32, value []byte, sizeRet *int) status.Code

func (fn UnaryQuery) call(w1, _ *Wrapper, param uint32, value []byte, sizeRet *int) status.Code {
	return fn(w1.handle, param, value, sizeRet)
}

func (fn UnaryQuery) relational() bool { return false }
func (fn UnaryQuery) isNil() bool      { return fn == nil }

// BinaryQuery queries an attribute of the first native resource relative to the second one.
type BinaryQuery func(h1, h2 Handle, param uint32, value []byte, sizeRet *int) status.Code

func (fn BinaryQuery) call(w1, w2 *Wrapper, param uint32, value []byte, sizeRet *int) status.Code {
	return fn(w1.handle, w2.handle, param, value, sizeRet)
}

func (fn BinaryQuery) relational() bool { return true }
func (fn BinaryQuery) isNil() bool      { return fn == nil }

// checkQuery validates that fn can be called with the given wrappers.
func checkQuery(op string, w1, w2 *Wrapper, fn InfoFunc) error {
	switch {
	case w1 == nil:
		return contractViolation(op, "nil wrapper")
	case fn == nil || fn.isNil():
		return contractViolation(op, "nil query function")
	case fn.relational() && w2 == nil:
		return contractViolation(op, "binary query on %s requires a second wrapper", w1)
	case !fn.relational() && w2 != nil:
		return contractViolation(op, "unary query on %s given a second wrapper %s", w1, w2)
	case w1.refCount.Load() <= 0:
		return contractViolation(op, "%s was already destroyed", w1)
	case w2 != nil && w2.refCount.Load() <= 0:
		return contractViolation(op, "second wrapper %s was already destroyed", w2)
	}
	return nil
}
