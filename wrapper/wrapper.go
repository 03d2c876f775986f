// Package wrapper gives reference-counted, identity-stable Go handles to resources owned by a native
// compute API (platforms, devices, contexts, queues, programs, ...), plus a per-resource cache of the
// attributes queried from the native API.
//
// The three pieces:
//
//   - Registry: maps a native Handle to its unique Wrapper. Acquire creates the wrapper on first use
//     and bumps the reference count otherwise.
//   - Wrapper: the reference-counted envelope. Release decrements the count and, only for the caller
//     that brings it to zero, releases the native resource, drops the attribute cache, removes the
//     wrapper from the registry and releases the kind-specific fields.
//   - GetInfo: queries an attribute once (the native two-call size/fill protocol, through a
//     UnaryQuery or BinaryQuery) and caches it in the wrapper until the wrapper is destroyed.
//
// Concrete resource kinds (see package compute) embed a *Wrapper and supply the native release and
// query entry points.
package wrapper

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gomlx/clwrap/status"
	"golang.org/x/sync/singleflight"
	"k8s.io/klog/v2"
)

// Handle is the opaque identity of a resource owned by the native API.
type Handle uintptr

// NullHandle is never a valid native resource.
const NullHandle Handle = 0

// ReleaseFunc releases (decrements the native reference count of) the resource behind a handle.
type ReleaseFunc func(h Handle) status.Code

// Wrapper is the reference-counted envelope around one native handle.
//
// Create it with Registry.Acquire, and pair every Acquire or Retain with a Release.
type Wrapper struct {
	handle   Handle
	registry *Registry
	refCount atomic.Int32

	// fields are the kind-specific fields, created by the constructor given to Acquire.
	fields any

	// muInfo protects info, the attribute cache, keyed by parameter (and second handle for
	// binary queries). It is created on the first insertion.
	muInfo  sync.Mutex
	info    map[infoKey]*Info
	queries singleflight.Group
}

// String implements fmt.Stringer.
func (w *Wrapper) String() string {
	if w == nil {
		return "Wrapper(nil)"
	}
	return fmt.Sprintf("Wrapper(%#x)", uintptr(w.handle))
}

// Unwrap returns the native handle. The ownership is not transferred.
// It returns NullHandle for a nil or destroyed wrapper.
func (w *Wrapper) Unwrap() Handle {
	if w == nil {
		return NullHandle
	}
	return w.handle
}

// Fields returns the kind-specific fields created when the wrapper was acquired, or nil.
func (w *Wrapper) Fields() any {
	if w == nil {
		return nil
	}
	return w.fields
}

// RefCount returns the current reference count, or -1 if w is nil. For debugging and testing only.
func (w *Wrapper) RefCount() int {
	if w == nil {
		return -1
	}
	return int(w.refCount.Load())
}

// Retain increments the reference count.
//
// Retaining a nil wrapper, or one that was already destroyed, is a contract violation.
func (w *Wrapper) Retain() error {
	if w == nil {
		return contractViolation("Wrapper.Retain", "nil wrapper")
	}
	if !w.tryRetain() {
		return contractViolation("Wrapper.Retain", "%s was already destroyed", w)
	}
	return nil
}

// tryRetain increments the reference count unless it already reached 0.
func (w *Wrapper) tryRetain() bool {
	for {
		count := w.refCount.Load()
		if count <= 0 {
			return false
		}
		if w.refCount.CompareAndSwap(count, count+1) {
			return true
		}
	}
}

// Release decrements the reference count and destroys the wrapper if it reaches 0.
// It returns whether the wrapper was destroyed, in which case it must not be used anymore.
//
// Only the caller whose decrement reaches 0 destroys the wrapper, in this order:
//
//  1. releaseHandle (if not nil) is called with the native handle. If it fails, an *Error is
//     returned, but the teardown continues.
//  2. The attribute cache is dropped.
//  3. The wrapper is removed from its registry.
//  4. releaseFields (if not nil) is called to release the kind-specific fields.
//  5. The wrapper's own fields are cleared.
//
// Releasing a nil or already destroyed wrapper is a contract violation.
func (w *Wrapper) Release(releaseHandle ReleaseFunc, releaseFields func(w *Wrapper)) (destroyed bool, err error) {
	if w == nil {
		return false, contractViolation("Wrapper.Release", "nil wrapper")
	}
	for {
		count := w.refCount.Load()
		if count <= 0 {
			return false, contractViolation("Wrapper.Release", "%s was already destroyed", w)
		}
		if w.refCount.CompareAndSwap(count, count-1) {
			if count > 1 {
				return false, nil
			}
			break
		}
	}

	klog.V(2).Infof("wrapper: destroying %s", w)
	if releaseHandle != nil {
		if code := releaseHandle(w.handle); !code.Ok() {
			err = NewError("Wrapper.Release", code, "unable to release native object %#x", uintptr(w.handle))
		}
	}

	w.muInfo.Lock()
	w.info = nil
	w.muInfo.Unlock()

	if w.registry != nil {
		w.registry.remove(w)
	}
	if releaseFields != nil {
		releaseFields(w)
	}
	w.fields = nil
	w.registry = nil
	w.handle = NullHandle
	return true, err
}
