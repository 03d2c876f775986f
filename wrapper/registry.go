package wrapper

import (
	"maps"
	"slices"
	"sync"

	"k8s.io/klog/v2"
)

// Registry maps native handles to their wrappers, so that wrapping the same native resource twice
// yields the same Wrapper (with its reference count incremented) instead of a duplicate.
//
// The table is created on the first acquisition and dropped as soon as it becomes empty again, so
// IsEmpty is true exactly when no wrapper is alive.
//
// All access goes through one mutex, so lookup-then-insert and remove-then-collapse are atomic.
// The reference counts themselves are not protected by it.
type Registry struct {
	mu       sync.Mutex
	wrappers map[Handle]*Wrapper // nil when empty.
}

// Default is the process-wide registry used by Acquire and AllReleased.
var Default = NewRegistry()

// NewRegistry creates an empty Registry. Most users want the process-wide Default registry,
// a private one is mostly useful for tests.
func NewRegistry() *Registry {
	return &Registry{}
}

// Acquire returns the wrapper for handle in the Default registry, creating it if needed.
// See Registry.Acquire.
func Acquire(handle Handle, newFields func(w *Wrapper) any) (*Wrapper, error) {
	return Default.Acquire(handle, newFields)
}

// AllReleased returns whether every wrapper of the Default registry has been destroyed.
//
// It is a coarse whole-process leak check meant for tests and for the end of programs: it doesn't
// say which wrappers leaked (see Registry.Live for that).
func AllReleased() bool {
	return Default.AllReleased()
}

// Acquire returns the wrapper for handle, creating it if it doesn't exist yet, and increments its
// reference count. The caller owns one reference and must eventually call Wrapper.Release.
//
// newFields (it can be nil) is called only when the wrapper is created, while the registry is
// locked, to build the kind-specific fields of the resource (see Wrapper.Fields). It must not call
// back into the registry.
//
// A NullHandle is a contract violation.
func (r *Registry) Acquire(handle Handle, newFields func(w *Wrapper) any) (*Wrapper, error) {
	if handle == NullHandle {
		return nil, contractViolation("Registry.Acquire", "null handle")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.wrappers == nil {
		r.wrappers = make(map[Handle]*Wrapper)
	}
	if w, found := r.wrappers[handle]; found && w.tryRetain() {
		return w, nil
	}

	// Either a new handle, or the previous wrapper reached 0 references and is being torn down
	// by a concurrent Release: in both cases the handle gets a fresh wrapper.
	w := &Wrapper{handle: handle, registry: r}
	w.refCount.Store(1)
	if newFields != nil {
		w.fields = newFields(w)
	}
	r.wrappers[handle] = w
	klog.V(2).Infof("wrapper: created %s", w)
	return w, nil
}

// AcquireAs is a typed version of Registry.Acquire, for kinds that keep their Go object as the
// wrapper fields: it returns the fields of the found-or-created wrapper.
//
// If handle is already wrapped with fields of another type, the reference just taken is given back
// and an error wrapping ErrContract is returned.
func AcquireAs[T any](r *Registry, handle Handle, newT func(w *Wrapper) T) (t T, err error) {
	var w *Wrapper
	w, err = r.Acquire(handle, func(w *Wrapper) any { return newT(w) })
	if err != nil {
		return
	}
	var ok bool
	t, ok = w.Fields().(T)
	if !ok {
		fields := w.Fields()
		if _, relErr := w.Release(nil, nil); relErr != nil {
			klog.Errorf("Failed to give back reference to %s: %+v", w, relErr)
		}
		err = contractViolation("AcquireAs", "%s holds %T, not %T", w, fields, t)
	}
	return
}

// remove is called by the teardown of w, once its reference count reached 0.
func (r *Registry) remove(w *Wrapper) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// The handle may have been re-acquired (with a new wrapper) while w was being torn down.
	if current, found := r.wrappers[w.handle]; found && current == w {
		delete(r.wrappers, w.handle)
	}
	if len(r.wrappers) == 0 {
		r.wrappers = nil
	}
}

// IsEmpty returns whether the registry holds no wrapper (never used, or every wrapper was destroyed).
func (r *Registry) IsEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wrappers == nil
}

// AllReleased returns whether every wrapper of the registry has been destroyed.
func (r *Registry) AllReleased() bool {
	return r.IsEmpty()
}

// Len returns the number of live wrappers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.wrappers)
}

// Live returns the handles of the live wrappers, sorted. Used to report leaks.
func (r *Registry) Live() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.wrappers))
}

// Lookup returns the live wrapper for handle, without changing its reference count.
func (r *Registry) Lookup(handle Handle) (w *Wrapper, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, found = r.wrappers[handle]
	return
}
