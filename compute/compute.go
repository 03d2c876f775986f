// Package compute wraps the resources of the native compute runtime (package driver): platforms,
// devices, contexts, command queues and programs.
//
// Each resource kind embeds a *wrapper.Wrapper acquired from wrapper.Default, so wrapping the same
// native handle twice returns the same Go object with its reference count incremented. Every
// New*/Wrap* call (and every Retain) must be paired with a Destroy: the native resource is only
// released by the last one.
//
// Attributes are queried lazily and cached in the wrapper; see Info and the typed Info* getters.
//
// Example:
//
//	platforms := must.M1(compute.NewPlatforms(driver.Default()))
//	defer platforms.Destroy()
//	for _, platform := range platforms.All() {
//		fmt.Println(must.M1(platform.Name()))
//	}
package compute

import (
	"fmt"

	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/status"
	"github.com/gomlx/clwrap/wrapper"
	"k8s.io/klog/v2"
)

// object is the part common to all resource kinds.
type object struct {
	*wrapper.Wrapper
	api   *driver.API
	kind  string
	query wrapper.UnaryQuery
}

func newObject(w *wrapper.Wrapper, api *driver.API, kind string, query func(driver.Handle, uint32, []byte, *int) status.Code) object {
	return object{
		Wrapper: w,
		api:     api,
		kind:    kind,
		query: func(h wrapper.Handle, param uint32, value []byte, sizeRet *int) status.Code {
			return query(driver.Handle(h), param, value, sizeRet)
		},
	}
}

// releaser adapts a driver release entry point to a wrapper.ReleaseFunc.
func releaser(release func(driver.Handle) status.Code) wrapper.ReleaseFunc {
	return func(h wrapper.Handle) status.Code {
		return release(driver.Handle(h))
	}
}

// String implements fmt.Stringer.
func (o *object) String() string {
	return fmt.Sprintf("%s(%#x)", o.kind, uintptr(o.Unwrap()))
}

// API returns the native runtime that owns the resource.
func (o *object) API() *driver.API {
	return o.api
}

// Handle returns the native handle. The ownership is not transferred.
func (o *object) Handle() driver.Handle {
	return driver.Handle(o.Unwrap())
}

// Info returns the attribute param of the resource, querying the native runtime only the first time.
func (o *object) Info(param uint32) (*wrapper.Info, error) {
	return wrapper.GetInfo(o.Wrapper, nil, param, o.query, true)
}

// RefreshInfo queries the attribute param from the native runtime, even if it is already cached,
// and replaces the cached value.
func (o *object) RefreshInfo(param uint32) (*wrapper.Info, error) {
	return wrapper.GetInfo(o.Wrapper, nil, param, o.query, false)
}

// InfoValue returns the raw bytes of the attribute param. They are owned by the resource's cache
// and must not be modified.
func (o *object) InfoValue(param uint32) ([]byte, error) {
	return wrapper.GetInfoValue(o.Wrapper, nil, param, o.query, true)
}

// InfoSize returns the size in bytes of the attribute param.
func (o *object) InfoSize(param uint32) (int, error) {
	return wrapper.GetInfoSize(o.Wrapper, nil, param, o.query, true)
}

// InfoString returns a string attribute.
func (o *object) InfoString(param uint32) (string, error) {
	info, err := o.Info(param)
	if err != nil {
		return "", err
	}
	return wrapper.StringOf(info), nil
}

// InfoUint32 returns a 32-bit unsigned integer attribute.
func (o *object) InfoUint32(param uint32) (uint32, error) {
	return infoAs[uint32](o, param)
}

// InfoUint64 returns a 64-bit unsigned integer attribute.
func (o *object) InfoUint64(param uint32) (uint64, error) {
	return infoAs[uint64](o, param)
}

// InfoSizeT returns a size_t (pointer-sized) attribute.
func (o *object) InfoSizeT(param uint32) (uint64, error) {
	v, err := infoAs[uintptr](o, param)
	return uint64(v), err
}

// InfoBool returns a boolean attribute (a 32-bit integer natively).
func (o *object) InfoBool(param uint32) (bool, error) {
	v, err := infoAs[uint32](o, param)
	return v != 0, err
}

// InfoSizeTSlice returns a list of size_t attribute.
func (o *object) InfoSizeTSlice(param uint32) ([]uint64, error) {
	info, err := o.Info(param)
	if err != nil {
		return nil, err
	}
	return sizeTs(info)
}

// infoHandles returns an attribute that is a list of native handles.
func (o *object) infoHandles(param uint32) ([]driver.Handle, error) {
	info, err := o.Info(param)
	if err != nil {
		return nil, err
	}
	return handlesOf(info)
}

func infoAs[T wrapper.Scalar](o *object, param uint32) (value T, err error) {
	var info *wrapper.Info
	info, err = o.Info(param)
	if err != nil {
		return
	}
	return wrapper.ValueAs[T](info)
}

func sizeTs(info *wrapper.Info) ([]uint64, error) {
	values, err := wrapper.ValuesAs[uintptr](info)
	if err != nil {
		return nil, err
	}
	sizes := make([]uint64, len(values))
	for ii, v := range values {
		sizes[ii] = uint64(v)
	}
	return sizes, nil
}

func handlesOf(info *wrapper.Info) ([]driver.Handle, error) {
	values, err := wrapper.ValuesAs[uintptr](info)
	if err != nil {
		return nil, err
	}
	handles := make([]driver.Handle, len(values))
	for ii, v := range values {
		handles[ii] = driver.Handle(v)
	}
	return handles, nil
}

// destroyer is implemented by all the kinds of resources.
type destroyer interface {
	fmt.Stringer
	Destroy() error
}

// undo destroys the references taken by op before it failed, logging failures.
func undo(op string, objs ...destroyer) {
	for _, obj := range objs {
		if err := obj.Destroy(); err != nil {
			klog.Errorf("%s: failed to destroy %s: %+v", op, obj, err)
		}
	}
}

// destroyAll destroys the given devices (owned by another resource), logging failures.
func destroyAll(owner fmt.Stringer, devices []*Device) {
	for _, d := range devices {
		if err := d.Destroy(); err != nil {
			klog.Errorf("Failed to destroy %s owned by %s: %+v", d, owner, err)
		}
	}
}
