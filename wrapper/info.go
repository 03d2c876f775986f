package wrapper

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Info holds the raw value of an attribute queried from the native API.
//
// Infos returned by GetInfo are owned by the wrapper cache and live as long as the wrapper:
// don't modify the returned value.
type Info struct {
	value []byte
}

// NewInfo creates an Info with a zero-filled value of the given size. A size of 0 yields an Info
// with a nil value.
func NewInfo(size int) *Info {
	info := &Info{}
	if size > 0 {
		info.value = make([]byte, size)
	}
	return info
}

// Value returns the raw bytes of the attribute. It is owned by the Info, don't change it.
func (info *Info) Value() []byte {
	if info == nil {
		return nil
	}
	return info.value
}

// Size returns the size in bytes of the attribute.
func (info *Info) Size() int {
	if info == nil {
		return 0
	}
	return len(info.value)
}

// infoKey identifies an attribute in the cache: secondary is the handle of the second wrapper of a
// binary query, or NullHandle.
type infoKey struct {
	param     uint32
	secondary Handle
}

func (k infoKey) String() string {
	if k.secondary == NullHandle {
		return fmt.Sprintf("0x%X", k.param)
	}
	return fmt.Sprintf("0x%X@%#x", k.param, uintptr(k.secondary))
}

// GetInfo returns the attribute param of the resource wrapped by w1 -- or, for a BinaryQuery, of w1
// relative to w2 (w2 must be nil for a UnaryQuery).
//
// If useCache is true and the attribute was queried before, the cached Info is returned without
// calling the native API. Otherwise fn is called twice: first to probe the size (a size of 0 is an
// error wrapping ErrEmptyInfo), then to fill a new Info, which is stored in w1's cache (replacing any
// previous value) and returned.
//
// Attributes of a BinaryQuery are cached per second wrapper, so the same param queried relative to
// different w2 yields separate entries.
//
// On error nothing is cached. The returned Info lives as long as w1.
func GetInfo(w1, w2 *Wrapper, param uint32, fn InfoFunc, useCache bool) (*Info, error) {
	if err := checkQuery("GetInfo", w1, w2, fn); err != nil {
		return nil, err
	}
	key := infoKey{param: param, secondary: w2.Unwrap()}
	if !useCache {
		return w1.queryInfo(w2, key, fn)
	}
	if info, found := w1.cachedInfo(key); found {
		return info, nil
	}
	// Concurrent misses of the same attribute share one native query.
	v, err, _ := w1.queries.Do(key.String(), func() (any, error) {
		if info, found := w1.cachedInfo(key); found {
			return info, nil
		}
		return w1.queryInfo(w2, key, fn)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Info), nil
}

// GetInfoValue is like GetInfo, but returns only the raw value. It returns nil on error.
func GetInfoValue(w1, w2 *Wrapper, param uint32, fn InfoFunc, useCache bool) ([]byte, error) {
	info, err := GetInfo(w1, w2, param, fn, useCache)
	if err != nil {
		return nil, err
	}
	return info.Value(), nil
}

// GetInfoSize is like GetInfo, but returns only the size in bytes of the value. It returns 0 on error.
func GetInfoSize(w1, w2 *Wrapper, param uint32, fn InfoFunc, useCache bool) (int, error) {
	info, err := GetInfo(w1, w2, param, fn, useCache)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// cachedInfo returns the cached Info for key, if present.
func (w *Wrapper) cachedInfo(key infoKey) (info *Info, found bool) {
	w.muInfo.Lock()
	defer w.muInfo.Unlock()
	info, found = w.info[key]
	return
}

// addInfo stores info in the cache, replacing any previous value.
func (w *Wrapper) addInfo(key infoKey, info *Info) {
	w.muInfo.Lock()
	defer w.muInfo.Unlock()
	if w.info == nil {
		w.info = make(map[infoKey]*Info)
	}
	w.info[key] = info
}

// queryInfo queries the native API with the size/fill protocol and caches the result.
func (w *Wrapper) queryInfo(w2 *Wrapper, key infoKey, fn InfoFunc) (*Info, error) {
	klog.V(2).Infof("wrapper: querying attribute %s of %s", key, w)
	var size int
	if code := fn.call(w, w2, key.param, nil, &size); !code.Ok() {
		return nil, NewError("GetInfo", code, "get info [size] of attribute %s of %s", key, w)
	}
	if size == 0 {
		return nil, errors.WithStack(&Error{
			Op:    "GetInfo",
			Msg:   fmt.Sprintf("get info [size] of attribute %s of %s: size is 0", key, w),
			cause: ErrEmptyInfo,
		})
	}
	info := NewInfo(size)
	if code := fn.call(w, w2, key.param, info.value, nil); !code.Ok() {
		return nil, NewError("GetInfo", code, "get info [value] of attribute %s of %s", key, w)
	}
	w.addInfo(key, info)
	return info, nil
}

// Scalar are the fixed-size types an attribute value can be decoded to with ValueAs.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64
}

// ValueAs decodes the value of info as one T, in the host byte order (as laid out by the native API).
// The size of the value must match the size of T.
func ValueAs[T Scalar](info *Info) (value T, err error) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&value)), unsafe.Sizeof(value))
	if info.Size() != len(dst) {
		err = errors.Errorf("attribute has %d bytes, can't be decoded as %T (%d bytes)", info.Size(), value, len(dst))
		return
	}
	copy(dst, info.value)
	return
}

// ValuesAs decodes the value of info as a slice of T, in the host byte order.
// The size of the value must be a multiple of the size of T.
func ValuesAs[T Scalar](info *Info) ([]T, error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if info.Size()%elemSize != 0 {
		return nil, errors.Errorf("attribute has %d bytes, can't be decoded as []%T (element size %d bytes)",
			info.Size(), zero, elemSize)
	}
	values := make([]T, info.Size()/elemSize)
	if len(values) == 0 {
		return values, nil
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), info.Size())
	copy(dst, info.value)
	return values, nil
}

// StringOf decodes the value of info as a NUL-terminated string.
func StringOf(info *Info) string {
	value := info.Value()
	if idx := bytes.IndexByte(value, 0); idx >= 0 {
		value = value[:idx]
	}
	return string(value)
}
