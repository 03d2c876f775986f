package wrapper

// Common initialization and testing tools for all test files, and the Wrapper lifecycle tests.

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gomlx/clwrap/status"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

type errTester[T any] struct {
	value T
	err   error
}

// capture is a shortcut to test that there is no error and return the value.
func capture[T any](value T, err error) errTester[T] {
	return errTester[T]{value, err}
}

func (e errTester[T]) Test(t *testing.T) T {
	require.NoError(t, e.err)
	return e.value
}

// fakeNative simulates the attribute tables and release entry point of a native API.
type fakeNative struct {
	mu       sync.Mutex
	attrs    map[uint32][]byte
	probes   map[uint32]int
	fills    map[uint32]int
	releases map[Handle]int
	pairs    [][2]Handle

	releaseCode         status.Code
	probeCode, fillCode status.Code
}

func newFakeNative() *fakeNative {
	return &fakeNative{
		attrs:    make(map[uint32][]byte),
		probes:   make(map[uint32]int),
		fills:    make(map[uint32]int),
		releases: make(map[Handle]int),
	}
}

func (f *fakeNative) query(_ Handle, param uint32, value []byte, sizeRet *int) status.Code {
	f.mu.Lock()
	defer f.mu.Unlock()
	attr, found := f.attrs[param]
	if value == nil {
		f.probes[param]++
		if !f.probeCode.Ok() {
			return f.probeCode
		}
		if !found {
			return status.InvalidValue
		}
		if sizeRet != nil {
			*sizeRet = len(attr)
		}
		return status.Success
	}
	f.fills[param]++
	if !f.fillCode.Ok() {
		return f.fillCode
	}
	if len(value) < len(attr) {
		return status.InvalidValue
	}
	copy(value, attr)
	if sizeRet != nil {
		*sizeRet = len(attr)
	}
	return status.Success
}

func (f *fakeNative) queryPair(h1, h2 Handle, param uint32, value []byte, sizeRet *int) status.Code {
	f.mu.Lock()
	f.pairs = append(f.pairs, [2]Handle{h1, h2})
	f.mu.Unlock()
	return f.query(h1, param+uint32(h2), value, sizeRet)
}

func (f *fakeNative) release(h Handle) status.Code {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.releases[h]++
	return f.releaseCode
}

func (f *fakeNative) calls(param uint32) (probes, fills int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.probes[param], f.fills[param]
}

func TestWrapper_RetainRelease(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	const h1 Handle = 0x1001

	w := capture(r.Acquire(h1, nil)).Test(t)
	require.Equal(t, 1, w.RefCount())
	require.Equal(t, h1, w.Unwrap())
	require.False(t, r.IsEmpty())

	// Same handle: same wrapper.
	w2 := capture(r.Acquire(h1, nil)).Test(t)
	require.Same(t, w, w2)
	require.Equal(t, 2, w.RefCount())

	destroyed, err := w.Release(native.release, nil)
	require.NoError(t, err)
	require.False(t, destroyed)
	require.Equal(t, 1, w.RefCount())
	require.Equal(t, 0, native.releases[h1])
	_, found := r.Lookup(h1)
	require.True(t, found)

	destroyed, err = w.Release(native.release, nil)
	require.NoError(t, err)
	require.True(t, destroyed)
	require.Equal(t, 1, native.releases[h1])
	_, found = r.Lookup(h1)
	require.False(t, found)
	require.True(t, r.IsEmpty())
	require.True(t, r.AllReleased())
}

func TestWrapper_ReleaseAfterNRetains(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	w := capture(r.Acquire(0x77, nil)).Test(t)
	const n = 10
	for range n - 1 {
		require.NoError(t, w.Retain())
	}
	require.Equal(t, n, w.RefCount())
	for ii := range n {
		destroyed, err := w.Release(native.release, nil)
		require.NoError(t, err)
		require.Equalf(t, ii == n-1, destroyed, "release #%d", ii)
		if !destroyed {
			// Still usable.
			require.Equal(t, Handle(0x77), w.Unwrap())
			require.False(t, r.AllReleased())
		}
	}
	require.Equal(t, 1, native.releases[0x77])
	require.True(t, r.AllReleased())
}

func TestWrapper_TeardownOrder(t *testing.T) {
	r := NewRegistry()
	var steps []string
	type fields struct{ name string }
	w := capture(r.Acquire(0x5, func(w *Wrapper) any { return &fields{name: "queue"} })).Test(t)
	require.Equal(t, "queue", w.Fields().(*fields).name)

	native := newFakeNative()
	native.attrs[1] = []byte{1}
	_ = capture(GetInfo(w, nil, 1, UnaryQuery(native.query), true)).Test(t)

	destroyed, err := w.Release(
		func(h Handle) status.Code {
			steps = append(steps, "release handle")
			require.Equal(t, Handle(0x5), h)
			// Still registered and with its cache while the native object is released.
			_, found := r.Lookup(h)
			require.True(t, found)
			_, cached := w.cachedInfo(infoKey{param: 1})
			require.True(t, cached)
			return status.Success
		},
		func(w *Wrapper) {
			steps = append(steps, "release fields")
			require.Equal(t, "queue", w.Fields().(*fields).name)
			_, found := r.Lookup(0x5)
			require.False(t, found)
			_, cached := w.cachedInfo(infoKey{param: 1})
			require.False(t, cached)
		})
	require.NoError(t, err)
	require.True(t, destroyed)
	require.Equal(t, []string{"release handle", "release fields"}, steps)
	require.Nil(t, w.Fields())
	require.Equal(t, NullHandle, w.Unwrap())
}

func TestWrapper_ReleaseErrorStillTearsDown(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	native.releaseCode = status.InvalidContext
	w := capture(r.Acquire(0x99, nil)).Test(t)
	var fieldsReleased bool
	destroyed, err := w.Release(native.release, func(*Wrapper) { fieldsReleased = true })
	require.True(t, destroyed)
	require.Error(t, err)
	require.ErrorContains(t, err, "InvalidContext (-34)")
	require.Equal(t, status.InvalidContext, CodeOf(err))
	var wErr *Error
	require.True(t, errors.As(err, &wErr))
	require.Equal(t, "Wrapper.Release", wErr.Op)
	require.True(t, fieldsReleased)
	require.True(t, r.AllReleased())
}

func TestWrapper_ContractViolations(t *testing.T) {
	var nilWrapper *Wrapper
	require.ErrorIs(t, nilWrapper.Retain(), ErrContract)
	destroyed, err := nilWrapper.Release(nil, nil)
	require.False(t, destroyed)
	require.ErrorIs(t, err, ErrContract)
	require.Equal(t, -1, nilWrapper.RefCount())
	require.Equal(t, NullHandle, nilWrapper.Unwrap())

	r := NewRegistry()
	_, err = r.Acquire(NullHandle, nil)
	require.ErrorIs(t, err, ErrContract)
	require.True(t, r.IsEmpty())

	// Using a destroyed wrapper.
	w := capture(r.Acquire(0x3, nil)).Test(t)
	destroyed = capture(w.Release(nil, nil)).Test(t)
	require.True(t, destroyed)
	require.ErrorIs(t, w.Retain(), ErrContract)
	destroyed, err = w.Release(nil, nil)
	require.False(t, destroyed)
	require.ErrorIs(t, err, ErrContract)
	require.Equal(t, 0, w.RefCount())
}

func TestWrapper_ConcurrentRetainRelease(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	w := capture(r.Acquire(0xABC, nil)).Test(t)

	// Many owners come and go while the first reference is held: never destroyed.
	var g errgroup.Group
	for range 64 {
		g.Go(func() error {
			for range 100 {
				if err := w.Retain(); err != nil {
					return err
				}
				destroyed, err := w.Release(native.release, nil)
				if err != nil {
					return err
				}
				if destroyed {
					return errors.New("wrapper destroyed while still owned")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, 1, w.RefCount())
	require.Equal(t, 0, native.releases[0xABC])

	// Now concurrent releases of many references: exactly one destroys.
	const n = 50
	for range n - 1 {
		require.NoError(t, w.Retain())
	}
	var numDestroyed atomic.Int32
	for range n {
		g.Go(func() error {
			destroyed, err := w.Release(native.release, nil)
			if destroyed {
				numDestroyed.Add(1)
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int32(1), numDestroyed.Load())
	require.Equal(t, 1, native.releases[0xABC])
	require.True(t, r.AllReleased())
}
