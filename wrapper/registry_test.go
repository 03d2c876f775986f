package wrapper

import (
	"sync/atomic"
	"testing"

	"github.com/gomlx/clwrap/status"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestRegistry_ConcurrentAcquire(t *testing.T) {
	r := NewRegistry()
	const h Handle = 0x42
	const n = 200
	var numCreated atomic.Int32
	wrappers := make([]*Wrapper, n)
	var g errgroup.Group
	for ii := range n {
		g.Go(func() error {
			w, err := r.Acquire(h, func(w *Wrapper) any {
				numCreated.Add(1)
				return nil
			})
			wrappers[ii] = w
			return err
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, int32(1), numCreated.Load())
	for _, w := range wrappers {
		require.Same(t, wrappers[0], w)
	}
	require.Equal(t, n, wrappers[0].RefCount())
	require.Equal(t, 1, r.Len())

	native := newFakeNative()
	for range n {
		g.Go(func() error {
			_, err := wrappers[0].Release(native.release, nil)
			return err
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, 1, native.releases[h])
	require.True(t, r.IsEmpty())
}

func TestRegistry_LifecycleAndCollapse(t *testing.T) {
	r := NewRegistry()
	require.True(t, r.IsEmpty())
	require.True(t, r.AllReleased())
	require.Empty(t, r.Live())

	// Repeated create/destroy cycles always collapse back to empty.
	for range 3 {
		w1 := capture(r.Acquire(0x20, nil)).Test(t)
		w2 := capture(r.Acquire(0x10, nil)).Test(t)
		require.NotSame(t, w1, w2)
		require.Equal(t, 2, r.Len())
		require.Equal(t, []Handle{0x10, 0x20}, r.Live())

		require.True(t, capture(w1.Release(nil, nil)).Test(t))
		require.False(t, r.IsEmpty())
		require.False(t, r.AllReleased())
		require.Equal(t, []Handle{0x10}, r.Live())

		require.True(t, capture(w2.Release(nil, nil)).Test(t))
		require.True(t, r.IsEmpty())
		require.True(t, r.AllReleased())
		require.Nil(t, r.wrappers)
	}
}

func TestRegistry_ReacquireAfterDestroy(t *testing.T) {
	r := NewRegistry()
	w1 := capture(r.Acquire(0x30, nil)).Test(t)
	require.True(t, capture(w1.Release(nil, nil)).Test(t))

	// A new wrapper, starting with a fresh reference count and an empty cache.
	w2 := capture(r.Acquire(0x30, nil)).Test(t)
	require.NotSame(t, w1, w2)
	require.Equal(t, 1, w2.RefCount())
	require.Nil(t, w2.info)
	require.True(t, capture(w2.Release(nil, nil)).Test(t))
}

func TestRegistry_AcquireWhileTearingDown(t *testing.T) {
	r := NewRegistry()
	const h Handle = 0x60
	w1 := capture(r.Acquire(h, nil)).Test(t)

	var w2 *Wrapper
	destroyed, err := w1.Release(func(Handle) status.Code {
		// w1 reached 0 references but is still in the registry: acquiring the handle now
		// must not resurrect it.
		w2 = capture(r.Acquire(h, nil)).Test(t)
		return status.Success
	}, nil)
	require.NoError(t, err)
	require.True(t, destroyed)
	require.NotSame(t, w1, w2)

	// w1's teardown didn't remove w2.
	found, ok := r.Lookup(h)
	require.True(t, ok)
	require.Same(t, w2, found)
	require.True(t, capture(w2.Release(nil, nil)).Test(t))
	require.True(t, r.AllReleased())
}

func TestAcquireAs(t *testing.T) {
	type device struct {
		w    *Wrapper
		name string
	}
	r := NewRegistry()
	newDevice := func(w *Wrapper) *device { return &device{w: w, name: "gpu"} }
	d1 := capture(AcquireAs(r, 0x8, newDevice)).Test(t)
	d2 := capture(AcquireAs(r, 0x8, newDevice)).Test(t)
	require.Same(t, d1, d2)
	require.Equal(t, 2, d1.w.RefCount())
	require.False(t, capture(d1.w.Release(nil, nil)).Test(t))
	require.True(t, capture(d2.w.Release(nil, nil)).Test(t))

	_, err := AcquireAs(r, NullHandle, newDevice)
	require.ErrorIs(t, err, ErrContract)
}

func TestAcquireAs_KindMismatch(t *testing.T) {
	type device struct{ w *Wrapper }
	type queue struct{ w *Wrapper }
	r := NewRegistry()
	d := capture(AcquireAs(r, 0x9, func(w *Wrapper) *device { return &device{w} })).Test(t)

	created := false
	q, err := AcquireAs(r, 0x9, func(w *Wrapper) *queue {
		created = true
		return &queue{w}
	})
	require.ErrorIs(t, err, ErrContract)
	require.Nil(t, q)
	require.False(t, created)
	require.Equal(t, 1, d.w.RefCount(), "the reference taken must be given back")

	require.True(t, capture(d.w.Release(nil, nil)).Test(t))
	require.True(t, r.AllReleased())
}

func TestDefaultRegistry(t *testing.T) {
	require.True(t, AllReleased())
	w := capture(Acquire(0x1234, nil)).Test(t)
	require.False(t, AllReleased())
	require.True(t, capture(w.Release(nil, nil)).Test(t))
	require.True(t, AllReleased())
}
