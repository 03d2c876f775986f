package wrapper

import (
	"encoding/binary"
	"sync"
	"testing"

	"github.com/gomlx/clwrap/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo(5)
	require.Equal(t, 5, info.Size())
	require.Equal(t, []byte{0, 0, 0, 0, 0}, info.Value())

	empty := NewInfo(0)
	require.Equal(t, 0, empty.Size())
	require.Nil(t, empty.Value())

	var nilInfo *Info
	require.Equal(t, 0, nilInfo.Size())
	require.Nil(t, nilInfo.Value())
}

func TestGetInfo_Cache(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	native.attrs[7] = []byte{1, 2, 3, 4}
	w := capture(r.Acquire(0x100, nil)).Test(t)
	defer func() { _, _ = w.Release(nil, nil) }()
	query := UnaryQuery(native.query)

	// First call: probe + fill.
	info := capture(GetInfo(w, nil, 7, query, true)).Test(t)
	require.Equal(t, []byte{1, 2, 3, 4}, info.Value())
	require.Equal(t, 4, info.Size())
	probes, fills := native.calls(7)
	require.Equal(t, 1, probes)
	require.Equal(t, 1, fills)

	// Cache hits: no calls, same bytes.
	for range 5 {
		info2 := capture(GetInfo(w, nil, 7, query, true)).Test(t)
		require.Same(t, info, info2)
		require.Equal(t, []byte{1, 2, 3, 4}, info2.Value())
	}
	probes, fills = native.calls(7)
	require.Equal(t, 1, probes)
	require.Equal(t, 1, fills)

	// Value and size variants use the same cache.
	require.Equal(t, []byte{1, 2, 3, 4}, capture(GetInfoValue(w, nil, 7, query, true)).Test(t))
	require.Equal(t, 4, capture(GetInfoSize(w, nil, 7, query, true)).Test(t))
	probes, fills = native.calls(7)
	require.Equal(t, 1, probes)
	require.Equal(t, 1, fills)
}

func TestGetInfo_NoCacheRefreshes(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	native.attrs[3] = []byte("old\x00")
	w := capture(r.Acquire(0x200, nil)).Test(t)
	defer func() { _, _ = w.Release(nil, nil) }()
	query := UnaryQuery(native.query)

	require.Equal(t, "old", StringOf(capture(GetInfo(w, nil, 3, query, true)).Test(t)))

	native.mu.Lock()
	native.attrs[3] = []byte("newer\x00")
	native.mu.Unlock()

	// Cached value is not re-validated.
	require.Equal(t, "old", StringOf(capture(GetInfo(w, nil, 3, query, true)).Test(t)))

	// Forced refresh calls the native API every time, and overwrites the cache.
	for ii := range 3 {
		require.Equal(t, "newer", StringOf(capture(GetInfo(w, nil, 3, query, false)).Test(t)))
		probes, fills := native.calls(3)
		require.Equal(t, 2+ii, probes)
		require.Equal(t, 2+ii, fills)
	}
	require.Equal(t, "newer", StringOf(capture(GetInfo(w, nil, 3, query, true)).Test(t)))
	probes, _ := native.calls(3)
	require.Equal(t, 4, probes)
}

func TestGetInfo_Errors(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	w := capture(r.Acquire(0x300, nil)).Test(t)
	defer func() { _, _ = w.Release(nil, nil) }()
	query := UnaryQuery(native.query)

	// Zero-sized attribute.
	native.attrs[1] = []byte{}
	info, err := GetInfo(w, nil, 1, query, true)
	require.Nil(t, info)
	require.ErrorIs(t, err, ErrEmptyInfo)
	require.ErrorContains(t, err, "size is 0")
	_, fills := native.calls(1)
	require.Equal(t, 0, fills)
	_, cached := w.cachedInfo(infoKey{param: 1})
	require.False(t, cached)

	// Unknown attribute: probe fails.
	value, err := GetInfoValue(w, nil, 2, query, true)
	require.Nil(t, value)
	require.Equal(t, status.InvalidValue, CodeOf(err))
	require.ErrorContains(t, err, "get info [size]")

	// Fill fails.
	native.attrs[4] = []byte{9, 9}
	native.fillCode = status.OutOfResources
	size, err := GetInfoSize(w, nil, 4, query, true)
	require.Equal(t, 0, size)
	require.Equal(t, status.OutOfResources, CodeOf(err))
	require.ErrorContains(t, err, "get info [value]")
	_, cached = w.cachedInfo(infoKey{param: 4})
	require.False(t, cached)

	// A failed forced refresh keeps the previously cached value.
	native.fillCode = status.Success
	_ = capture(GetInfo(w, nil, 4, query, true)).Test(t)
	native.probeCode = status.OutOfHostMemory
	_, err = GetInfo(w, nil, 4, query, false)
	require.Equal(t, status.OutOfHostMemory, CodeOf(err))
	require.Equal(t, []byte{9, 9}, capture(GetInfoValue(w, nil, 4, query, true)).Test(t))
}

func TestGetInfo_Binary(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	program := capture(r.Acquire(0x1000, nil)).Test(t)
	dev1 := capture(r.Acquire(0x1, nil)).Test(t)
	dev2 := capture(r.Acquire(0x2, nil)).Test(t)
	defer func() {
		for _, w := range []*Wrapper{program, dev1, dev2} {
			_, _ = w.Release(nil, nil)
		}
		require.True(t, r.AllReleased())
	}()
	// queryPair looks up param+h2.
	native.attrs[0x10+1] = []byte("log for device 1\x00")
	native.attrs[0x10+2] = []byte("log for device 2\x00")
	query := BinaryQuery(native.queryPair)

	require.Equal(t, "log for device 1", StringOf(capture(GetInfo(program, dev1, 0x10, query, true)).Test(t)))
	require.Equal(t, "log for device 2", StringOf(capture(GetInfo(program, dev2, 0x10, query, true)).Test(t)))
	require.Equal(t, "log for device 1", StringOf(capture(GetInfo(program, dev1, 0x10, query, true)).Test(t)))
	native.mu.Lock()
	require.Len(t, native.pairs, 4) // 2 x (probe + fill)
	require.Equal(t, [2]Handle{0x1000, 0x1}, native.pairs[0])
	require.Equal(t, [2]Handle{0x1000, 0x2}, native.pairs[3])
	native.mu.Unlock()

	// Adapter shape must match the wrappers given.
	_, err := GetInfo(program, nil, 0x10, query, true)
	require.ErrorIs(t, err, ErrContract)
	_, err = GetInfo(program, dev1, 0x10, UnaryQuery(native.query), true)
	require.ErrorIs(t, err, ErrContract)
	_, err = GetInfo(nil, nil, 0x10, UnaryQuery(native.query), true)
	require.ErrorIs(t, err, ErrContract)
	var nilQuery UnaryQuery
	_, err = GetInfo(program, nil, 0x10, nilQuery, true)
	require.ErrorIs(t, err, ErrContract)

	// A destroyed second wrapper is rejected before calling the native query.
	dev3 := capture(r.Acquire(0x3, nil)).Test(t)
	require.True(t, capture(dev3.Release(nil, nil)).Test(t))
	native.mu.Lock()
	numPairs := len(native.pairs)
	native.mu.Unlock()
	_, err = GetInfo(program, dev3, 0x10, query, true)
	require.ErrorIs(t, err, ErrContract)
	native.mu.Lock()
	require.Len(t, native.pairs, numPairs)
	native.mu.Unlock()
}

func TestGetInfo_ConcurrentMisses(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	native.attrs[11] = []byte{0xCA, 0xFE}
	w := capture(r.Acquire(0x400, nil)).Test(t)
	defer func() { _, _ = w.Release(nil, nil) }()
	query := UnaryQuery(native.query)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			info, err := GetInfo(w, nil, 11, query, true)
			assert.NoError(t, err)
			assert.Equal(t, []byte{0xCA, 0xFE}, info.Value())
		}()
	}
	wg.Wait()
	probes, fills := native.calls(11)
	require.Equal(t, 1, probes)
	require.Equal(t, 1, fills)
}

func TestGetInfo_DroppedWithWrapper(t *testing.T) {
	r := NewRegistry()
	native := newFakeNative()
	native.attrs[5] = []byte{5}
	query := UnaryQuery(native.query)

	w := capture(r.Acquire(0x500, nil)).Test(t)
	_ = capture(GetInfo(w, nil, 5, query, true)).Test(t)
	require.True(t, capture(w.Release(nil, nil)).Test(t))

	// A destroyed wrapper can't be queried, and its cache is not recreated.
	dead := w
	for _, useCache := range []bool{true, false} {
		_, err := GetInfo(dead, nil, 5, query, useCache)
		require.ErrorIs(t, err, ErrContract)
	}
	probes, _ := native.calls(5)
	require.Equal(t, 1, probes)
	require.Nil(t, dead.info)

	// The handle wrapped again starts with an empty cache.
	w = capture(r.Acquire(0x500, nil)).Test(t)
	_ = capture(GetInfo(w, nil, 5, query, true)).Test(t)
	probes, _ = native.calls(5)
	require.Equal(t, 2, probes)
	require.True(t, capture(w.Release(nil, nil)).Test(t))
}

func TestDecoders(t *testing.T) {
	info := NewInfo(8)
	binary.NativeEndian.PutUint64(info.value, 0x0102030405060708)
	require.Equal(t, uint64(0x0102030405060708), capture(ValueAs[uint64](info)).Test(t))
	_, err := ValueAs[uint32](info)
	require.Error(t, err)

	values := capture(ValuesAs[uint32](info)).Test(t)
	require.Len(t, values, 2)
	_, err = ValuesAs[uint64](NewInfo(12))
	require.Error(t, err)
	require.Empty(t, capture(ValuesAs[uint16](NewInfo(0))).Test(t))

	require.Equal(t, "abc", StringOf(&Info{value: []byte("abc\x00\x00")}))
	require.Equal(t, "abc", StringOf(&Info{value: []byte("abc")}))
	require.Equal(t, "", StringOf(nil))
}
