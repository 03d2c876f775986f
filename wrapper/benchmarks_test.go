package wrapper

import (
	"testing"
)

// BenchmarkAcquireRelease measures one create/destroy cycle, including the registry collapse.
func BenchmarkAcquireRelease(b *testing.B) {
	r := NewRegistry()
	for i := 0; i < b.N; i++ {
		w, err := r.Acquire(0x1, nil)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = w.Release(nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRetainRelease measures the reference counting alone, from parallel goroutines.
func BenchmarkRetainRelease(b *testing.B) {
	r := NewRegistry()
	w, err := r.Acquire(0x1, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer func() { _, _ = w.Release(nil, nil) }()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = w.Retain()
			_, _ = w.Release(nil, nil)
		}
	})
}

// BenchmarkGetInfo compares cache hits with forced native queries.
func BenchmarkGetInfo(b *testing.B) {
	r := NewRegistry()
	native := newFakeNative()
	native.attrs[1] = []byte("some attribute value\x00")
	query := UnaryQuery(native.query)
	w, err := r.Acquire(0x1, nil)
	if err != nil {
		b.Fatal(err)
	}
	defer func() { _, _ = w.Release(nil, nil) }()
	b.ResetTimer()

	for _, useCache := range []bool{true, false} {
		name := "cached"
		if !useCache {
			name = "uncached"
		}
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := GetInfo(w, nil, 1, query, useCache); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
