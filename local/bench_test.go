package local

import (
	"sync/atomic"
	"testing"
)

func BenchmarkGet_Dynamic(b *testing.B) {
	tl := New(func() int { return 0 }, WithDynamic())
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			*tl.Get()++
		}
	})
}

func BenchmarkGet_Static(b *testing.B) {
	tl := New(func() int { return 0 }, WithCapacity(DefaultStaticCapacity))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			*tl.Get()++
		}
	})
}

func BenchmarkCounter_Inc(b *testing.B) {
	c := NewCounter()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			c.Inc()
		}
	})
}

func BenchmarkSharedAtomic_Inc(b *testing.B) {
	var n atomic.Int64
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			n.Add(1)
		}
	})
}
