package backoff

import (
	"testing"
	"time"
)

func BenchmarkSpinOnce(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bo := New()
		bo.Spin()
	}
}

func BenchmarkSpinFull(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bo := New()
		for !bo.AdviseYield() {
			bo.Spin()
		}
	}
}

func BenchmarkSpinFullRandom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		bo := NewRandom()
		for !bo.AdviseYield() {
			bo.Spin()
		}
	}
}

func BenchmarkSpinFor(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SpinFor(100 * time.Nanosecond)
	}
}
