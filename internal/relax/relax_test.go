package relax

import "testing"

func TestSpin_Returns(t *testing.T) {
	Spin(0)
	Spin(1)
	Spin(1 << 10)
}

func BenchmarkPause(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Pause()
	}
}
