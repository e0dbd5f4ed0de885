package backoff_test

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/momentics/lfkit/backoff"
)

// A CAS retry loop backs off after every lost race and starts cold again
// once the update lands.
func Example() {
	var counter atomic.Uint64
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := backoff.NewRandom()
			for i := 0; i < 1000; i++ {
				for {
					cur := counter.Load()
					if counter.CompareAndSwap(cur, cur+1) {
						b.Reset()
						break
					}
					b.Spin()
				}
			}
		}()
	}
	wg.Wait()

	fmt.Println(counter.Load())
	// Output: 4000
}

// Spin until saturated, then hand the processor back on every attempt.
func ExampleBackOff_AdviseYield() {
	b := backoff.New()
	spins := 0
	for !b.AdviseYield() {
		b.Spin()
		spins++
	}
	fmt.Println(spins, b.Limit())
	// Output: 6 64
}
