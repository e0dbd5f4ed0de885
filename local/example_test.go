package local_test

import (
	"fmt"
	"sync"

	"github.com/momentics/lfkit/local"
)

// Each goroutine appends to its own buffer without locking; the buffers
// are merged once the workers are done.
func ExampleThreadLocal() {
	buffers := local.New(func() []int { return make([]int, 0, 8) })

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			buf := buffers.Get()
			for i := 0; i < 3; i++ {
				*buf = append(*buf, w)
			}
		}(w)
	}
	wg.Wait()

	total := 0
	buffers.Range(func(buf *[]int) bool {
		total += len(*buf)
		return true
	})
	fmt.Println(buffers.Len(), total)
	// Output: 4 12
}

func ExampleCounter() {
	hits := local.NewCounter(local.WithCapacity(16))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				hits.Inc()
			}
		}()
	}
	wg.Wait()

	fmt.Println(hits.Sum())
	// Output: 800
}
