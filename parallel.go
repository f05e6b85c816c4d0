package curve3

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ThreadingThreshold is the number of samples at or above which curves are
// sampled on multiple goroutines. Below it, the overhead of starting
// goroutines outweighs the gains.
var ThreadingThreshold = 4096

// NumThreads is the number of goroutines to use for parallel sampling. If it
// is 0, runtime.GOMAXPROCS(0) is used. A value of 1 disables parallel
// sampling.
var NumThreads = 0

// parallelFor calls fn for every index in [0, n) and returns once all calls
// have returned. Calls for different indices may run concurrently and must
// only write to their own output slots.
//
// Indices are handed out in chunks, several per goroutine, so that uneven
// evaluation costs even out. The group caps the number of goroutines running
// at once at the thread count; fn can't fail, so waiting on the group only
// joins it.
func parallelFor(n int, fn func(i int)) {
	threads := NumThreads
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if n < ThreadingThreshold || threads <= 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	chunk := max(n/(threads*4), 1)
	var g errgroup.Group
	g.SetLimit(threads)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	g.Wait()
}
