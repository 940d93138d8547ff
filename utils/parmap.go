package utils

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelMap runs f(0) … f(n-1) with at most limit concurrent calls and
// waits for all of them. A limit ≤ 0 means one worker per available CPU.
// Each call owns its index, so callers get deterministic output ordering by
// writing results[i] inside f regardless of completion order. The first
// error cancels nothing (the calls are independent pure computations) but is
// the one returned.
func ParallelMap(n, limit int, f func(i int) error) error {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		g.Go(func() error { return f(i) })
	}
	return g.Wait()
}
